package cube

import "github.com/SeamusWaldron/cubealg/pkg/types"

// Animation describes how a renderer should animate a move. It is a
// presentation hint only and has no bearing on the resulting state.
type Animation struct {
	// Axis is 'x' (L to R), 'y' (D to U) or 'z' (B to F).
	Axis byte `json:"axis"`
	// Degrees is the signed rotation about Axis (right-hand rule).
	Degrees int `json:"degrees"`
	// FullCube is true for whole-cube rotations.
	FullCube bool `json:"full_cube"`
	// Layers lists the moving layers along Axis: -1, 0 and/or 1.
	Layers []int `json:"layers"`
}

type animSpec struct {
	axis   byte
	sign   int // sign of a clockwise quarter turn
	layers []int
}

var animSpecs = map[types.Base]animSpec{
	types.BaseR:  {'x', -1, []int{1}},
	types.BaseRw: {'x', -1, []int{0, 1}},
	types.BaseX:  {'x', -1, []int{-1, 0, 1}},
	types.BaseL:  {'x', 1, []int{-1}},
	types.BaseLw: {'x', 1, []int{-1, 0}},
	types.BaseM:  {'x', 1, []int{0}},

	types.BaseU:  {'y', -1, []int{1}},
	types.BaseUw: {'y', -1, []int{0, 1}},
	types.BaseY:  {'y', -1, []int{-1, 0, 1}},
	types.BaseD:  {'y', 1, []int{-1}},
	types.BaseDw: {'y', 1, []int{-1, 0}},
	types.BaseE:  {'y', 1, []int{0}},

	types.BaseF:  {'z', -1, []int{1}},
	types.BaseFw: {'z', -1, []int{0, 1}},
	types.BaseZ:  {'z', -1, []int{-1, 0, 1}},
	types.BaseS:  {'z', -1, []int{0}},
	types.BaseB:  {'z', 1, []int{-1}},
	types.BaseBw: {'z', 1, []int{-1, 0}},
}

// MoveAnimation returns the rotation hint for m.
func MoveAnimation(m types.Move) Animation {
	spec := animSpecs[m.Base]

	degrees := spec.sign * 90
	switch m.Turn {
	case types.TurnCCW:
		degrees = -degrees
	case types.Turn180:
		degrees *= 2
	}

	layers := make([]int, len(spec.layers))
	copy(layers, spec.layers)

	return Animation{
		Axis:     spec.axis,
		Degrees:  degrees,
		FullCube: m.Base.Kind() == types.KindRotation,
		Layers:   layers,
	}
}

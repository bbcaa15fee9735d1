// Package pattern derives case visualizations by running an algorithm's
// inverse against the solved cube.
package pattern

import (
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Orientation describes where a top-layer sticker's top color points.
type Orientation int

const (
	Correct Orientation = iota
	FacingFront
	FacingRight
	FacingBack
	FacingLeft
	// Unknown means the top color is not on this piece at all.
	Unknown
)

func (o Orientation) String() string {
	switch o {
	case Correct:
		return "correct"
	case FacingFront:
		return "front"
	case FacingRight:
		return "right"
	case FacingBack:
		return "back"
	case FacingLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Sides holds the top-row strip of each side face, ordered as seen from
// above with the back face at the top of the picture: Back and Front read
// left to right, Left and Right read back to front.
type Sides struct {
	Back  [3]cube.Color `json:"back"`
	Right [3]cube.Color `json:"right"`
	Front [3]cube.Color `json:"front"`
	Left  [3]cube.Color `json:"left"`
}

// DerivedPattern is the problem state of a case and the views extracted
// from it. Both the orientation vector and the side strips are filled; the
// caller picks whichever fits the case.
type DerivedPattern struct {
	CaseID      string       `json:"case_id"`
	AlgorithmID string       `json:"algorithm_id"`
	Rotation    Rotation     `json:"rotation"`
	Setup       []types.Move `json:"setup"`

	State       cube.Cube      `json:"-"`
	Orientation [9]Orientation `json:"orientation"`
	Sides       Sides          `json:"sides"`
	// TopMask is State with every sticker not of the top color masked.
	TopMask   cube.Cube `json:"-"`
	F2LIntact bool      `json:"f2l_intact"`
}

// sticker is one facelet address.
type sticker struct {
	face cube.Face
	idx  int
}

// neighbors lists, for each top position, the side stickers of the same
// piece. Centers have none.
var neighbors = [9][]sticker{
	0: {{cube.B, 2}, {cube.L, 0}},
	1: {{cube.B, 1}},
	2: {{cube.B, 0}, {cube.R, 2}},
	3: {{cube.L, 1}},
	4: nil,
	5: {{cube.R, 1}},
	6: {{cube.L, 2}, {cube.F, 0}},
	7: {{cube.F, 1}},
	8: {{cube.F, 2}, {cube.R, 0}},
}

var facing = map[cube.Face]Orientation{
	cube.F: FacingFront,
	cube.R: FacingRight,
	cube.B: FacingBack,
	cube.L: FacingLeft,
}

// OrientationOf returns the orientation vector of the top face of c,
// relative to the color of its top center.
func OrientationOf(c cube.Cube) [9]Orientation {
	top := c.Facelets[cube.U][4]

	var o [9]Orientation
	for i := 0; i < 9; i++ {
		if c.Facelets[cube.U][i] == top {
			o[i] = Correct
			continue
		}
		o[i] = Unknown
		for _, s := range neighbors[i] {
			if c.Facelets[s.face][s.idx] == top {
				o[i] = facing[s.face]
				break
			}
		}
	}
	return o
}

// SidesOf returns the top-row side strips of c.
func SidesOf(c cube.Cube) Sides {
	f := &c.Facelets
	return Sides{
		Back:  [3]cube.Color{f[cube.B][2], f[cube.B][1], f[cube.B][0]},
		Right: [3]cube.Color{f[cube.R][2], f[cube.R][1], f[cube.R][0]},
		Front: [3]cube.Color{f[cube.F][0], f[cube.F][1], f[cube.F][2]},
		Left:  [3]cube.Color{f[cube.L][0], f[cube.L][1], f[cube.L][2]},
	}
}

// MaskTop returns c with every sticker that is not the top center's color
// replaced by cube.Masked.
func MaskTop(c cube.Cube) cube.Cube {
	top := c.Facelets[cube.U][4]
	for face := range c.Facelets {
		for i, col := range c.Facelets[face] {
			if col != top {
				c.Facelets[face][i] = cube.Masked
			}
		}
	}
	return c
}

// FromState extracts every view from a problem state.
func FromState(c cube.Cube) DerivedPattern {
	return DerivedPattern{
		State:       c,
		Orientation: OrientationOf(c),
		Sides:       SidesOf(c),
		TopMask:     MaskTop(c),
		F2LIntact:   c.IsF2LSolved(),
	}
}

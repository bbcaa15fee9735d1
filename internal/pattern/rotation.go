package pattern

import "github.com/SeamusWaldron/cubealg/pkg/types"

// Rotation selects an extra whole-cube turn applied before the case setup,
// so the same case can be viewed from each side.
type Rotation int

const (
	RotNone   Rotation = iota // no rotation
	RotY                      // y
	RotY2                     // y2
	RotYPrime                 // y'
)

// Rotations lists every selector in cache order.
var Rotations = [4]Rotation{RotNone, RotY, RotY2, RotYPrime}

// Moves returns the rotation as a move list; RotNone is empty.
func (r Rotation) Moves() []types.Move {
	switch r {
	case RotY:
		return []types.Move{{Base: types.BaseY, Turn: types.TurnCW}}
	case RotY2:
		return []types.Move{{Base: types.BaseY, Turn: types.Turn180}}
	case RotYPrime:
		return []types.Move{{Base: types.BaseY, Turn: types.TurnCCW}}
	default:
		return nil
	}
}

func (r Rotation) String() string {
	switch r {
	case RotNone:
		return ""
	case RotY:
		return "y"
	case RotY2:
		return "y2"
	case RotYPrime:
		return "y'"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the four selectors.
func (r Rotation) Valid() bool {
	return r >= RotNone && r <= RotYPrime
}

// ParseRotation parses "", "y", "y2" or "y'". The superscript-2 form is not
// accepted here.
func ParseRotation(s string) (Rotation, bool) {
	for _, r := range Rotations {
		if r.String() == s {
			return r, true
		}
	}
	return RotNone, false
}

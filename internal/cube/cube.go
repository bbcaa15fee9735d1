// Package cube provides a 3x3 cube sticker model and the move engine that
// permutes it.
package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Down face when solved
	Yellow Color = 1 // Up face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Left face when solved
	Orange Color = 5 // Right face when solved

	// Masked marks a sticker whose color is deliberately not shown.
	Masked Color = 6
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Masked:
		return "-"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (Yellow)
	D Face = 1 // Down (White)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Orange)
	L Face = 5 // Left (Red)
)

// Faces lists all six faces in storage order.
var Faces = [6]Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Name returns the long face name: top, bottom, front, back, right or left.
func (f Face) Name() string {
	switch f {
	case U:
		return "top"
	case D:
		return "bottom"
	case F:
		return "front"
	case B:
		return "back"
	case R:
		return "right"
	case L:
		return "left"
	default:
		return "unknown"
	}
}

// Cube represents the 54 stickers of a 3x3 cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen from above with B at the top, D from below with F at the top,
// and the side faces from outside with U at the top.
//
// Cube is a value type: Apply and ApplyMoves return a new Cube and never
// modify the receiver.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// Yellow on top, Green in front.
func New() Cube {
	var c Cube
	for face := Face(0); face < 6; face++ {
		color := SolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// Solved returns the canonical solved state. It is the same as New.
func Solved() Cube {
	return New()
}

// SolvedColor returns the color of a face when solved.
func SolvedColor(f Face) Color {
	switch f {
	case U:
		return Yellow
	case D:
		return White
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Orange
	case L:
		return Red
	default:
		return Masked
	}
}

// Equal reports whether two states have identical stickers.
func Equal(a, b Cube) bool {
	return a.Facelets == b.Facelets
}

// Equal reports whether c and o have identical stickers.
func (c Cube) Equal(o Cube) bool {
	return Equal(c, o)
}

// IsSolved returns true if the cube is in the canonical solved state.
func (c Cube) IsSolved() bool {
	return Equal(c, Solved())
}

// Apply returns the state reached by applying m to c.
func (c Cube) Apply(m types.Move) Cube {
	c.apply(m)
	return c
}

// ApplyMoves returns the state reached by applying moves left to right.
func (c Cube) ApplyMoves(moves []types.Move) Cube {
	for _, m := range moves {
		c.apply(m)
	}
	return c
}

// String returns a text representation of the cube as an unfolded net.
func (c Cube) String() string {
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[U][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[D][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

package cubealg

import (
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

// Color is a sticker color.
type Color = cube.Color

// Sticker colors. The cube starts with yellow up and green front.
const (
	White  = cube.White
	Yellow = cube.Yellow
	Green  = cube.Green
	Blue   = cube.Blue
	Red    = cube.Red
	Orange = cube.Orange

	// Masked marks a sticker hidden by a pattern's top view.
	Masked = cube.Masked
)

// Animation is a presentation hint for a move: rotation axis, signed
// degrees and the moving layers. It never affects cube state.
type Animation = cube.Animation

// MoveAnimation returns the animation hint for m.
func MoveAnimation(m Move) Animation {
	return cube.MoveAnimation(m)
}

// Cube is a mutable 3x3 cube. Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Cube struct {
	state cube.Cube
}

// NewCube returns a solved cube.
func NewCube() *Cube {
	return &Cube{state: cube.Solved()}
}

// Clone returns an independent copy.
func (c *Cube) Clone() *Cube {
	return &Cube{state: c.state}
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	c.state = cube.Solved()
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	c.state = c.state.ApplyMoves(moves)
}

// ApplyNotation parses text and applies the moves. It returns ErrNoMoves
// when the text holds no move.
func (c *Cube) ApplyNotation(text string) error {
	moves, err := notation.ParseChecked(text)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Facelets returns the sticker colors in face order U, D, F, B, R, L.
func (c *Cube) Facelets() [6][9]Color {
	return c.state.Facelets
}

// IsSolved reports whether the cube is solved with yellow up and green front.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// IsF2LSolved reports whether the first two layers are solved.
func (c *Cube) IsF2LSolved() bool {
	return c.state.IsF2LSolved()
}

// IsTopOriented reports whether the top face is a single color.
func (c *Cube) IsTopOriented() bool {
	return c.state.IsTopOriented()
}

// Equal reports whether both cubes show the same stickers.
func (c *Cube) Equal(o *Cube) bool {
	return c.state.Equal(o.state)
}

// String returns the cube as an unfolded net.
func (c *Cube) String() string {
	return c.state.String()
}

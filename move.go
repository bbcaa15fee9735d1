package cubealg

import (
	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Move is a single move: a base layer and a turn.
type Move = types.Move

// Base identifies which layer or layers a move turns.
type Base = types.Base

// Turn is the direction and magnitude of a move.
type Turn = types.Turn

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// ParseMoves parses notation text. Tokens that are not moves are skipped.
func ParseMoves(text string) []Move {
	return notation.Parse(text)
}

// ParseMovesStrict parses notation text and returns ErrNoMoves when no move
// is found.
func ParseMovesStrict(text string) ([]Move, error) {
	return notation.ParseChecked(text)
}

// FormatMoves renders moves in canonical notation separated by spaces.
func FormatMoves(moves []Move) string {
	return notation.Format(moves)
}

// InvertMoves returns the inverse sequence: reversed, each move inverted.
func InvertMoves(moves []Move) []Move {
	return notation.InvertMoves(moves)
}

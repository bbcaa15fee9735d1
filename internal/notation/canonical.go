// Package notation converts between move notation text and structured moves.
package notation

import (
	"errors"
	"strings"
	"unicode"

	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// ErrNoMoves is returned by ParseChecked when non-blank text yields no moves.
var ErrNoMoves = errors.New("notation: no moves found")

// Parse extracts every move token from text.
//
// A token is one base letter (RLUDFB, rludfb, MES, xyz) optionally followed by
// a modifier: ' for counter-clockwise, 2 or ² for a half turn. Anything else
// is skipped, so markup and stray punctuation never cause an error.
func Parse(text string) []types.Move {
	runes := []rune(text)
	moves := make([]types.Move, 0, len(runes)/2)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r > unicode.MaxASCII {
			continue
		}
		base, ok := types.BaseFromLetter(byte(r))
		if !ok {
			continue
		}

		turn := types.TurnCW
		if i+1 < len(runes) {
			if t, ok := modifier(runes[i+1]); ok {
				turn = t
				i++
			}
		}
		moves = append(moves, types.Move{Base: base, Turn: turn})
	}

	return moves
}

// ParseChecked is Parse, but reports ErrNoMoves when text contains something
// other than whitespace and still produced no moves. The moves are returned
// either way.
func ParseChecked(text string) ([]types.Move, error) {
	moves := Parse(text)
	if len(moves) == 0 && strings.TrimSpace(text) != "" {
		return moves, ErrNoMoves
	}
	return moves, nil
}

// ParseMove parses exactly one move token such as R, R', R2 or M².
func ParseMove(s string) (types.Move, bool) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 || len(runes) > 2 || runes[0] > unicode.MaxASCII {
		return types.Move{}, false
	}

	base, ok := types.BaseFromLetter(byte(runes[0]))
	if !ok {
		return types.Move{}, false
	}

	turn := types.TurnCW // Default is clockwise
	if len(runes) == 2 {
		turn, ok = modifier(runes[1])
		if !ok {
			return types.Move{}, false
		}
	}

	return types.Move{Base: base, Turn: turn}, true
}

func modifier(r rune) (types.Turn, bool) {
	switch r {
	case '\'':
		return types.TurnCCW, true
	case '2', '²':
		return types.Turn180, true
	}
	return 0, false
}

// FormatMove returns the canonical notation for m.
func FormatMove(m types.Move) string {
	return m.Notation()
}

// Format formats a slice of moves as a space-separated string.
// Half turns always use the ASCII 2.
func Format(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the inverse of a single move.
func Invert(m types.Move) types.Move {
	return m.Inverse()
}

// InvertMoves returns the group inverse of a move sequence: the moves in
// reverse order, each inverted.
func InvertMoves(moves []types.Move) []types.Move {
	inv := make([]types.Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

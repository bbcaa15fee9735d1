// Package types contains the move vocabulary shared by every cubealg package.
package types

import "fmt"

// Base identifies which layer (or layers) a move turns.
//
// The 18 bases fall into four disjoint families: single-layer face turns,
// double-layer wide turns, middle-slice turns and whole-cube rotations.
type Base uint8

const (
	// Face turns
	BaseR Base = iota + 1
	BaseL
	BaseU
	BaseD
	BaseF
	BaseB

	// Wide (two-layer) turns
	BaseRw
	BaseLw
	BaseUw
	BaseDw
	BaseFw
	BaseBw

	// Slice turns
	BaseM
	BaseE
	BaseS

	// Whole-cube rotations
	BaseX
	BaseY
	BaseZ
)

// BaseCount is the number of distinct bases.
const BaseCount = 18

// Kind is the family a Base belongs to.
type Kind int

const (
	KindFace Kind = iota
	KindWide
	KindSlice
	KindRotation
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindWide:
		return "wide"
	case KindSlice:
		return "slice"
	case KindRotation:
		return "rotation"
	default:
		return "unknown"
	}
}

var baseLetters = [...]byte{
	BaseR: 'R', BaseL: 'L', BaseU: 'U', BaseD: 'D', BaseF: 'F', BaseB: 'B',
	BaseRw: 'r', BaseLw: 'l', BaseUw: 'u', BaseDw: 'd', BaseFw: 'f', BaseBw: 'b',
	BaseM: 'M', BaseE: 'E', BaseS: 'S',
	BaseX: 'x', BaseY: 'y', BaseZ: 'z',
}

// Valid reports whether b is one of the 18 bases.
func (b Base) Valid() bool {
	return b >= BaseR && b <= BaseZ
}

// Kind returns the family of the base.
func (b Base) Kind() Kind {
	switch {
	case b >= BaseR && b <= BaseB:
		return KindFace
	case b >= BaseRw && b <= BaseBw:
		return KindWide
	case b >= BaseM && b <= BaseS:
		return KindSlice
	default:
		return KindRotation
	}
}

// Letter returns the notation character for the base.
func (b Base) Letter() byte {
	if !b.Valid() {
		return '?'
	}
	return baseLetters[b]
}

func (b Base) String() string {
	return string(b.Letter())
}

// BaseFromLetter maps a notation character to its Base.
func BaseFromLetter(c byte) (Base, bool) {
	for b := BaseR; b <= BaseZ; b++ {
		if baseLetters[b] == c {
			return b, true
		}
	}
	return 0, false
}

// Turn represents the direction and magnitude of a move.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// QuarterTurns returns the clockwise quarter-turn count of t in [1, 3].
// CW=1, 180=2, CCW=3.
func (t Turn) QuarterTurns() int {
	switch t {
	case TurnCW:
		return 1
	case Turn180:
		return 2
	case TurnCCW:
		return 3
	default:
		return 0
	}
}

// TurnFromQuarters converts a clockwise quarter-turn count to a Turn.
// The count is taken modulo 4; ok is false when it is a multiple of 4.
func TurnFromQuarters(q int) (t Turn, ok bool) {
	switch ((q % 4) + 4) % 4 {
	case 1:
		return TurnCW, true
	case 2:
		return Turn180, true
	case 3:
		return TurnCCW, true
	default:
		return 0, false
	}
}

// Move represents a single move: a base and a turn.
type Move struct {
	Base Base `json:"base"`
	Turn Turn `json:"turn"`
}

// Valid reports whether the move has a known base and turn.
func (m Move) Valid() bool {
	return m.Base.Valid() && m.Turn.QuarterTurns() != 0
}

// Notation returns the canonical notation string for this move.
// Examples: R, R', R2, M', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return m.Base.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// MarshalText encodes the move in notation, so JSON shows "R'" rather than
// its numeric fields.
func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("types: invalid move {%d %d}", m.Base, m.Turn)
	}
	return []byte(m.Notation()), nil
}

// UnmarshalText decodes a single move written in notation.
func (m *Move) UnmarshalText(text []byte) error {
	if len(text) == 0 || len(text) > 2 {
		return fmt.Errorf("types: invalid move %q", text)
	}
	base, ok := BaseFromLetter(text[0])
	if !ok {
		return fmt.Errorf("types: invalid move %q", text)
	}
	turn := TurnCW
	if len(text) == 2 {
		switch text[1] {
		case '\'':
			turn = TurnCCW
		case '2':
			turn = Turn180
		default:
			return fmt.Errorf("types: invalid move %q", text)
		}
	}
	*m = Move{Base: base, Turn: turn}
	return nil
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// MoveCount is the number of distinct moves (18 bases x 3 turns).
const MoveCount = BaseCount * 3

// Token encodes the move as a single byte.
// Encoding: (base-1)*3 + turn_code where turn_code is CCW=0, CW=1, 180=2.
func (m Move) Token() uint8 {
	var turnCode uint8
	switch m.Turn {
	case TurnCCW:
		turnCode = 0
	case TurnCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}
	return uint8(m.Base-1)*3 + turnCode
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	base := Base(token/3) + 1
	var turn Turn
	switch token % 3 {
	case 0:
		turn = TurnCCW
	case 1:
		turn = TurnCW
	case 2:
		turn = Turn180
	}
	return Move{Base: base, Turn: turn}
}

// AllMoves returns all 54 moves in token order.
func AllMoves() []Move {
	moves := make([]Move, MoveCount)
	for i := range moves {
		moves[i] = MoveFromToken(uint8(i))
	}
	return moves
}

// Package cancellation folds combinable moves across the boundaries between
// the step groups of an expanded algorithm.
package cancellation

import (
	"fmt"

	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// StepMoves is the move list produced by one algorithm step. A reference step
// repeated N times yields N consecutive StepMoves sharing a StepIndex.
type StepMoves struct {
	StepIndex  int          `json:"step_index"`
	Repetition int          `json:"repetition,omitempty"`
	RefID      string       `json:"ref_id,omitempty"`
	Inverted   bool         `json:"inverted,omitempty"`
	Moves      []types.Move `json:"moves"`
}

// FromRef reports whether the group came from a reference step.
func (s StepMoves) FromRef() bool {
	return s.RefID != ""
}

// MoveWithMeta is a move annotated for display.
type MoveWithMeta struct {
	Move      types.Move `json:"move"`
	StepIndex int        `json:"step_index"`

	// Reference metadata, empty for literal steps.
	RefID    string `json:"ref_id,omitempty"`
	Inverted bool   `json:"inverted,omitempty"`

	// Cancelled moves are kept for display but have no effect.
	Cancelled bool `json:"cancelled,omitempty"`

	// IsResult marks a move synthesized from Sources, the left and right
	// moves it replaces. Sources is nil for every other entry.
	IsResult bool         `json:"is_result,omitempty"`
	Sources  []types.Move `json:"sources,omitempty"`
}

// FromRef reports whether the move came from a reference step.
func (m MoveWithMeta) FromRef() bool {
	return m.RefID != ""
}

// Combine merges two moves of the same base by adding their clockwise quarter
// turns modulo 4. ok is false when they cancel completely.
//
// Combine panics if the bases differ; callers must check first.
func Combine(a, b types.Move) (m types.Move, ok bool) {
	if a.Base != b.Base {
		panic(fmt.Sprintf("cancellation: cannot combine %s with %s", a, b))
	}

	turn, ok := types.TurnFromQuarters(a.Turn.QuarterTurns() + b.Turn.QuarterTurns())
	if !ok {
		return types.Move{}, false
	}
	return types.Move{Base: a.Base, Turn: turn}, true
}

// Apply annotates the moves of groups and folds cancellations at every
// boundary between consecutive groups.
//
// At a boundary the last live move to the left is combined with the first
// live move of the right group while their bases match. Both originals are
// marked cancelled; a non-zero combination is inserted into the right group
// just after its cancelled move. A full cancellation can expose another
// matching pair, so the boundary is re-examined until it is stable.
//
// The input is never modified. Cancelled entries stay in the output.
func Apply(groups []StepMoves) []MoveWithMeta {
	total := 0
	for _, g := range groups {
		total += len(g.Moves)
	}
	out := make([]MoveWithMeta, 0, total)

	for gi, g := range groups {
		right := make([]MoveWithMeta, len(g.Moves))
		for i, m := range g.Moves {
			right[i] = MoveWithMeta{
				Move:      m,
				StepIndex: g.StepIndex,
				RefID:     g.RefID,
				Inverted:  g.Inverted,
			}
		}

		if gi > 0 {
			right = fold(out, right)
		}
		out = append(out, right...)
	}

	return out
}

// fold resolves the boundary between left and right, marking cancelled moves
// in both and returning the (possibly grown) right group.
func fold(left, right []MoveWithMeta) []MoveWithMeta {
	for {
		li := lastLive(left)
		ri := firstLive(right)
		if li < 0 || ri < 0 {
			return right
		}

		l, r := left[li], right[ri]
		if l.Move.Base != r.Move.Base {
			return right
		}

		left[li].Cancelled = true
		right[ri].Cancelled = true

		combined, ok := Combine(l.Move, r.Move)
		if !ok {
			continue
		}

		result := MoveWithMeta{
			Move:      combined,
			StepIndex: r.StepIndex,
			IsResult:  true,
			Sources:   []types.Move{l.Move, r.Move},
		}
		switch {
		case r.FromRef():
			result.RefID, result.Inverted = r.RefID, r.Inverted
		case l.FromRef():
			result.RefID, result.Inverted = l.RefID, l.Inverted
		}

		right = insert(right, ri+1, result)
	}
}

func lastLive(ms []MoveWithMeta) int {
	for i := len(ms) - 1; i >= 0; i-- {
		if !ms[i].Cancelled {
			return i
		}
	}
	return -1
}

func firstLive(ms []MoveWithMeta) int {
	for i, m := range ms {
		if !m.Cancelled {
			return i
		}
	}
	return -1
}

func insert(ms []MoveWithMeta, at int, m MoveWithMeta) []MoveWithMeta {
	ms = append(ms, MoveWithMeta{})
	copy(ms[at+1:], ms[at:])
	ms[at] = m
	return ms
}

// Effective returns the moves that were not cancelled, in order. These
// determine the resulting cube state.
func Effective(ms []MoveWithMeta) []types.Move {
	moves := make([]types.Move, 0, len(ms))
	for _, m := range ms {
		if !m.Cancelled {
			moves = append(moves, m.Move)
		}
	}
	return moves
}

// CancelledCount returns how many entries were cancelled.
func CancelledCount(ms []MoveWithMeta) int {
	n := 0
	for _, m := range ms {
		if m.Cancelled {
			n++
		}
	}
	return n
}

package algorithm

import (
	"fmt"

	"github.com/SeamusWaldron/cubealg/internal/cancellation"
	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Expansion is the result of expanding an algorithm.
type Expansion struct {
	// Moves are the effective moves after cancellation.
	Moves []types.Move
	// MovesWithMeta is the annotated sequence, cancelled entries included.
	MovesWithMeta []cancellation.MoveWithMeta
	// MovesByStep are the step groups before cancellation.
	MovesByStep []cancellation.StepMoves
}

// Notation returns the effective moves in canonical notation.
func (x *Expansion) Notation() string {
	return notation.Format(x.Moves)
}

// Expander resolves algorithms against a catalogue. It holds no mutable
// state and is safe for concurrent use if the catalogue is.
type Expander struct {
	catalogue Catalogue
	maxDepth  int
}

// NewExpander creates an expander over cat.
func NewExpander(cat Catalogue, opts ...Option) *Expander {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Expander{
		catalogue: cat,
		maxDepth:  cfg.maxDepth,
	}
}

// MaxDepth returns the configured reference depth bound.
func (e *Expander) MaxDepth() int {
	return e.maxDepth
}

// Expand flattens alg into step groups, folds cancellations across group
// boundaries and returns the annotated and effective sequences.
func (e *Expander) Expand(alg Algorithm) (*Expansion, error) {
	return e.expand(alg, 0)
}

// ExpandID looks up an algorithm by ID and expands it.
func (e *Expander) ExpandID(id string) (*Expansion, error) {
	alg, ok := e.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	return e.Expand(alg)
}

func (e *Expander) lookup(id string) (Algorithm, bool) {
	if e.catalogue == nil {
		return Algorithm{}, false
	}
	return e.catalogue.Algorithm(id)
}

func (e *Expander) expand(alg Algorithm, depth int) (*Expansion, error) {
	if depth > e.maxDepth {
		return nil, fmt.Errorf("%w: %q at depth %d (limit %d)", ErrMaxDepth, alg.ID, depth, e.maxDepth)
	}

	groups := make([]cancellation.StepMoves, 0, len(alg.Steps))
	for i, step := range alg.Steps {
		switch step.Kind {
		case StepMoves:
			groups = append(groups, cancellation.StepMoves{
				StepIndex: i,
				Moves:     notation.Parse(step.Moves),
			})

		case StepRef:
			ref, ok := e.lookup(step.Ref)
			if !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q step %d", ErrUnknownAlgorithm, step.Ref, alg.ID, i)
			}

			sub, err := e.expand(ref, depth+1)
			if err != nil {
				return nil, err
			}

			moves := sub.Moves
			if step.Invert {
				moves = notation.InvertMoves(moves)
			}

			// Each repetition is its own group so cancellation can fold the
			// seams between repetitions.
			for r := 0; r < step.Repetitions(); r++ {
				cp := make([]types.Move, len(moves))
				copy(cp, moves)
				groups = append(groups, cancellation.StepMoves{
					StepIndex:  i,
					Repetition: r,
					RefID:      step.Ref,
					Inverted:   step.Invert,
					Moves:      cp,
				})
			}

		default:
			panic(fmt.Sprintf("algorithm: unknown step kind %d in %q", step.Kind, alg.ID))
		}
	}

	annotated := cancellation.Apply(groups)
	return &Expansion{
		Moves:         cancellation.Effective(annotated),
		MovesWithMeta: annotated,
		MovesByStep:   groups,
	}, nil
}

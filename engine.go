package cubealg

import (
	"fmt"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/analysis"
	"github.com/SeamusWaldron/cubealg/internal/cancellation"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/pattern"
)

// Algorithm is a named list of literal and reference steps.
type Algorithm = algorithm.Algorithm

// Step is one element of an algorithm.
type Step = algorithm.Step

// Expansion is an expanded algorithm: its step groups, the annotated
// sequence with cancellations marked, and the effective moves.
type Expansion = algorithm.Expansion

// Case is a catalogue case with its algorithms, primary first.
type Case = catalogue.Case

// Pattern is the derived problem state of a case.
type Pattern = pattern.DerivedPattern

// Rotation selects the view a pattern is derived from.
type Rotation = pattern.Rotation

// Rotation selectors.
const (
	RotNone   = pattern.RotNone
	RotY      = pattern.RotY
	RotY2     = pattern.RotY2
	RotYPrime = pattern.RotYPrime
)

// Orientation is where the top color of a top-layer sticker points.
type Orientation = pattern.Orientation

// Orientation values of a pattern's top positions.
const (
	Correct     = pattern.Correct
	FacingFront = pattern.FacingFront
	FacingRight = pattern.FacingRight
	FacingBack  = pattern.FacingBack
	FacingLeft  = pattern.FacingLeft
	Unknown     = pattern.Unknown
)

// Sides holds the top-row strips of the four side faces as seen from above.
type Sides = pattern.Sides

// StepMoves is the move list produced by one algorithm step.
type StepMoves = cancellation.StepMoves

// MoveWithMeta is a move of the annotated sequence. Cancelled entries are
// kept so a renderer can strike them through.
type MoveWithMeta = cancellation.MoveWithMeta

// LintReport collects catalogue problems.
type LintReport = analysis.LintReport

// MovesStep returns a literal step.
func MovesStep(text string) Step {
	return algorithm.MovesStep(text)
}

// RefStep returns a step referencing another algorithm.
func RefStep(id string, invert bool, repeat int) Step {
	return algorithm.RefStep(id, invert, repeat)
}

// Engine expands algorithms and derives case patterns over one catalogue.
// It is safe for concurrent use.
type Engine struct {
	catalogue *catalogue.Static
	expander  *algorithm.Expander
	deriver   *pattern.Deriver
}

// New creates an engine. Without options it uses the built-in catalogue.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		cat *catalogue.Static
		err error
	)
	switch {
	case cfg.catalogueYAML != nil:
		cat, err = catalogue.ParseYAML(cfg.catalogueYAML)
	case cfg.cataloguePath != "":
		cat, err = catalogue.LoadYAML(cfg.cataloguePath)
	default:
		cat, err = catalogue.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("cubealg: failed to load catalogue: %w", err)
	}

	exp := algorithm.NewExpander(cat, algorithm.WithMaxDepth(cfg.maxDepth))
	return &Engine{
		catalogue: cat,
		expander:  exp,
		deriver:   pattern.NewDeriver(cat, exp),
	}, nil
}

// Algorithm looks up an algorithm by ID.
func (e *Engine) Algorithm(id string) (Algorithm, bool) {
	return e.catalogue.Algorithm(id)
}

// Algorithms returns every algorithm in catalogue order.
func (e *Engine) Algorithms() []Algorithm {
	return e.catalogue.Algorithms()
}

// Case looks up a case by ID.
func (e *Engine) Case(id string) (Case, bool) {
	return e.catalogue.Case(id)
}

// Cases returns every case in catalogue order.
func (e *Engine) Cases() []Case {
	return e.catalogue.Cases()
}

// Expand expands the algorithm with the given ID.
func (e *Engine) Expand(id string) (*Expansion, error) {
	return e.expander.ExpandID(id)
}

// ExpandAlgorithm expands alg, resolving its references in the catalogue.
func (e *Engine) ExpandAlgorithm(alg Algorithm) (*Expansion, error) {
	return e.expander.Expand(alg)
}

// Derive returns the problem state of caseID viewed with rot. It returns
// nil and no error when the case has no algorithms. The result is shared
// between callers and must not be modified.
func (e *Engine) Derive(caseID string, rot Rotation) (*Pattern, error) {
	return e.deriver.Derive(caseID, rot)
}

// Lint checks the catalogue.
func (e *Engine) Lint() *LintReport {
	return analysis.Lint(e.catalogue, e.expander)
}

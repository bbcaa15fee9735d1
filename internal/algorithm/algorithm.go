// Package algorithm resolves named algorithms into flat move sequences.
package algorithm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for expansion. Both indicate bad catalogue data and are
// never worth retrying.
var (
	ErrUnknownAlgorithm = errors.New("algorithm: unknown algorithm")
	ErrMaxDepth         = errors.New("algorithm: maximum reference depth exceeded")
)

// StepKind distinguishes the two kinds of algorithm step.
type StepKind int

const (
	// StepMoves is a literal notation string.
	StepMoves StepKind = iota
	// StepRef references another algorithm by ID.
	StepRef
)

func (k StepKind) String() string {
	switch k {
	case StepMoves:
		return "moves"
	case StepRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Step is one element of an algorithm definition. Kind selects which fields
// apply: Moves for StepMoves; Ref, Invert and Repeat for StepRef.
type Step struct {
	Kind   StepKind
	Moves  string
	Ref    string
	Invert bool
	Repeat int
}

// MovesStep returns a literal moves step.
func MovesStep(text string) Step {
	return Step{Kind: StepMoves, Moves: text}
}

// RefStep returns a reference step. A repeat below 1 means 1.
func RefStep(id string, invert bool, repeat int) Step {
	return Step{Kind: StepRef, Ref: id, Invert: invert, Repeat: repeat}
}

// Repetitions returns how many times a reference step is emitted.
func (s Step) Repetitions() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// String renders the step the way catalogue listings show it: literal moves
// as-is, references in brackets with ' for inversion and xN for repeats.
func (s Step) String() string {
	switch s.Kind {
	case StepMoves:
		return s.Moves
	case StepRef:
		var sb strings.Builder
		sb.WriteString("[" + s.Ref + "]")
		if s.Invert {
			sb.WriteString("'")
		}
		if s.Repetitions() > 1 {
			fmt.Fprintf(&sb, "x%d", s.Repetitions())
		}
		return sb.String()
	default:
		return "?"
	}
}

// Algorithm is an ordered list of steps. Simplified, when set, is a
// precomputed display string of the fully cancelled sequence.
type Algorithm struct {
	ID         string
	Steps      []Step
	Simplified string
}

// String joins the steps with spaces.
func (a Algorithm) String() string {
	parts := make([]string, len(a.Steps))
	for i, s := range a.Steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Catalogue is the read-only source of named algorithms and cases.
type Catalogue interface {
	// Algorithm looks up an algorithm by ID.
	Algorithm(id string) (Algorithm, bool)
	// AlgorithmsForCase returns the algorithms for a case; the first is the
	// primary one. It returns nil for unknown cases.
	AlgorithmsForCase(caseID string) []Algorithm
}

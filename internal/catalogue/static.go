// Package catalogue provides the named algorithm and case data the resolver
// reads from.
package catalogue

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
)

// Sentinel errors for catalogue construction.
var (
	ErrDuplicateID = errors.New("catalogue: duplicate id")
	ErrInvalidStep = errors.New("catalogue: invalid step")
	ErrMissingRef  = errors.New("catalogue: case references unknown algorithm")
)

// Group names the visualization a case uses.
const (
	GroupOLL = "oll" // orientation vector
	GroupPLL = "pll" // side strips
)

// Case is a catalogue entry that one or more algorithms solve.
type Case struct {
	ID           string
	Name         string
	Group        string
	AlgorithmIDs []string
}

// Static is an in-memory catalogue. It is filled once (by a loader or
// through Add calls) and only read afterwards; reads need no locking as long
// as nothing is added concurrently.
type Static struct {
	algorithms map[string]algorithm.Algorithm
	algOrder   []string
	cases      map[string]Case
	caseOrder  []string
}

// New creates an empty catalogue.
func New() *Static {
	return &Static{
		algorithms: make(map[string]algorithm.Algorithm),
		cases:      make(map[string]Case),
	}
}

// AddAlgorithm registers an algorithm.
func (s *Static) AddAlgorithm(a algorithm.Algorithm) error {
	if a.ID == "" {
		return fmt.Errorf("%w: algorithm without id", ErrInvalidStep)
	}
	if _, ok := s.algorithms[a.ID]; ok {
		return fmt.Errorf("%w: algorithm %q", ErrDuplicateID, a.ID)
	}
	for i, step := range a.Steps {
		if step.Kind == algorithm.StepRef && step.Ref == "" {
			return fmt.Errorf("%w: %q step %d has an empty reference", ErrInvalidStep, a.ID, i)
		}
		if step.Repeat < 0 {
			return fmt.Errorf("%w: %q step %d has a negative repeat", ErrInvalidStep, a.ID, i)
		}
	}

	s.algorithms[a.ID] = a
	s.algOrder = append(s.algOrder, a.ID)
	return nil
}

// AddCase registers a case. Its algorithms are resolved at lookup time.
func (s *Static) AddCase(c Case) error {
	if c.ID == "" {
		return fmt.Errorf("%w: case without id", ErrInvalidStep)
	}
	if _, ok := s.cases[c.ID]; ok {
		return fmt.Errorf("%w: case %q", ErrDuplicateID, c.ID)
	}
	s.cases[c.ID] = c
	s.caseOrder = append(s.caseOrder, c.ID)
	return nil
}

// Validate checks that every case lists only known algorithms. References
// between algorithms are checked by expansion, which also bounds cycles.
func (s *Static) Validate() error {
	for _, id := range s.caseOrder {
		for _, algID := range s.cases[id].AlgorithmIDs {
			if _, ok := s.algorithms[algID]; !ok {
				return fmt.Errorf("%w: case %q lists %q", ErrMissingRef, id, algID)
			}
		}
	}
	return nil
}

// Algorithm implements algorithm.Catalogue.
func (s *Static) Algorithm(id string) (algorithm.Algorithm, bool) {
	a, ok := s.algorithms[id]
	return a, ok
}

// AlgorithmsForCase implements algorithm.Catalogue. Unknown algorithm IDs
// listed by the case are skipped.
func (s *Static) AlgorithmsForCase(caseID string) []algorithm.Algorithm {
	c, ok := s.cases[caseID]
	if !ok {
		return nil
	}
	algs := make([]algorithm.Algorithm, 0, len(c.AlgorithmIDs))
	for _, id := range c.AlgorithmIDs {
		if a, ok := s.algorithms[id]; ok {
			algs = append(algs, a)
		}
	}
	return algs
}

// Case looks up a case by ID.
func (s *Static) Case(id string) (Case, bool) {
	c, ok := s.cases[id]
	return c, ok
}

// Algorithms returns all algorithms in insertion order.
func (s *Static) Algorithms() []algorithm.Algorithm {
	algs := make([]algorithm.Algorithm, len(s.algOrder))
	for i, id := range s.algOrder {
		algs[i] = s.algorithms[id]
	}
	return algs
}

// Cases returns all cases in insertion order.
func (s *Static) Cases() []Case {
	cases := make([]Case, len(s.caseOrder))
	for i, id := range s.caseOrder {
		cases[i] = s.cases[id]
	}
	return cases
}

// Len returns the number of algorithms and cases.
func (s *Static) Len() (algorithms, cases int) {
	return len(s.algOrder), len(s.caseOrder)
}

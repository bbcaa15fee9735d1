package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Trigger is a named short sequence that other algorithms reuse.
type Trigger struct {
	Name     string
	Sequence []types.Move
}

// TriggerMatch represents a detected trigger inside a move sequence.
type TriggerMatch struct {
	TriggerName string `json:"trigger_name"`
	StartIndex  int    `json:"start_index"`
	EndIndex    int    `json:"end_index"`
}

// TriggerReport summarizes trigger usage in one sequence.
type TriggerReport struct {
	MoveCount      int            `json:"move_count"`
	Matches        []TriggerMatch `json:"matches"`
	Counts         map[string]int `json:"counts"`
	Consecutive    int            `json:"consecutive_repeats"`
	UnmatchedMoves int            `json:"unmatched_moves"`
}

// CatalogueTriggers returns every algorithm that another algorithm
// references, expanded to its effective moves and sorted by name. Algorithms
// that fail to expand are skipped; Lint reports them.
func CatalogueTriggers(algs []algorithm.Algorithm, exp *algorithm.Expander) []Trigger {
	referenced := make(map[string]bool)
	for _, a := range algs {
		for _, s := range a.Steps {
			if s.Kind == algorithm.StepRef {
				referenced[s.Ref] = true
			}
		}
	}

	var triggers []Trigger
	for _, a := range algs {
		if !referenced[a.ID] {
			continue
		}
		x, err := exp.Expand(a)
		if err != nil || len(x.Moves) == 0 {
			continue
		}
		triggers = append(triggers, Trigger{Name: a.ID, Sequence: x.Moves})
	}

	sort.Slice(triggers, func(i, j int) bool {
		return triggers[i].Name < triggers[j].Name
	})
	return triggers
}

// DetectTriggers scans moves left to right and greedily matches triggers,
// trying them in the given order at each position.
func DetectTriggers(moves []types.Move, triggers []Trigger) *TriggerReport {
	report := &TriggerReport{
		MoveCount: len(moves),
		Matches:   []TriggerMatch{},
		Counts:    make(map[string]int),
	}

	matched := make([]bool, len(moves))
	lastMatchEnd := -1

	for i := 0; i < len(moves); i++ {
		for _, trig := range triggers {
			if len(trig.Sequence) == 0 || !matchesSequence(moves, i, trig.Sequence) {
				continue
			}

			end := i + len(trig.Sequence) - 1
			report.Matches = append(report.Matches, TriggerMatch{
				TriggerName: trig.Name,
				StartIndex:  i,
				EndIndex:    end,
			})
			report.Counts[trig.Name]++

			for j := i; j <= end; j++ {
				matched[j] = true
			}

			if lastMatchEnd >= 0 && lastMatchEnd == i-1 {
				report.Consecutive++
			}
			lastMatchEnd = end

			i = end // Skip to end of this match
			break
		}
	}

	for _, m := range matched {
		if !m {
			report.UnmatchedMoves++
		}
	}

	return report
}

// matchesSequence checks if moves starting at startIdx begin with seq.
func matchesSequence(moves []types.Move, startIdx int, seq []types.Move) bool {
	if startIdx+len(seq) > len(moves) {
		return false
	}

	for i, t := range seq {
		if moves[startIdx+i] != t {
			return false
		}
	}

	return true
}

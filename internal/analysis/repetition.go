// Package analysis inspects move sequences and catalogues for redundancy,
// recurring sub-sequences and inconsistencies.
package analysis

import (
	"github.com/SeamusWaldron/cubealg/internal/cancellation"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Cancellation represents an immediate move cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
}

// MergeOpportunity represents adjacent same-base moves that could be merged.
type MergeOpportunity struct {
	Index1     int    `json:"index1"`
	Index2     int    `json:"index2"`
	Move1      string `json:"move1"`
	Move2      string `json:"move2"`
	MergedMove string `json:"merged_move"`
}

// BackAndForthPattern represents alternating moves (e.g., R U R U R U).
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	MergeOpportunities     []MergeOpportunity    `json:"merge_opportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedMoves       int                   `json:"total_wasted_moves"`
}

// Redundant reports whether any adjacent pair could be cancelled or merged.
func (r *RepetitionReport) Redundant() bool {
	return len(r.ImmediateCancellations) > 0 || len(r.MergeOpportunities) > 0
}

// AnalyzeRepetitions analyzes a move sequence for repetitions and wasted motion.
func AnalyzeRepetitions(moves []types.Move) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}

	if len(moves) < 2 {
		return report
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i], moves[i+1]
		if m1.Base != m2.Base {
			continue
		}

		merged, ok := cancellation.Combine(m1, m2)
		if !ok {
			// R followed by R', or R2 R2
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
			continue
		}

		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:     i,
			Index2:     i + 1,
			Move1:      m1.Notation(),
			Move2:      m2.Notation(),
			MergedMove: merged.Notation(),
		})
		report.TotalWastedMoves++
	}

	report.BackAndForthPatterns = findBackAndForth(moves)

	return report
}

// findBackAndForth finds alternating move patterns like R U R U R U.
func findBackAndForth(moves []types.Move) []BackAndForthPattern {
	patterns := []BackAndForthPattern{}

	if len(moves) < 4 {
		return patterns
	}

	i := 0
	for i < len(moves)-3 {
		// Look for pattern AB repeated
		a, b := moves[i], moves[i+1]

		count := 1
		j := i + 2
		for j < len(moves)-1 && moves[j] == a && moves[j+1] == b {
			count++
			j += 2
		}

		// Require at least 3 repetitions to be noteworthy
		if count >= 3 {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// Simplify returns moves with adjacent same-base moves merged and full
// cancellations removed, cascading like a stack. The input is not modified.
func Simplify(moves []types.Move) []types.Move {
	result := make([]types.Move, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 || result[len(result)-1].Base != move.Base {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		if merged, ok := cancellation.Combine(*last, move); ok {
			*last = merged
		} else {
			result = result[:len(result)-1]
		}
	}

	return result
}

// CalculateEfficiency calculates the efficiency ratio (optimized/original).
func CalculateEfficiency(original, optimized []types.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}

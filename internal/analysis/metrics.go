package analysis

import "github.com/SeamusWaldron/cubealg/pkg/types"

// Metrics counts a move sequence in the usual turn metrics.
//
//	HTM  face and wide turns 1, slices 2, rotations 0
//	QTM  as HTM, with half turns counted twice
//	STM  every non-rotation move 1
//	ETM  every move 1
type Metrics struct {
	HTM int `json:"htm"`
	QTM int `json:"qtm"`
	STM int `json:"stm"`
	ETM int `json:"etm"`
}

// Measure computes the metrics of moves.
func Measure(moves []types.Move) Metrics {
	var m Metrics
	for _, mv := range moves {
		m.ETM++
		if mv.Base.Kind() == types.KindRotation {
			continue
		}
		m.STM++

		layers := 1
		if mv.Base.Kind() == types.KindSlice {
			layers = 2
		}
		quarters := 1
		if mv.Turn == types.Turn180 {
			quarters = 2
		}
		m.HTM += layers
		m.QTM += layers * quarters
	}
	return m
}

// MovementProfile counts which bases and families a sequence uses.
type MovementProfile struct {
	BaseCounts   map[types.Base]int `json:"base_counts"`
	KindCounts   map[types.Kind]int `json:"kind_counts"`
	TurnCounts   map[types.Turn]int `json:"turn_counts"`
	MostUsedBase types.Base         `json:"most_used_base"`
	// BaseSequences counts consecutive base pairs, e.g. "RU".
	BaseSequences map[string]int `json:"base_sequences"`
}

// AnalyzeMovementProfile analyzes which bases and turns are most used. On a
// tie the base that reached the count first wins.
func AnalyzeMovementProfile(moves []types.Move) *MovementProfile {
	profile := &MovementProfile{
		BaseCounts:    make(map[types.Base]int),
		KindCounts:    make(map[types.Kind]int),
		TurnCounts:    make(map[types.Turn]int),
		BaseSequences: make(map[string]int),
	}

	maxCount := 0
	for i, m := range moves {
		profile.BaseCounts[m.Base]++
		profile.KindCounts[m.Base.Kind()]++
		profile.TurnCounts[m.Turn]++

		if c := profile.BaseCounts[m.Base]; c > maxCount {
			maxCount = c
			profile.MostUsedBase = m.Base
		}

		if i > 0 {
			profile.BaseSequences[moves[i-1].Base.String()+m.Base.String()]++
		}
	}

	return profile
}

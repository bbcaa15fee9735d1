package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	AlgorithmID string `json:"algorithm_id,omitempty"`
	StartIndex  int    `json:"start_index"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		// Prime above types.MoveCount, so short windows hash without collisions.
		base:   61,
		n:      n,
		window: make([]uint8, 0, n),
	}

	// Precompute base^(n-1)
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Add adds a token to the rolling hash.
func (rh *RollingHash) Add(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
	}
}

// Roll removes the oldest token and adds a new one.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.Add(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks n-gram occurrences during mining.
type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Only n-grams seen at least twice are reported.
func MineNGrams(moves []types.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	if minN < 1 || len(moves) < minN {
		return report
	}

	tokens := tokensOf(moves)
	for n := minN; n <= maxN && n <= len(moves); n++ {
		ngrams := mineNGramsForN(tokens, n, 2, topK)
		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

// mineNGramsForN mines n-grams of a specific length seen at least minCount
// times.
func mineNGramsForN(tokens []uint8, n, minCount, topK int) []NGram {
	if len(tokens) < n {
		return nil
	}

	counts := make(map[uint64]*ngramEntry)
	var order []uint64
	rh := NewRollingHash(n)

	// Initialize with first n-1 tokens
	for i := 0; i < n-1; i++ {
		rh.Add(tokens[i])
	}

	for i := n - 1; i < len(tokens); i++ {
		rh.Roll(tokens[i])
		if !rh.Ready() {
			continue
		}

		hash := rh.Hash()
		occ := NGramOccurrence{StartIndex: i - n + 1}

		if entry, exists := counts[hash]; exists {
			// Verify it's actually the same sequence (handle hash collisions)
			if slicesEqual(entry.tokens, rh.Window()) {
				entry.count++
				if len(entry.occurrences) < maxOccurrences {
					entry.occurrences = append(entry.occurrences, occ)
				}
			}
		} else {
			counts[hash] = &ngramEntry{
				tokens:      rh.Window(),
				count:       1,
				occurrences: []NGramOccurrence{occ},
			}
			order = append(order, hash)
		}
	}

	entries := make([]*ngramEntry, 0, len(counts))
	for _, h := range order {
		if entry := counts[h]; entry.count >= minCount {
			entries = append(entries, entry)
		}
	}

	// Stable so equal counts keep first-seen order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		result[i] = NGram{
			N:           n,
			Sequence:    tokenNotation(entry.tokens),
			Tokens:      entry.tokens,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}

	return result
}

func tokenNotation(tokens []uint8) []string {
	sequence := make([]string, len(tokens))
	for i, t := range tokens {
		sequence[i] = types.MoveFromToken(t).Notation()
	}
	return sequence
}

// slicesEqual compares two uint8 slices.
func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MineNGramsAcrossAlgorithms counts n-grams over the effective moves of
// several algorithms. An n-gram is reported when it occurs at least twice in
// total, which makes the result a list of trigger candidates.
func MineNGramsAcrossAlgorithms(algorithms map[string][]types.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	if minN < 1 {
		minN = 1
	}

	// Walk algorithms in a fixed order so output is deterministic.
	ids := make([]string, 0, len(algorithms))
	for id := range algorithms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for n := minN; n <= maxN; n++ {
		aggregated := make(map[string]*NGram)
		var order []string

		for _, id := range ids {
			// Per algorithm every n-gram counts, even a single occurrence.
			for _, ng := range mineNGramsForN(tokensOf(algorithms[id]), n, 1, len(algorithms[id])) {
				key := ngramKey(ng.Tokens)
				existing, exists := aggregated[key]
				if !exists {
					existing = &NGram{N: n, Sequence: ng.Sequence, Tokens: ng.Tokens}
					aggregated[key] = existing
					order = append(order, key)
				}
				existing.Count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(existing.Occurrences) < maxOccurrences {
						occ.AlgorithmID = id
						existing.Occurrences = append(existing.Occurrences, occ)
					}
				}
			}
		}

		ngrams := make([]NGram, 0, len(order))
		for _, key := range order {
			if ng := aggregated[key]; ng.Count >= 2 {
				ngrams = append(ngrams, *ng)
			}
		}

		sort.SliceStable(ngrams, func(i, j int) bool {
			return ngrams[i].Count > ngrams[j].Count
		})

		if len(ngrams) > topK {
			ngrams = ngrams[:topK]
		}

		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func tokensOf(moves []types.Move) []uint8 {
	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = m.Token()
	}
	return tokens
}

// ngramKey creates a string key for an n-gram token sequence.
func ngramKey(tokens []uint8) string {
	result := make([]byte, len(tokens))
	for i, t := range tokens {
		result[i] = t + '0' // Make printable
	}
	return string(result)
}

package pattern

import (
	"fmt"
	"sync"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

type cacheKey struct {
	caseID string
	rot    Rotation
}

// Deriver computes and memoizes case patterns. The memo table is never
// invalidated; the catalogue behind it must not change.
type Deriver struct {
	catalogue algorithm.Catalogue
	expander  *algorithm.Expander

	mu    sync.Mutex
	cache map[cacheKey]*DerivedPattern
}

// NewDeriver creates a deriver. If exp is nil an expander over cat with
// default options is used.
func NewDeriver(cat algorithm.Catalogue, exp *algorithm.Expander) *Deriver {
	if exp == nil {
		exp = algorithm.NewExpander(cat)
	}
	return &Deriver{
		catalogue: cat,
		expander:  exp,
		cache:     make(map[cacheKey]*DerivedPattern),
	}
}

// Derive returns the pattern for caseID viewed with rot.
//
// It returns nil, nil when the case has no algorithms. Expansion errors of
// the primary algorithm are returned as-is. Results are cached per
// (caseID, rot) and the same pointer is returned on later calls; callers
// must treat it as read-only.
func (d *Deriver) Derive(caseID string, rot Rotation) (*DerivedPattern, error) {
	if !rot.Valid() {
		return nil, fmt.Errorf("pattern: invalid rotation %d", rot)
	}

	key := cacheKey{caseID, rot}
	d.mu.Lock()
	p, ok := d.cache[key]
	d.mu.Unlock()
	if ok {
		return p, nil
	}

	if d.catalogue == nil {
		return nil, nil
	}
	algs := d.catalogue.AlgorithmsForCase(caseID)
	if len(algs) == 0 {
		return nil, nil
	}
	primary := algs[0]

	x, err := d.expander.Expand(primary)
	if err != nil {
		return nil, fmt.Errorf("case %q: %w", caseID, err)
	}

	inverse := notation.InvertMoves(x.Moves)
	setup := make([]types.Move, 0, len(inverse)+1)
	setup = append(setup, rot.Moves()...)
	setup = append(setup, inverse...)

	derived := FromState(cube.Solved().ApplyMoves(setup))
	derived.CaseID = caseID
	derived.AlgorithmID = primary.ID
	derived.Rotation = rot
	derived.Setup = setup

	d.mu.Lock()
	defer d.mu.Unlock()
	// Another caller may have stored it first; keep that one.
	if p, ok := d.cache[key]; ok {
		return p, nil
	}
	d.cache[key] = &derived
	return &derived, nil
}

// DeriveAll derives every rotation of caseID. The result is nil when the
// case has no algorithms.
func (d *Deriver) DeriveAll(caseID string) ([]*DerivedPattern, error) {
	var out []*DerivedPattern
	for _, rot := range Rotations {
		p, err := d.Derive(caseID, rot)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, nil
		}
		out = append(out, p)
	}
	return out, nil
}

// Cached returns the number of memoized patterns.
func (d *Deriver) Cached() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cache)
}

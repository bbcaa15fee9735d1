package cube

import "github.com/SeamusWaldron/cubealg/pkg/types"

// strip is three facelets on one face that travel together during a turn.
type strip struct {
	face Face
	idx  [3]int
}

// ring is the four strips a quarter turn cycles: ring[0] moves to ring[1],
// ring[1] to ring[2], ring[2] to ring[3] and ring[3] back to ring[0].
type ring [4]strip

// faceRings holds the clockwise side-strip cycle for each face turn.
var faceRings = map[types.Base]ring{
	// U moves the top rows F -> L -> B -> R
	types.BaseU: {{F, [3]int{0, 1, 2}}, {L, [3]int{0, 1, 2}}, {B, [3]int{0, 1, 2}}, {R, [3]int{0, 1, 2}}},
	// D moves the bottom rows F -> R -> B -> L
	types.BaseD: {{F, [3]int{6, 7, 8}}, {R, [3]int{6, 7, 8}}, {B, [3]int{6, 7, 8}}, {L, [3]int{6, 7, 8}}},
	// F moves U bottom -> R left -> D top -> L right
	types.BaseF: {{U, [3]int{6, 7, 8}}, {R, [3]int{0, 3, 6}}, {D, [3]int{2, 1, 0}}, {L, [3]int{8, 5, 2}}},
	// B moves U top -> L left -> D bottom -> R right
	types.BaseB: {{U, [3]int{2, 1, 0}}, {L, [3]int{0, 3, 6}}, {D, [3]int{6, 7, 8}}, {R, [3]int{8, 5, 2}}},
	// R moves U right -> B left -> D right -> F right
	types.BaseR: {{U, [3]int{2, 5, 8}}, {B, [3]int{6, 3, 0}}, {D, [3]int{2, 5, 8}}, {F, [3]int{2, 5, 8}}},
	// L moves U left -> F left -> D left -> B right
	types.BaseL: {{U, [3]int{0, 3, 6}}, {F, [3]int{0, 3, 6}}, {D, [3]int{0, 3, 6}}, {B, [3]int{8, 5, 2}}},
}

// sliceRings holds the clockwise cycle for each middle slice. A slice owns no
// face, so no face's own stickers rotate; the cycled strips include centers.
var sliceRings = map[types.Base]ring{
	// M turns like L: U -> F -> D -> B
	types.BaseM: {{U, [3]int{1, 4, 7}}, {F, [3]int{1, 4, 7}}, {D, [3]int{1, 4, 7}}, {B, [3]int{7, 4, 1}}},
	// E turns like D: F -> R -> B -> L
	types.BaseE: {{F, [3]int{3, 4, 5}}, {R, [3]int{3, 4, 5}}, {B, [3]int{3, 4, 5}}, {L, [3]int{3, 4, 5}}},
	// S turns like F: U -> R -> D -> L
	types.BaseS: {{U, [3]int{3, 4, 5}}, {R, [3]int{1, 4, 7}}, {D, [3]int{5, 4, 3}}, {L, [3]int{7, 4, 1}}},
}

var baseFace = map[types.Base]Face{
	types.BaseU: U,
	types.BaseD: D,
	types.BaseF: F,
	types.BaseB: B,
	types.BaseR: R,
	types.BaseL: L,
}

// layerTurn is a face or slice base turned a number of clockwise quarters.
type layerTurn struct {
	base     types.Base
	quarters int
}

// composites defines wide turns and rotations in terms of face and slice
// turns. The layers involved are parallel, so their order does not matter.
var composites = map[types.Base][]layerTurn{
	types.BaseRw: {{types.BaseR, 1}, {types.BaseM, 3}},
	types.BaseLw: {{types.BaseL, 1}, {types.BaseM, 1}},
	types.BaseUw: {{types.BaseU, 1}, {types.BaseE, 3}},
	types.BaseDw: {{types.BaseD, 1}, {types.BaseE, 1}},
	types.BaseFw: {{types.BaseF, 1}, {types.BaseS, 1}},
	types.BaseBw: {{types.BaseB, 1}, {types.BaseS, 3}},

	types.BaseX: {{types.BaseR, 1}, {types.BaseM, 3}, {types.BaseL, 3}},
	types.BaseY: {{types.BaseU, 1}, {types.BaseE, 3}, {types.BaseD, 3}},
	types.BaseZ: {{types.BaseF, 1}, {types.BaseS, 1}, {types.BaseB, 3}},
}

// apply mutates c in place. Only the value-receiver wrappers call it, so a
// caller's Cube is never touched.
func (c *Cube) apply(m types.Move) {
	n := m.Turn.QuarterTurns()
	for i := 0; i < n; i++ {
		c.quarter(m.Base)
	}
}

// quarter applies one clockwise quarter turn of base.
func (c *Cube) quarter(base types.Base) {
	switch base.Kind() {
	case types.KindFace:
		c.rotateFaceCW(baseFace[base])
		c.cycle(faceRings[base])
	case types.KindSlice:
		c.cycle(sliceRings[base])
	case types.KindWide, types.KindRotation:
		for _, lt := range composites[base] {
			for i := 0; i < lt.quarters; i++ {
				c.quarter(lt.base)
			}
		}
	}
}

// rotateFaceCW rotates a face's own stickers 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// cycle moves each strip of r onto the next one.
func (c *Cube) cycle(r ring) {
	a, b, cc, d := r[0], r[1], r[2], r[3]

	// Save last strip
	var t [3]Color
	for i := 0; i < 3; i++ {
		t[i] = c.Facelets[d.face][d.idx[i]]
	}

	for i := 0; i < 3; i++ {
		// d <- c
		c.Facelets[d.face][d.idx[i]] = c.Facelets[cc.face][cc.idx[i]]
		// c <- b
		c.Facelets[cc.face][cc.idx[i]] = c.Facelets[b.face][b.idx[i]]
		// b <- a
		c.Facelets[b.face][b.idx[i]] = c.Facelets[a.face][a.idx[i]]
		// a <- d (saved)
		c.Facelets[a.face][a.idx[i]] = t[i]
	}
}

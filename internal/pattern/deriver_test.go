package pattern

import (
	"errors"
	"testing"

	"github.com/kr/pretty"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/cube"
)

func newCatalogue(t *testing.T) *catalogue.Static {
	t.Helper()
	s := catalogue.New()
	addAlg := func(id string, steps ...algorithm.Step) {
		if err := s.AddAlgorithm(algorithm.Algorithm{ID: id, Steps: steps}); err != nil {
			t.Fatal(err)
		}
	}
	addCase := func(id string, algs ...string) {
		if err := s.AddCase(catalogue.Case{ID: id, AlgorithmIDs: algs}); err != nil {
			t.Fatal(err)
		}
	}

	addAlg("sexy", algorithm.MovesStep("R U R' U'"))
	addAlg("auf", algorithm.MovesStep("U"))
	addAlg("insert", algorithm.MovesStep("R' D' R D"))
	addAlg("sune", algorithm.MovesStep("R U R' U R U2 R'"))
	addAlg("oll-45", algorithm.MovesStep("F"), algorithm.RefStep("sexy", false, 1), algorithm.MovesStep("F'"))
	addAlg("pll-t", algorithm.RefStep("sexy", false, 1), algorithm.MovesStep("R' F R2 U' R' U' R U R' F'"))
	addAlg("broken", algorithm.RefStep("missing", false, 1))

	addCase("auf", "auf")
	addCase("insert", "insert")
	addCase("sune", "sune", "oll-45")
	addCase("oll-45", "oll-45")
	addCase("pll-t", "pll-t")
	addCase("broken", "broken")
	addCase("empty")
	return s
}

func colors(s string) [3]cube.Color {
	byName := map[byte]cube.Color{
		'W': cube.White, 'Y': cube.Yellow, 'G': cube.Green,
		'B': cube.Blue, 'R': cube.Red, 'O': cube.Orange,
	}
	var out [3]cube.Color
	for i := 0; i < 3; i++ {
		out[i] = byName[s[i]]
	}
	return out
}

func derive(t *testing.T, d *Deriver, caseID string, rot Rotation) *DerivedPattern {
	t.Helper()
	p, err := d.Derive(caseID, rot)
	if err != nil {
		t.Fatalf("Derive(%q): %v", caseID, err)
	}
	if p == nil {
		t.Fatalf("Derive(%q) returned nil", caseID)
	}
	return p
}

func TestDeriveSides(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)

	p := derive(t, d, "auf", RotNone)
	want := Sides{
		Back:  colors("OOO"),
		Right: colors("GGG"),
		Front: colors("RRR"),
		Left:  colors("BBB"),
	}
	if diff := pretty.Diff(p.Sides, want); len(diff) > 0 {
		t.Errorf("U case sides differ: %v", diff)
	}
	for i, o := range p.Orientation {
		if o != Correct {
			t.Errorf("position %d = %s, want correct", i, o)
		}
	}

	p = derive(t, d, "pll-t", RotNone)
	want = Sides{
		Back:  colors("BBO"),
		Right: colors("GRB"),
		Front: colors("GGO"),
		Left:  colors("ROR"),
	}
	if diff := pretty.Diff(p.Sides, want); len(diff) > 0 {
		t.Errorf("T case sides differ: %v", diff)
		t.Log(p.State.String())
	}
	if !p.F2LIntact || !p.State.IsTopOriented() {
		t.Error("T case keeps the first two layers and the top orientation")
	}
}

func TestDeriveOrientation(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)

	tests := []struct {
		caseID string
		want   [9]Orientation
	}{
		{"sune", [9]Orientation{
			FacingBack, Correct, FacingRight,
			Correct, Correct, Correct,
			Correct, Correct, FacingFront,
		}},
		{"oll-45", [9]Orientation{
			FacingLeft, FacingBack, Correct,
			Correct, Correct, Correct,
			FacingLeft, FacingFront, Correct,
		}},
		{"insert", [9]Orientation{
			Correct, Correct, Correct,
			Correct, Correct, Correct,
			Correct, Correct, Unknown,
		}},
	}
	for _, tt := range tests {
		p := derive(t, d, tt.caseID, RotNone)
		if p.Orientation != tt.want {
			t.Errorf("%s orientation = %v, want %v", tt.caseID, p.Orientation, tt.want)
			t.Log(p.State.String())
		}
	}

	if p := derive(t, d, "insert", RotNone); p.F2LIntact {
		t.Error("R' D' R D takes a corner out of the first two layers")
	}
}

func TestDerivePrimaryAlgorithm(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)
	p := derive(t, d, "sune", RotNone)
	if p.AlgorithmID != "sune" {
		t.Errorf("primary algorithm = %q, want the first listed", p.AlgorithmID)
	}
}

func TestDeriveRotation(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)

	plain := derive(t, d, "oll-45", RotNone)
	rotated := derive(t, d, "oll-45", RotY)
	if rotated == plain {
		t.Fatal("rotations must be cached separately")
	}
	if rotated.Orientation != plain.Orientation {
		t.Error("a pre-rotation should not change the orientation shape")
	}
	if rotated.Sides == plain.Sides {
		t.Error("a pre-rotation should change the side colors")
	}
	if len(rotated.Setup) != len(plain.Setup)+1 || rotated.Setup[0] != RotY.Moves()[0] {
		t.Errorf("setup = %v, want y followed by %v", rotated.Setup, plain.Setup)
	}

	all, err := d.DeriveAll("oll-45")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 || all[0] != plain || all[1] != rotated {
		t.Errorf("DeriveAll should reuse cached patterns: %v", all)
	}
	if d.Cached() != 4 {
		t.Errorf("Cached() = %d, want 4", d.Cached())
	}
}

func TestDeriveIsCached(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)
	first := derive(t, d, "sune", RotNone)
	before := first.State
	second := derive(t, d, "sune", RotNone)
	if first != second {
		t.Error("second call should return the cached pattern")
	}
	if !cube.Equal(before, second.State) {
		t.Error("cached state changed between calls")
	}
}

func TestDeriveMissingCase(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)
	for _, id := range []string{"empty", "no-such-case"} {
		p, err := d.Derive(id, RotNone)
		if p != nil || err != nil {
			t.Errorf("Derive(%q) = %v, %v; want nil, nil", id, p, err)
		}
	}
	if all, err := d.DeriveAll("empty"); all != nil || err != nil {
		t.Errorf("DeriveAll(empty) = %v, %v", all, err)
	}

	if p, err := NewDeriver(nil, nil).Derive("auf", RotNone); p != nil || err != nil {
		t.Errorf("nil catalogue: got %v, %v", p, err)
	}
}

func TestDeriveErrors(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)
	if _, err := d.Derive("broken", RotNone); !errors.Is(err, algorithm.ErrUnknownAlgorithm) {
		t.Errorf("got %v, want ErrUnknownAlgorithm", err)
	}
	if _, err := d.Derive("auf", Rotation(9)); err == nil {
		t.Error("invalid rotation should fail")
	}
}

func TestMaskTop(t *testing.T) {
	d := NewDeriver(newCatalogue(t), nil)
	p := derive(t, d, "sune", RotNone)

	visible := 0
	for face := range p.TopMask.Facelets {
		for _, col := range p.TopMask.Facelets[face] {
			switch col {
			case cube.Yellow:
				visible++
			case cube.Masked:
			default:
				t.Fatalf("TopMask shows %s", col)
			}
		}
	}
	if visible != 9 {
		t.Errorf("%d yellow stickers visible, want 9", visible)
	}
}

func TestParseRotation(t *testing.T) {
	for _, r := range Rotations {
		got, ok := ParseRotation(r.String())
		if !ok || got != r {
			t.Errorf("ParseRotation(%q) = %v, %v", r.String(), got, ok)
		}
	}
	if _, ok := ParseRotation("x"); ok {
		t.Error("x is not a view rotation")
	}
}

package cubealg

import (
	"errors"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	if !NewCube().IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	if !c.IsF2LSolved() || !c.IsTopOriented() {
		t.Error("T-perm only permutes the last layer")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
	}
}

func TestApplyNotation(t *testing.T) {
	a := NewCube()
	if err := a.ApplyNotation("R U R' U'"); err != nil {
		t.Fatal(err)
	}
	b := NewCube()
	b.Apply(SexyMove...)
	if !a.Equal(b) {
		t.Error("notation and predefined moves should agree")
	}

	clone := a.Clone()
	clone.Apply(InvertMoves(SexyMove)...)
	if !clone.IsSolved() || a.IsSolved() {
		t.Error("Clone should be independent of the original")
	}

	if err := a.ApplyNotation("#!?"); !errors.Is(err, ErrNoMoves) {
		t.Errorf("got %v, want ErrNoMoves", err)
	}
}

func TestParseAndFormat(t *testing.T) {
	moves := ParseMoves("r  U2 M' x")
	if got := FormatMoves(moves); got != "r U2 M' x" {
		t.Errorf("FormatMoves = %q", got)
	}
	if _, err := ParseMovesStrict("(1, 2, 3)"); !errors.Is(err, ErrNoMoves) {
		t.Errorf("got %v, want ErrNoMoves", err)
	}
	if _, err := ParseMovesStrict("  "); err != nil {
		t.Errorf("blank text is not an error, got %v", err)
	}
}

func TestEngineExpand(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}

	x, err := e.Expand("oll-45")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Notation(); got != "F R U R' U' F'" {
		t.Errorf("oll-45 = %q", got)
	}

	x, err = e.Expand("double-sune")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Notation(); got != "R U R' U R U' R' U R U2 R'" {
		t.Errorf("double-sune = %q", got)
	}

	if _, err := e.Expand("missing"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("got %v, want ErrUnknownAlgorithm", err)
	}

	x, err = e.ExpandAlgorithm(Algorithm{ID: "adhoc", Steps: []Step{RefStep("sexy", true, 1), MovesStep("R")}})
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Notation(); got != "U R U'" {
		t.Errorf("[sexy]' R = %q, want \"U R U'\"", got)
	}
}

func TestEngineMaxDepth(t *testing.T) {
	yaml := []byte(`
algorithms:
  - id: a
    steps:
      - ref: b
  - id: b
    steps:
      - ref: a
`)
	e, err := New(WithCatalogueYAML(yaml), WithMaxDepth(3))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Expand("a"); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("got %v, want ErrMaxDepth", err)
	}
}

func TestEngineBadCatalogue(t *testing.T) {
	yaml := []byte(`
algorithms:
  - id: a
    steps:
      - moves: "R"
cases:
  - id: c
    algorithms: [nope]
`)
	if _, err := New(WithCatalogueYAML(yaml)); !errors.Is(err, ErrMissingRef) {
		t.Errorf("got %v, want ErrMissingRef", err)
	}
	if _, err := New(WithCatalogueFile("does/not/exist.yaml")); err == nil {
		t.Error("missing catalogue file should fail")
	}
}

func TestEngineDerive(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}

	p, err := e.Derive("pll-t", RotNone)
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.AlgorithmID != "pll-t" || !p.F2LIntact {
		t.Fatalf("unexpected pattern %+v", p)
	}
	if p.Sides.Front != [3]Color{Green, Green, Orange} {
		t.Errorf("front strip = %v", p.Sides.Front)
	}

	again, _ := e.Derive("pll-t", RotNone)
	if again != p {
		t.Error("derived patterns should be cached")
	}

	p, err = e.Derive("nope", RotY)
	if p != nil || err != nil {
		t.Errorf("unknown case: got %v, %v", p, err)
	}
}

func TestEngineLintDefault(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if r := e.Lint(); !r.OK() {
		for _, i := range r.Issues {
			t.Log(i)
		}
		t.Error("built-in catalogue should lint clean")
	}
	if len(e.Cases()) != 18 || len(e.Algorithms()) == 0 {
		t.Errorf("%d cases, %d algorithms", len(e.Cases()), len(e.Algorithms()))
	}
}

func TestRenderingSurface(t *testing.T) {
	a := MoveAnimation(R)
	if a.Axis != 'x' || a.Degrees != -90 || a.FullCube {
		t.Errorf("MoveAnimation(R) = %+v", a)
	}
	if !MoveAnimation(X).FullCube {
		t.Error("x should animate the full cube")
	}

	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	x, err := e.Expand("double-sune")
	if err != nil {
		t.Fatal(err)
	}
	var annotated []MoveWithMeta = x.MovesWithMeta
	var groups []StepMoves = x.MovesByStep
	if len(annotated) == 0 || len(groups) == 0 {
		t.Fatalf("expansion has %d annotated moves, %d groups", len(annotated), len(groups))
	}

	p, err := e.Derive("pll-t", RotNone)
	if err != nil {
		t.Fatal(err)
	}
	for i, o := range p.Orientation {
		if o != Correct {
			t.Errorf("position %d = %v, want Correct", i, o)
		}
	}
	var sides Sides = p.Sides
	if sides.Back == ([3]Color{}) {
		t.Error("back strip is empty")
	}
	masked := 0
	for _, face := range p.TopMask.Facelets {
		for _, c := range face {
			if c == Masked {
				masked++
			}
		}
	}
	if masked == 0 {
		t.Error("top mask hides nothing")
	}
}

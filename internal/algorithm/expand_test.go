package algorithm

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

// fixture is a small in-memory catalogue.
type fixture map[string]Algorithm

func (f fixture) Algorithm(id string) (Algorithm, bool) {
	a, ok := f[id]
	return a, ok
}

func (f fixture) AlgorithmsForCase(caseID string) []Algorithm {
	if a, ok := f[caseID]; ok {
		return []Algorithm{a}
	}
	return nil
}

func newFixture() fixture {
	f := fixture{}
	add := func(id string, steps ...Step) {
		f[id] = Algorithm{ID: id, Steps: steps}
	}
	add("sexy", MovesStep("R U R' U'"))
	add("sledge", MovesStep("R' F R F'"))
	add("auf", MovesStep("U"))
	add("nothing", MovesStep("R"), MovesStep("R'"))
	add("oll-33", RefStep("sexy", false, 1), RefStep("sledge", false, 1))
	add("oll-45", MovesStep("F"), RefStep("sexy", false, 1), MovesStep("F'"))
	add("double-sexy", RefStep("sexy", false, 2))
	add("auf2", RefStep("auf", false, 2))
	add("auf-back", RefStep("auf", false, 1), RefStep("auf", true, 1))
	add("nested", RefStep("oll-45", true, 1))
	add("inverse-nothing", RefStep("nothing", true, 3))
	add("broken", MovesStep("R"), RefStep("missing", false, 1))
	add("loop-a", RefStep("loop-b", false, 1))
	add("loop-b", RefStep("loop-a", false, 1))
	add("level-1", RefStep("auf", false, 1))
	add("level-2", RefStep("level-1", false, 1))
	return f
}

func expandText(t *testing.T, e *Expander, id string) string {
	t.Helper()
	x, err := e.ExpandID(id)
	if err != nil {
		t.Fatalf("ExpandID(%q): %v", id, err)
	}
	return x.Notation()
}

func TestExpandLiteral(t *testing.T) {
	e := NewExpander(newFixture())
	x, err := e.Expand(Algorithm{ID: "lit", Steps: []Step{MovesStep("R U R' U'")}})
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Notation(); got != "R U R' U'" {
		t.Errorf("effective moves = %q", got)
	}
	if len(x.MovesByStep) != 1 || len(x.MovesWithMeta) != 4 {
		t.Errorf("got %d groups and %d annotated moves", len(x.MovesByStep), len(x.MovesWithMeta))
	}

	c := cube.Solved().ApplyMoves(x.Moves)
	if c.IsSolved() {
		t.Error("R U R' U' should scramble the cube")
	}
	if !c.ApplyMoves(notation.InvertMoves(x.Moves)).IsSolved() {
		t.Error("applying the inverse should restore every sticker")
		t.Log(c.String())
	}
}

func TestExpandAdjacentCancel(t *testing.T) {
	e := NewExpander(newFixture())
	x, err := e.ExpandID("nothing")
	if err != nil {
		t.Fatal(err)
	}
	if len(x.Moves) != 0 {
		t.Errorf("R | R' should cancel, got %q", x.Notation())
	}
	if !cube.Solved().ApplyMoves(x.Moves).IsSolved() {
		t.Error("resulting state should be solved")
	}
	if len(x.MovesWithMeta) != 2 || !x.MovesWithMeta[0].Cancelled || !x.MovesWithMeta[1].Cancelled {
		t.Errorf("both moves should be kept as cancelled: %+v", x.MovesWithMeta)
	}
}

func TestExpandCascade(t *testing.T) {
	e := NewExpander(nil)
	x, err := e.Expand(Algorithm{Steps: []Step{MovesStep("U"), MovesStep("U"), MovesStep("U'")}})
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Notation(); got != "U" {
		t.Errorf("U | U | U' = %q, want \"U\"", got)
	}
}

func TestExpandReferences(t *testing.T) {
	e := NewExpander(newFixture())
	tests := map[string]string{
		"oll-33":          "R U R' U' R' F R F'",
		"oll-45":          "F R U R' U' F'",
		"double-sexy":     "R U R' U' R U R' U'",
		"auf2":            "U2",
		"auf-back":        "",
		"nested":          "F U R U' R' F'",
		"inverse-nothing": "",
		"level-2":         "U",
	}
	for id, want := range tests {
		if got := expandText(t, e, id); got != want {
			t.Errorf("%s = %q, want %q", id, got, want)
		}
	}
}

func TestExpandRepeatGroups(t *testing.T) {
	e := NewExpander(newFixture())
	x, err := e.ExpandID("auf2")
	if err != nil {
		t.Fatal(err)
	}
	if len(x.MovesByStep) != 2 {
		t.Fatalf("repeat 2 should emit 2 groups, got %d", len(x.MovesByStep))
	}
	for r, g := range x.MovesByStep {
		if g.StepIndex != 0 || g.Repetition != r || g.RefID != "auf" {
			t.Errorf("group %d = %+v", r, g)
		}
	}
	last := x.MovesWithMeta[len(x.MovesWithMeta)-1]
	if !last.IsResult || last.RefID != "auf" {
		t.Errorf("U | U should fold into a U2 result tagged with the reference, got %+v", last)
	}
}

func TestExpandUnknownReference(t *testing.T) {
	e := NewExpander(newFixture())
	if _, err := e.ExpandID("broken"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("got %v, want ErrUnknownAlgorithm", err)
	}
	if _, err := e.ExpandID("no-such-id"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("got %v, want ErrUnknownAlgorithm", err)
	}
}

func TestExpandCycle(t *testing.T) {
	e := NewExpander(newFixture())
	if _, err := e.ExpandID("loop-a"); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("got %v, want ErrMaxDepth", err)
	}
}

func TestWithMaxDepth(t *testing.T) {
	e := NewExpander(newFixture(), WithMaxDepth(1))
	if e.MaxDepth() != 1 {
		t.Errorf("MaxDepth() = %d", e.MaxDepth())
	}
	if _, err := e.ExpandID("level-1"); err != nil {
		t.Errorf("one level of nesting should pass: %v", err)
	}
	if _, err := e.ExpandID("level-2"); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("two levels of nesting: got %v, want ErrMaxDepth", err)
	}
}

func TestAlgorithmInverseRoundTrip(t *testing.T) {
	f := newFixture()
	e := NewExpander(f)
	for id := range f {
		x, err := e.ExpandID(id)
		if err != nil {
			continue
		}
		c := cube.Solved().ApplyMoves(x.Moves).ApplyMoves(notation.InvertMoves(x.Moves))
		if !c.IsSolved() {
			t.Errorf("%s followed by its inverse is not solved", id)
		}
	}
}

func TestStepString(t *testing.T) {
	a := Algorithm{Steps: []Step{MovesStep("F"), RefStep("sexy", true, 2), MovesStep("F'")}}
	if got, want := a.String(), "F [sexy]'x2 F'"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

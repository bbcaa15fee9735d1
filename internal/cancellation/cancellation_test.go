package cancellation

import (
	"encoding/json"
	"testing"

	"github.com/kr/pretty"

	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

func group(step int, text string) StepMoves {
	return StepMoves{StepIndex: step, Moves: notation.Parse(text)}
}

func TestCombine(t *testing.T) {
	r := func(turn types.Turn) types.Move { return types.Move{Base: types.BaseR, Turn: turn} }
	tests := []struct {
		a, b   types.Turn
		want   types.Turn
		wantOK bool
	}{
		{types.TurnCW, types.TurnCCW, 0, false},
		{types.TurnCW, types.TurnCW, types.Turn180, true},
		{types.TurnCW, types.Turn180, types.TurnCCW, true},
		{types.Turn180, types.Turn180, 0, false},
		{types.TurnCCW, types.TurnCCW, types.Turn180, true},
		{types.Turn180, types.TurnCCW, types.TurnCW, true},
	}
	for _, tt := range tests {
		got, ok := Combine(r(tt.a), r(tt.b))
		if ok != tt.wantOK || (ok && got != r(tt.want)) {
			t.Errorf("Combine(%s, %s) = %s, %v; want %s, %v", r(tt.a), r(tt.b), got, ok, r(tt.want), tt.wantOK)
		}
	}
}

func TestCombinePanicsOnMismatchedBases(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Combine(R, U) should panic")
		}
	}()
	Combine(types.Move{Base: types.BaseR, Turn: types.TurnCW}, types.Move{Base: types.BaseU, Turn: types.TurnCW})
}

func TestApplyCascade(t *testing.T) {
	ms := Apply([]StepMoves{group(0, "U"), group(1, "U"), group(2, "U'")})

	if got := notation.Format(Effective(ms)); got != "U" {
		t.Errorf("effective moves = %q, want \"U\"", got)
	}
	if len(ms) != 5 {
		t.Fatalf("annotated sequence has %d entries, want 5: %# v", len(ms), pretty.Formatter(ms))
	}
	if n := CancelledCount(ms); n != 4 {
		t.Errorf("%d cancelled entries, want 4", n)
	}

	half := ms[2]
	if !half.IsResult || !half.Cancelled || half.Move.Turn != types.Turn180 || half.StepIndex != 1 {
		t.Errorf("U U should produce a cancelled U2 result in step 1, got %+v", half)
	}
	last := ms[4]
	if !last.IsResult || last.Cancelled || last.StepIndex != 2 {
		t.Errorf("U2 U' should produce a live U result in step 2, got %+v", last)
	}
	wantSources := []types.Move{half.Move, {Base: types.BaseU, Turn: types.TurnCCW}}
	if diff := pretty.Diff(last.Sources, wantSources); len(diff) > 0 {
		t.Errorf("result sources differ: %v", diff)
	}
}

func TestApplyFullCancellation(t *testing.T) {
	ms := Apply([]StepMoves{group(0, "R"), group(1, "R'")})
	if eff := Effective(ms); len(eff) != 0 {
		t.Errorf("R | R' should cancel completely, got %v", eff)
	}
	if len(ms) != 2 {
		t.Errorf("full cancellation inserts nothing, got %d entries", len(ms))
	}
}

func TestApplyExposedPair(t *testing.T) {
	ms := Apply([]StepMoves{group(0, "R U"), group(1, "U'"), group(2, "R'")})
	if eff := Effective(ms); len(eff) != 0 {
		t.Errorf("R U | U' | R' should cancel completely, got %v", notation.Format(eff))
	}
}

func TestApplyStableBoundaries(t *testing.T) {
	tests := []struct {
		groups []StepMoves
		want   string
	}{
		{[]StepMoves{group(0, "R U R' U'")}, "R U R' U'"},
		{[]StepMoves{group(0, "R R")}, "R R"},
		{[]StepMoves{group(0, "R U"), group(1, "R U")}, "R U R U"},
		{[]StepMoves{group(0, "R U"), group(1, "U R'")}, "R U2 R'"},
		{[]StepMoves{group(0, "F R"), group(1, ""), group(2, "R F")}, "F R2 F"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := notation.Format(Effective(Apply(tt.groups))); got != tt.want {
			t.Errorf("Apply(%v) effective = %q, want %q", tt.groups, got, tt.want)
		}
	}
}

func TestApplyReferenceMetadata(t *testing.T) {
	left := StepMoves{StepIndex: 0, RefID: "sexy", Moves: notation.Parse("R U R' U'")}
	right := StepMoves{StepIndex: 1, Moves: notation.Parse("U' F")}
	ms := Apply([]StepMoves{left, right})

	var result *MoveWithMeta
	for i := range ms {
		if ms[i].IsResult {
			result = &ms[i]
		}
	}
	if result == nil {
		t.Fatal("U' | U' should produce a result")
	}
	if result.RefID != "sexy" || result.StepIndex != 1 {
		t.Errorf("result should inherit the left reference, got %+v", *result)
	}

	right.RefID, right.Inverted = "other", true
	for _, m := range Apply([]StepMoves{left, right}) {
		if m.IsResult && (m.RefID != "other" || !m.Inverted) {
			t.Errorf("right reference metadata takes precedence, got %+v", m)
		}
	}
}

func TestAnnotatedJSON(t *testing.T) {
	ms := Apply([]StepMoves{group(0, "R U"), group(1, "U R'")})

	data, err := json.Marshal(ms)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"move":"R","step_index":0},` +
		`{"move":"U","step_index":0,"cancelled":true},` +
		`{"move":"U","step_index":1,"cancelled":true},` +
		`{"move":"U2","step_index":1,"is_result":true,"sources":["U","U"]},` +
		`{"move":"R'","step_index":1}]`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	groups := []StepMoves{group(0, "R U"), group(1, "U' R'")}
	before := pretty.Sprint(groups)
	Apply(groups)
	if after := pretty.Sprint(groups); after != before {
		t.Errorf("input changed:\n%s", pretty.Diff(before, after))
	}
}

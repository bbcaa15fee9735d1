package types

import (
	"encoding/json"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	seen := make(map[Move]bool)
	for tok := 0; tok < MoveCount; tok++ {
		m := MoveFromToken(uint8(tok))
		if !m.Valid() {
			t.Fatalf("token %d decoded to invalid move %+v", tok, m)
		}
		if got := m.Token(); got != uint8(tok) {
			t.Errorf("%s: token %d, want %d", m, got, tok)
		}
		if seen[m] {
			t.Errorf("%s decoded twice", m)
		}
		seen[m] = true
	}
	if len(seen) != 54 {
		t.Errorf("got %d distinct moves, want 54", len(seen))
	}
}

func TestBaseFamilies(t *testing.T) {
	counts := make(map[Kind]int)
	for b := BaseR; b <= BaseZ; b++ {
		counts[b.Kind()]++
		got, ok := BaseFromLetter(b.Letter())
		if !ok || got != b {
			t.Errorf("BaseFromLetter(%q) = %v, %v", b.Letter(), got, ok)
		}
	}
	want := map[Kind]int{KindFace: 6, KindWide: 6, KindSlice: 3, KindRotation: 3}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s family has %d bases, want %d", k, counts[k], n)
		}
	}
	if _, ok := BaseFromLetter('Q'); ok {
		t.Error("Q should not be a base")
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		in, want Move
	}{
		{Move{BaseR, TurnCW}, Move{BaseR, TurnCCW}},
		{Move{BaseM, TurnCCW}, Move{BaseM, TurnCW}},
		{Move{BaseY, Turn180}, Move{BaseY, Turn180}},
	}
	for _, tt := range tests {
		if got := tt.in.Inverse(); got != tt.want {
			t.Errorf("%s.Inverse() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuarterTurns(t *testing.T) {
	for _, turn := range []Turn{TurnCW, TurnCCW, Turn180} {
		got, ok := TurnFromQuarters(turn.QuarterTurns())
		if !ok || got != turn {
			t.Errorf("TurnFromQuarters(%d) = %v, %v", turn.QuarterTurns(), got, ok)
		}
	}
	if _, ok := TurnFromQuarters(4); ok {
		t.Error("4 quarter turns should be the identity")
	}
	if got, _ := TurnFromQuarters(-1); got != TurnCCW {
		t.Errorf("TurnFromQuarters(-1) = %v, want CCW", got)
	}
}

func TestNotation(t *testing.T) {
	tests := map[Move]string{
		{BaseR, TurnCW}:   "R",
		{BaseRw, TurnCCW}: "r'",
		{BaseS, Turn180}:  "S2",
		{BaseX, TurnCCW}:  "x'",
	}
	for m, want := range tests {
		if got := m.Notation(); got != want {
			t.Errorf("Notation() = %q, want %q", got, want)
		}
	}
}

func TestMoveJSON(t *testing.T) {
	moves := []Move{{BaseR, TurnCCW}, {BaseUw, Turn180}, {BaseX, TurnCW}}

	data, err := json.Marshal(moves)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `["R'","u2","x"]`; got != want {
		t.Errorf("json.Marshal = %s, want %s", got, want)
	}

	var back []Move
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	for i := range moves {
		if back[i] != moves[i] {
			t.Errorf("move %d decoded as %v, want %v", i, back[i], moves[i])
		}
	}
}

func TestMoveTextRejectsInvalid(t *testing.T) {
	for _, text := range []string{"", "Q", "R3", "R''", "RU"} {
		var m Move
		if err := m.UnmarshalText([]byte(text)); err == nil {
			t.Errorf("UnmarshalText(%q) = %v, want error", text, m)
		}
	}
	if _, err := (Move{}).MarshalText(); err == nil {
		t.Error("MarshalText on the zero move should fail")
	}
}

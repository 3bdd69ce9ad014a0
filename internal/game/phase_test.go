package game

import "testing"

func TestDerivePhaseOrder(t *testing.T) {
	cases := []struct {
		name string
		obs  Snapshot
		want Phase
	}{
		{"nothing", Snapshot{}, PhaseUnknown},
		{"choices beat everything", Snapshot{WordChoices: true, BetweenWords: true, InputEditable: true, Hint: "___"}, PhaseChoosing},
		{"between words", Snapshot{BetweenWords: true, DrawingBanner: true}, PhaseBetweenWords},
		{"drawing", Snapshot{DrawingBanner: true, RoundOverlay: true}, PhaseDrawing},
		{"round overlay", Snapshot{RoundOverlay: true, InputEditable: true, Hint: "___"}, PhaseBetweenRounds},
		{"guessing with pattern", Snapshot{InputEditable: true, Hint: "__b__"}, PhaseGuessing},
		{"guessing with length only", Snapshot{InputEditable: true, Hint: "GUESS THIS", Length: 6}, PhaseGuessing},
		{"waiting for hint", Snapshot{InputEditable: true, Hint: "waiting"}, PhaseWaitingHint},
		{"hint but no input", Snapshot{Hint: "__b__"}, PhaseUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerivePhase(tc.obs); got != tc.want {
				t.Fatalf("DerivePhase = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDerivePhaseNil(t *testing.T) {
	if got := DerivePhase(nil); got != PhaseUnknown {
		t.Fatalf("DerivePhase(nil) = %s", got)
	}
	if PhaseUnknown.AllowsGuessing() || !PhaseGuessing.AllowsGuessing() {
		t.Fatal("only guessing allows guesses")
	}
}

func TestStatusTextCues(t *testing.T) {
	if !IsRoundOverText("The word was 'apple'") {
		t.Fatal("expected round over")
	}
	if !IsChoosingText("Bob is choosing a word!") {
		t.Fatal("expected choosing")
	}
	if !IsDrawingText("You are drawing now") {
		t.Fatal("expected drawing")
	}
	if IsRoundOverText("wordsmith was here") {
		t.Fatal("unexpected round over")
	}
}

func TestPhaseIsBoundary(t *testing.T) {
	for _, p := range []Phase{PhaseChoosing, PhaseBetweenWords, PhaseBetweenRounds} {
		if !p.IsBoundary() {
			t.Fatalf("%s should be a boundary", p)
		}
	}
	for _, p := range []Phase{PhaseUnknown, PhaseWaitingHint, PhaseDrawing, PhaseGuessing} {
		if p.IsBoundary() {
			t.Fatalf("%s should not be a boundary", p)
		}
	}
}

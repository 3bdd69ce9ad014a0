package pattern

import (
	"slices"
	"testing"
)

func TestRankPrefersMultiWordAndHyphenated(t *testing.T) {
	in := []string{"zebra", "ice cream", "band-aid", "apple"}
	got := Rank(in, "")
	want := []string{"ice cream", "band-aid", "apple", "zebra"}
	if !slices.Equal(got, want) {
		t.Fatalf("Rank = %v, want %v", got, want)
	}
	if in[0] != "zebra" {
		t.Fatalf("Rank modified its input: %v", in)
	}
}

func TestRankLengthBreaksTies(t *testing.T) {
	got := Rank([]string{"cat", "giraffe", "Bee", "ant"}, "___")
	want := []string{"giraffe", "ant", "Bee", "cat"}
	if !slices.Equal(got, want) {
		t.Fatalf("Rank = %v, want %v", got, want)
	}
}

func TestKnownLetters(t *testing.T) {
	if n := KnownLetters("_a_b_ 2c"); n != 3 {
		t.Fatalf("KnownLetters = %d, want 3", n)
	}
}

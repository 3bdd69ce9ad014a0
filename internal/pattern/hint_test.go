package pattern

import (
	"strings"
	"testing"
)

func TestSanitizeHint(t *testing.T) {
	if got := SanitizeHint("  _ _ | B_ 7 "); got != "_ _ b_" {
		t.Fatalf("SanitizeHint = %q", got)
	}
}

func TestIsLikelyHint(t *testing.T) {
	cases := map[string]bool{
		"__b__":   true,
		"___ ___": true,
		"___-__":  true,
		"hello":   false,
		"":        false,
		"__1__":   false,
	}
	for in, want := range cases {
		if got := IsLikelyHint(in); got != want {
			t.Errorf("IsLikelyHint(%q) = %v, want %v", in, got, want)
		}
	}
	if long := strings.Repeat("_", 50); IsLikelyHint(long) {
		t.Errorf("IsLikelyHint accepted a %d-char hint", len(long))
	}
}

func TestExtractLength(t *testing.T) {
	if n, ok := ExtractLength("Guess this 3 7"); !ok || n != 7 {
		t.Fatalf("ExtractLength = %d, %v", n, ok)
	}
	if _, ok := ExtractLength("word 1"); ok {
		t.Fatal("expected 1 to be rejected")
	}
	if _, ok := ExtractLength("12 letters, 30"); ok {
		t.Fatal("expected 30 to be rejected")
	}
	if _, ok := ExtractLength("no digits"); ok {
		t.Fatal("expected no length")
	}
}

func TestResolveHint(t *testing.T) {
	if got := ResolveHint("GUESS THIS", 5); got != "_____" {
		t.Fatalf("ResolveHint length fallback = %q", got)
	}
	if got := ResolveHint("__B__", 0); got != "__b__" {
		t.Fatalf("ResolveHint = %q", got)
	}
	if got := ResolveHint("", 0); got != "" {
		t.Fatalf("ResolveHint empty = %q", got)
	}
}

func TestParseHint(t *testing.T) {
	h := ParseHint("  __B__ ")
	if h.Blank != "__b__" || h.Compact != "2b2" || !h.HasBlanks() {
		t.Fatalf("ParseHint = %+v", h)
	}
	if h := ParseHint("apple"); h.Compact != "" || h.HasBlanks() {
		t.Fatalf("ParseHint without blanks = %+v", h)
	}
}

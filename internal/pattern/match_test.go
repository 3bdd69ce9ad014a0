package pattern

import "testing"

func TestMatchesBlank(t *testing.T) {
	cases := []struct {
		word, pattern string
		want          bool
	}{
		{"apple", "_pp__", true},
		{"apple", "_pp_", false},
		{"Apple", "A____", true},
		{"ice cream", "___ _____", true},
		{"ice-cream", "___ _____", false},
		{"ice cream", "_________", false},
		{"band-aid", "____-___", true},
		{"mr. bean", "__ ____", true},
		{"apple", "no blanks here", true},
		{"apple", "", true},
		{"robin", "__b__", true},
		{"7up", "___", false},
		{"café", "____", true},
		{"cabin", "__b__", true},
		{"cable", "_a_l_", true},
		{"cable", "_o___", false},
	}
	for _, tc := range cases {
		if got := MatchesBlank(tc.word, tc.pattern); got != tc.want {
			t.Errorf("MatchesBlank(%q, %q) = %v, want %v", tc.word, tc.pattern, got, tc.want)
		}
	}
}

func TestMatchesBlankIsReflexive(t *testing.T) {
	for _, word := range []string{"skribbl", "ice cream", "band-aid", "x"} {
		runes := []rune(word)
		// every subset of letter positions replaced by '_'
		for mask := 0; mask < 1<<len(runes); mask++ {
			p := make([]rune, len(runes))
			copy(p, runes)
			for i, r := range runes {
				if mask&(1<<i) != 0 && r != ' ' && r != '-' {
					p[i] = '_'
				}
			}
			if !MatchesBlank(word, string(p)) {
				t.Fatalf("MatchesBlank(%q, %q) = false", word, string(p))
			}
		}
	}
}

func TestMatchesCompact(t *testing.T) {
	cases := []struct {
		word, pattern string
		want          bool
	}{
		{"skribbl", "7", true},
		{"skribbl", "8", false},
		{"ice cream", "8", false},
		{"ice cream", "3 5", true},
		{"ice cream", "5 3", false},
		{"hello planet", "5 6", true},
		{"hello world", "5 6", false},
		{"helloworld", "5 5", false},
		{"tyrannosaurus", "tr3", false},
		{"trex", "tr2", true},
		{"TRex", "tr2", true},
		{"t-rex", "tr3", false},
		{"pre-school", "3-6", true},
		{"pre-school", "6-3", false},
		{"preschool", "3-6", false},
		{"pre school", "3-6", false},
		{"pre-sch-ool", "3-6", false},
		{"a-bc-d", "1-3", false},
		{"ended", "3ed", true},
		{"apple", "3ed", false},
		{"carpeted", "2r3e1", true},
		{"carpets", "2r3e1", false},
		{"cabin", "2b2", true},
		{"cabins", "2b2", false},
		{"cab in", "2b2", false},
		{"anything", "", true},
		{"anything", "   ", true},
	}
	for _, tc := range cases {
		if got := MatchesCompact(tc.word, tc.pattern); got != tc.want {
			t.Errorf("MatchesCompact(%q, %q) = %v, want %v", tc.word, tc.pattern, got, tc.want)
		}
	}
}

// Unrecognized compact shapes do not filter anything out.
func TestMatchesCompactUnrecognizedShapesAreUnconstrained(t *testing.T) {
	for _, p := range []string{"!!", "...", "tr3e", "3 x", "a-b", "3--4"} {
		for _, word := range []string{"apple", "ice cream", "band-aid"} {
			if !MatchesCompact(word, p) {
				t.Errorf("MatchesCompact(%q, %q) = false, want true", word, p)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Ice   Cream ": "ice cream",
		"FOX":            "fox",
		"\tpre-school\n": "pre-school",
		"   ":            "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
	if got := CleanPunctuation(`"mr. bean!" (uk)?`); got != "mr bean uk" {
		t.Errorf("CleanPunctuation = %q", got)
	}
}

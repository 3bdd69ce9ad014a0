// internal/pattern/rank.go

package pattern

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// KnownLetters counts the literal letters present in a blank or compact pattern.
func KnownLetters(p string) int {
	n := 0
	for _, r := range p {
		if isLetter(r) {
			n++
		}
	}
	return n
}

// Score weights a candidate: multi-word guesses first, then hyphenated ones,
// with length only as a fractional tie-break.
func Score(candidate string, known int) float64 {
	n := Normalize(candidate)
	score := float64(known * 10)
	if strings.Contains(n, "-") {
		score++
	}
	if strings.Contains(n, " ") {
		score += 2
	}
	return score + float64(utf8.RuneCountInString(n))/100
}

// Rank orders candidates by descending Score, ties broken case-insensitively
// in ascending order. The input slice is not modified.
func Rank(candidates []string, p string) []string {
	known := KnownLetters(p)
	type scored struct {
		word  string
		key   string
		score float64
	}
	rows := make([]scored, len(candidates))
	for i, w := range candidates {
		rows[i] = scored{word: w, key: strings.ToLower(w), score: Score(w, known)}
	}
	slices.SortStableFunc(rows, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.word
	}
	return out
}

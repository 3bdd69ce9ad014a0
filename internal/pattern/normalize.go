// internal/pattern/normalize.go
//
// Shared string helpers for the pattern codec and matchers.
//
// Two notations are used throughout the package:
//   - blank pattern:   "__b__", "___ b__", "___-____" ('_' marks an unknown letter)
//   - compact pattern: "2b2", "3 3", "3-4", "tr3", "3ed", "2r3e1"
//
// Both are compared against Candidates, which are always Normalize()d first.

package pattern

import (
	"strings"
)

// punctuation is stripped from both hints and words before blank matching.
var punctuation = strings.NewReplacer(
	"'", "",
	`"`, "",
	".", "",
	",", "",
	"!", "",
	"?", "",
	"(", "",
	")", "",
)

// Normalize lower-cases, trims and collapses internal whitespace to single spaces.
// Equality and de-duplication of candidates always use this form.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// CleanPunctuation removes quotes, '.', ',', '!', '?', '(' and ')'.
func CleanPunctuation(s string) string {
	return punctuation.Replace(s)
}

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// letters returns only the ASCII letters of s, lower-cased.
func letters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isLetter(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

// countSlots counts the '_' and letter characters of s; each is one letter slot.
func countSlots(s string) int {
	n := 0
	for _, r := range s {
		if r == '_' || isLetter(r) {
			n++
		}
	}
	return n
}

// hasSeparator reports whether a word contains a space or hyphen.
func hasSeparator(word string) bool {
	return strings.ContainsAny(word, " -")
}

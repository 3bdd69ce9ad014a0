// internal/pattern/match.go
//
// Matching predicates for candidate words.
//
// Neither predicate ever errors. A pattern that imposes no constraint, or a
// compact shape the grammar does not recognize, matches every word: filtering
// errs on the side of keeping candidates.

package pattern

import (
	"strings"
	"unicode"
)

// MatchesBlank reports whether word fits the blank pattern position by position.
//
// Both sides are normalized and punctuation-stripped first. A pattern without
// any '_' imposes no constraint here and always matches. Otherwise the lengths
// must agree; '_' matches exactly one letter (never a digit, space or hyphen), and every
// other pattern character must equal the word's character exactly.
func MatchesBlank(word, blank string) bool {
	p := []rune(CleanPunctuation(Normalize(blank)))
	if !containsRune(p, '_') {
		return true
	}
	w := []rune(CleanPunctuation(Normalize(word)))
	if len(w) != len(p) {
		return false
	}
	for i, pc := range p {
		c := w[i]
		if pc == '_' {
			if !unicode.IsLetter(c) {
				return false
			}
			continue
		}
		if pc != c {
			return false
		}
	}
	return true
}

// MatchesCompact reports whether word satisfies the compact pattern.
// An empty pattern, or one of unrecognized shape, matches everything.
func MatchesCompact(word, compactPattern string) bool {
	trimmed := strings.TrimSpace(compactPattern)
	if trimmed == "" {
		return true
	}
	c := parseCompact(trimmed)
	switch c.kind {
	case shapeLength:
		if hasSeparator(word) {
			return false
		}
		return len(letters(word)) == c.counts[0]

	case shapeHyphen:
		return matchesHyphen(word, c.counts[0], c.counts[1])

	case shapePrefix:
		if hasSeparator(word) {
			return false
		}
		l := letters(word)
		return len(l) == len(c.literal)+c.counts[0] && strings.HasPrefix(l, c.literal)

	case shapeSuffix:
		if hasSeparator(word) {
			return false
		}
		l := letters(word)
		return len(l) == len(c.literal)+c.counts[0] && strings.HasSuffix(l, c.literal)

	case shapeMixed:
		if hasSeparator(word) {
			return false
		}
		return matchesSegments([]rune(letters(word)), c.segments)

	case shapeMulti:
		parts := strings.Fields(word)
		if len(parts) != len(c.counts) {
			return false
		}
		for i, part := range parts {
			if len(letters(part)) != c.counts[i] {
				return false
			}
		}
		return true
	}

	// Unrecognized shapes ("tr3e", "!!", "3 x") impose no constraint.
	return true
}

// matchesHyphen checks the N-M shape: exactly the N-th letter is followed by
// the word's only hyphen and the word has N+M letters and no spaces.
func matchesHyphen(word string, before, after int) bool {
	if strings.Count(word, "-") != 1 || strings.Contains(word, " ") {
		return false
	}
	if len(letters(word)) != before+after {
		return false
	}
	w := []rune(word)
	seen := 0
	for i, r := range w {
		if !isLetter(r) {
			continue
		}
		seen++
		if seen == before && i+1 < len(w) && w[i+1] == '-' {
			return true
		}
	}
	return false
}

// matchesSegments walks the letters of a word against a mixed compact token.
func matchesSegments(l []rune, segs []segment) bool {
	pos := 0
	for _, s := range segs {
		if s.isCount() {
			if s.count > len(l)-pos {
				return false
			}
			pos += s.count
			continue
		}
		for _, want := range strings.ToLower(s.literal) {
			if pos >= len(l) || l[pos] != want {
				return false
			}
			pos++
		}
	}
	return pos == len(l)
}

func containsRune(rs []rune, want rune) bool {
	for _, r := range rs {
		if r == want {
			return true
		}
	}
	return false
}

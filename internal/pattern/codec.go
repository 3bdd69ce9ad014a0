// internal/pattern/codec.go
//
// Bidirectional translation between blank and compact patterns.
//
// BlankToCompact is lossy: when the hint reveals two or more letters the
// positions are dropped and only the slot count survives. Callers that need
// full fidelity keep the blank pattern around and match against it directly.

package pattern

import (
	"strconv"
	"strings"
)

// maxBlankLen bounds the blank pattern CompactToBlank will build.
const maxBlankLen = 256

// BlankToCompact converts a lower-cased blank pattern such as "__b__" into its
// compact form ("2b2"). It returns "" when the pattern carries no usable signal.
//
// Rules, first match wins:
//  1. spaces:       per-token slot counts joined by spaces ("___ b__" → "3 3")
//  2. one hyphen:   "{before}-{after}" slot counts ("___-____" → "3-4")
//  3. one letter:   "{pos-1}{letter}{total-pos}" ("__b__" → "2b2")
//  4. otherwise:    total slot count ("_ab__" → "5")
func BlankToCompact(blank string) string {
	cleaned := CleanPunctuation(blank)

	if strings.Contains(cleaned, " ") {
		tokens := strings.Split(cleaned, " ")
		counts := make([]string, len(tokens))
		for i, tok := range tokens {
			counts[i] = strconv.Itoa(countSlots(tok))
		}
		return strings.Join(counts, " ")
	}

	if parts := strings.Split(cleaned, "-"); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return strconv.Itoa(countSlots(parts[0])) + "-" + strconv.Itoa(countSlots(parts[1]))
	}

	total := 0
	known := 0
	var pos int
	var letter rune
	for _, r := range cleaned {
		if r != '_' && !isLetter(r) {
			continue
		}
		total++
		if isLetter(r) {
			known++
			pos, letter = total, r
		}
	}

	if known == 1 {
		return strconv.Itoa(pos-1) + string(letter) + strconv.Itoa(total-pos)
	}
	if total == 0 {
		return ""
	}
	return strconv.Itoa(total)
}

// CompactToBlank expands a compact pattern into a blank pattern, e.g.
// "2r3e1" → "__r___e_" and "5 6" → "_____ ______". Unknown shapes yield "".
func CompactToBlank(compactPattern string) string {
	c := parseCompact(strings.TrimSpace(compactPattern))

	var out string
	switch c.kind {
	case shapeLength:
		if c.counts[0] > maxBlankLen {
			return ""
		}
		out = blanks(c.counts[0])
	case shapeHyphen:
		if c.counts[0] > maxBlankLen || c.counts[1] > maxBlankLen-c.counts[0] {
			return ""
		}
		out = blanks(c.counts[0]) + "-" + blanks(c.counts[1])
	case shapeMixed:
		if slots(c.segments) > maxBlankLen {
			return ""
		}
		var b strings.Builder
		for _, s := range c.segments {
			if s.isCount() {
				b.WriteString(blanks(s.count))
			} else {
				b.WriteString(s.literal)
			}
		}
		out = b.String()
	case shapeSuffix:
		if c.counts[0] > maxBlankLen {
			return ""
		}
		out = blanks(c.counts[0]) + c.literal
	case shapePrefix:
		if c.counts[0] > maxBlankLen {
			return ""
		}
		out = c.literal + blanks(c.counts[0])
	case shapeMulti:
		total := 0
		for _, n := range c.counts {
			if n > maxBlankLen-total {
				return ""
			}
			total += n
		}
		words := make([]string, len(c.counts))
		for i, n := range c.counts {
			words[i] = blanks(n)
		}
		out = strings.Join(words, " ")
	}
	return out
}

func blanks(n int) string { return strings.Repeat("_", n) }

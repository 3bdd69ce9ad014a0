// internal/pattern/hint.go
//
// Helpers that turn the raw text of a game's hint area into patterns.

package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	maxHintLen    = 48
	minHintLength = 2
	maxHintLength = 25
)

var (
	reHintChars   = regexp.MustCompile(`^[a-z_\-\s]+$`)
	reNotHintChar = regexp.MustCompile(`[^a-z_\-\s]`)
	reLengthNum   = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// Hint is a parsed hint: the normalized text, its blank form and, when the
// text carries blanks, the derived compact form.
type Hint struct {
	Text    string `json:"text"`
	Blank   string `json:"blank"`
	Compact string `json:"compact"`
}

// HasBlanks reports whether the hint constrains positions.
func (h Hint) HasBlanks() bool { return strings.Contains(h.Blank, "_") }

// SanitizeHint lower-cases hint-area text, turns '|' separators and runs of
// whitespace into single spaces, and drops anything that is not a letter,
// '_', '-' or space.
func SanitizeHint(text string) string {
	t := strings.ToLower(strings.ReplaceAll(text, "|", " "))
	t = reNotHintChar.ReplaceAllString(t, " ")
	return strings.Join(strings.Fields(t), " ")
}

// IsLikelyHint reports whether sanitized text looks like a blank pattern.
func IsLikelyHint(text string) bool {
	if text == "" || len(text) > maxHintLen {
		return false
	}
	return reHintChars.MatchString(text) && strings.Contains(text, "_")
}

// ExtractLength returns the last 1–2 digit number in text when it is a
// plausible word length (2..25).
func ExtractLength(text string) (int, bool) {
	nums := reLengthNum.FindAllString(text, -1)
	if len(nums) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(nums[len(nums)-1])
	if err != nil || n < minHintLength || n > maxHintLength {
		return 0, false
	}
	return n, true
}

// ResolveHint picks the blank pattern for the current moment: the sanitized
// hint text when it looks like a pattern, otherwise a run of '_' of the known
// length, otherwise "".
func ResolveHint(raw string, length int) string {
	if hint := SanitizeHint(raw); IsLikelyHint(hint) {
		return hint
	}
	if length > 0 && length <= maxBlankLen {
		return blanks(length)
	}
	return ""
}

// ParseHint normalizes a hint and derives its compact form when it has blanks.
func ParseHint(raw string) Hint {
	text := Normalize(raw)
	h := Hint{Text: text, Blank: text}
	if h.HasBlanks() {
		h.Compact = BlankToCompact(text)
	}
	return h
}

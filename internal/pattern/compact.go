// internal/pattern/compact.go
//
// Parser for the compact notation. The codec and the matcher both dispatch on
// the shape returned here, so the grammar lives in exactly one place.
//
// Shapes (single token unless noted):
//   N        "7"      seven letters, one word
//   N-M      "3-6"    hyphenated, hyphen after the N-th letter
//   L+N      "tr3"    starts with the letters, N more follow
//   N+L      "3ed"    N letters, then ends with the letters
//   mixed    "2r3e1"  alternating counts and literal runs
//   multi    "5 6"    several all-digit tokens, one per word

package pattern

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

type shapeKind int

const (
	shapeNone shapeKind = iota
	shapeLength
	shapeHyphen
	shapePrefix
	shapeSuffix
	shapeMixed
	shapeMulti
)

var (
	reDigits    = regexp.MustCompile(`^\d+$`)
	reHyphen    = regexp.MustCompile(`^(\d+)-(\d+)$`)
	rePrefix    = regexp.MustCompile(`^([a-zA-Z]+)(\d+)$`)
	reSuffix    = regexp.MustCompile(`^(\d+)([a-zA-Z]+)$`)
	reMixedHead = regexp.MustCompile(`^\d+[a-zA-Z]+`)
	reMixedTail = regexp.MustCompile(`[a-zA-Z]+\d+`)
)

// segment is one run of a mixed compact token: either a count of
// unconstrained slots or a literal run.
type segment struct {
	count   int
	literal string
}

func (s segment) isCount() bool { return s.literal == "" }

// compact is a parsed compact pattern.
type compact struct {
	kind     shapeKind
	counts   []int  // shapeLength, shapeHyphen, shapeMulti, and the N of prefix/suffix
	literal  string // shapePrefix / shapeSuffix letters, lower-cased
	segments []segment
}

// parseCompact classifies a trimmed compact pattern. Anything it does not
// recognize, including counts that overflow an int, comes back as shapeNone.
func parseCompact(p string) compact {
	parts := strings.Fields(p)
	if len(parts) == 0 {
		return compact{}
	}
	if len(parts) == 1 {
		tok := parts[0]
		switch {
		case reDigits.MatchString(tok):
			if n, ok := atoi(tok); ok {
				return compact{kind: shapeLength, counts: []int{n}}
			}
		case reHyphen.MatchString(tok):
			m := reHyphen.FindStringSubmatch(tok)
			before, ok1 := atoi(m[1])
			after, ok2 := atoi(m[2])
			if ok1 && ok2 {
				return compact{kind: shapeHyphen, counts: []int{before, after}}
			}
		case rePrefix.MatchString(tok):
			m := rePrefix.FindStringSubmatch(tok)
			if n, ok := atoi(m[2]); ok {
				return compact{kind: shapePrefix, counts: []int{n}, literal: strings.ToLower(m[1])}
			}
		case reMixedHead.MatchString(tok) && reMixedTail.MatchString(tok):
			if segs, ok := splitSegments(tok); ok {
				return compact{kind: shapeMixed, segments: segs}
			}
		case reSuffix.MatchString(tok):
			m := reSuffix.FindStringSubmatch(tok)
			if n, ok := atoi(m[1]); ok {
				return compact{kind: shapeSuffix, counts: []int{n}, literal: strings.ToLower(m[2])}
			}
		}
		return compact{}
	}

	counts := make([]int, 0, len(parts))
	for _, tok := range parts {
		if !reDigits.MatchString(tok) {
			return compact{}
		}
		n, ok := atoi(tok)
		if !ok {
			return compact{}
		}
		counts = append(counts, n)
	}
	return compact{kind: shapeMulti, counts: counts}
}

// splitSegments breaks a token into maximal digit / non-digit runs.
func splitSegments(tok string) ([]segment, bool) {
	var out []segment
	start := 0
	runes := []rune(tok)
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && isDigit(runes[i]) == isDigit(runes[start]) {
			continue
		}
		run := string(runes[start:i])
		if isDigit(runes[start]) {
			n, ok := atoi(run)
			if !ok {
				return nil, false
			}
			out = append(out, segment{count: n})
		} else {
			out = append(out, segment{literal: strings.ToLower(run)})
		}
		start = i
	}
	return out, true
}

// slots is the number of letter positions the segments describe. It saturates
// at math.MaxInt.
func slots(segs []segment) int {
	n := 0
	for _, s := range segs {
		k := len([]rune(s.literal))
		if s.isCount() {
			k = s.count
		}
		if k > math.MaxInt-n {
			return math.MaxInt
		}
		n += k
	}
	return n
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

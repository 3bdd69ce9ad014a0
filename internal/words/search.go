// internal/words/search.go
//
// Word search as offered by the hints page and API:
//   - Letters (compact pattern) filters first, when given.
//   - Pattern with '_' is a blank-pattern match.
//   - Pattern without '_' is a plain substring search, or a similar-word
//     lookup when Similar is set.
//
// Results are sorted alphabetically, case-insensitively.

package words

import (
	"slices"
	"strings"

	"github.com/robalobadob/skribbl-hints/internal/pattern"
)

// Query is one search request.
type Query struct {
	Pattern string // blank pattern or free text
	Letters string // compact pattern
	Similar bool
	Limit   int // <= 0 means no limit
}

// Search filters list according to q.
func Search(list []string, q Query) []string {
	filtered := list
	if strings.TrimSpace(q.Letters) != "" {
		filtered = filter(filtered, func(w string) bool { return pattern.MatchesCompact(w, q.Letters) })
	}

	p := strings.ToLower(q.Pattern)
	var out []string
	switch {
	case p == "":
		out = slices.Clone(filtered)
	case strings.Contains(p, "_"):
		out = filter(filtered, func(w string) bool { return pattern.MatchesBlank(w, p) })
	case q.Similar:
		out = Similar(p, list)
	default:
		out = filter(filtered, func(w string) bool { return strings.Contains(strings.ToLower(w), p) })
	}

	sortFold(out)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func filter(list []string, keep func(string) bool) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func sortFold(list []string) {
	slices.SortStableFunc(list, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
}

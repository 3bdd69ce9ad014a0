// internal/words/import.go
//
// Helpers for growing the base word list from external dumps:
//   - CSV files where the first column is the word (extra columns ignored).
//   - HTML pages listing solutions as <div class="solution">word</div>.

package words

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var reSolutionDiv = regexp.MustCompile(`<div\s+class="solution"\s*>([^<]+)</div>`)

// ParseCSV returns the trimmed first column of every non-empty row.
func ParseCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("words: csv: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if w := strings.TrimSpace(row[0]); w != "" {
			out = append(out, w)
		}
	}
	return out, nil
}

// ExtractSolutions pulls the words out of solution divs in an HTML dump.
func ExtractSolutions(html string) []string {
	var out []string
	for _, m := range reSolutionDiv.FindAllStringSubmatch(html, -1) {
		if w := strings.TrimSpace(m[1]); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// NewWords returns the incoming words not already present in any of the
// existing lists, compared case-insensitively, keeping their original spelling
// and first-seen order.
func NewWords(incoming []string, existing ...[]string) []string {
	seen := make(map[string]struct{})
	for _, list := range existing {
		for _, w := range list {
			seen[strings.ToLower(w)] = struct{}{}
		}
	}
	var out []string
	for _, w := range incoming {
		lw := strings.ToLower(w)
		if _, ok := seen[lw]; ok {
			continue
		}
		seen[lw] = struct{}{}
		out = append(out, w)
	}
	return out
}

// assets/embed.go
//
// Embedded data shipped with the binary:
//   - bundled.txt: the default skribbl word list (one word per line, '#' comments).
//   - sql/*.sql:   schema migrations for the SQLite custom-word store.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed bundled.txt sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// BundledWords returns the embedded default word list as written (not normalized).
func BundledWords() ([]string, error) {
	return readLines("bundled.txt")
}

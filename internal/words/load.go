// internal/words/load.go
//
// Builds the base word list.
//
// Sources, merged in this order and deduplicated case-insensitively:
//   1. the embedded bundled list (assets/bundled.txt), unless SkipBundled
//   2. a local base file (JSON array of strings, or one word per line)
//   3. remote plain-text lists, fetched in parallel; failures are logged and skipped
//
// Environment (see internal/config):
//   WORDS_FILE=/path/to/words.json
//   WORDS_REMOTE_URLS=https://a/en.txt,https://b/en.txt

package words

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/skribbl-hints/assets"
)

const (
	defaultFetchTimeout = 15 * time.Second
	maxParallelFetches  = 4
	maxRemoteBytes      = 8 << 20
)

// Source describes where the base list comes from.
type Source struct {
	BaseFile    string
	RemoteURLs  []string
	SkipBundled bool
	Client      *http.Client
}

// Load merges all configured sources into a fresh Collection.
func Load(ctx context.Context, src Source) (*Collection, error) {
	var merged []string

	if !src.SkipBundled {
		bundled, err := assets.BundledWords()
		if err != nil {
			return nil, fmt.Errorf("words: bundled list: %w", err)
		}
		merged = append(merged, bundled...)
	}

	if src.BaseFile != "" {
		base, err := ReadWordFile(src.BaseFile)
		if err != nil {
			return nil, err
		}
		merged = append(merged, base...)
	}

	if len(src.RemoteURLs) > 0 {
		merged = append(merged, FetchRemote(ctx, src.Client, src.RemoteURLs)...)
	}

	c := NewCollection(merged...)
	if c.Len() == 0 {
		return nil, fmt.Errorf("words: %w", ErrEmpty)
	}
	log.Info().Int("words", c.Len()).Int("remote", len(src.RemoteURLs)).Msg("word list loaded")
	return c, nil
}

// ReadWordFile reads a JSON array of strings, or falls back to one word per line.
func ReadWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("words: parse %s: %w", path, err)
		}
		return list, nil
	}
	return readLines(bytes.NewReader(data))
}

// WriteWordFile writes words as an indented JSON array with a trailing newline.
func WriteWordFile(path string, list []string) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("words: write %s: %w", path, err)
	}
	return nil
}

// FetchRemote downloads plain-text word lists concurrently. Results keep the
// order of urls; a failed source contributes nothing.
func FetchRemote(ctx context.Context, client *http.Client, urls []string) []string {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	results := make([][]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			list, err := fetchList(gctx, client, u)
			if err != nil {
				log.Warn().Err(err).Str("url", u).Msg("word list fetch failed")
				return nil
			}
			results[i] = list
			return nil
		})
	}
	_ = g.Wait()

	var out []string
	for _, list := range results {
		out = append(out, list...)
	}
	return out
}

func fetchList(ctx context.Context, client *http.Client, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return readLines(io.LimitReader(res.Body, maxRemoteBytes))
}

// readLines keeps non-empty, non-comment lines as written.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// internal/words/words.go
//
// Word collection shared by the hints API, the search tools and the
// auto-guesser.
//
// Responsibilities:
//   - Hold the known words in normalized form (lower-case, single spaces).
//   - Add/remove single words with case-insensitive duplicate checks.
//   - Dedupe after bulk appends.
//
// Concurrency:
//   - Collection is safe for concurrent use (RWMutex), so HTTP handlers and a
//     running auto-guesser may share one instance.

package words

import (
	"errors"
	"sync"

	"github.com/robalobadob/skribbl-hints/internal/pattern"
)

var (
	ErrEmpty    = errors.New("words: word is empty")
	ErrExists   = errors.New("words: word already exists")
	ErrNotFound = errors.New("words: word not found")
)

// Collection is a mutable, case-insensitively deduplicated word list.
type Collection struct {
	mu    sync.RWMutex
	words []string            // normalized, insertion order
	index map[string]struct{} // normalized membership
}

// NewCollection builds a collection from raw words, dropping blanks and duplicates.
func NewCollection(raw ...string) *Collection {
	c := &Collection{}
	c.Append(raw...)
	c.Dedupe()
	return c
}

// List returns a snapshot copy of the words.
func (c *Collection) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Len returns the number of words.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.words)
}

// Contains reports whether the normalized form of w is present.
func (c *Collection) Contains(w string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[pattern.Normalize(w)]
	return ok
}

// Add inserts a word and returns its normalized form.
func (c *Collection) Add(raw string) (string, error) {
	n := pattern.Normalize(raw)
	if n == "" {
		return "", ErrEmpty
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[n]; ok {
		return n, ErrExists
	}
	if c.index == nil {
		c.index = make(map[string]struct{})
	}
	c.words = append(c.words, n)
	c.index[n] = struct{}{}
	return n, nil
}

// Remove deletes every entry equal to the normalized word.
func (c *Collection) Remove(raw string) (string, error) {
	n := pattern.Normalize(raw)
	if n == "" {
		return "", ErrEmpty
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[n]; !ok {
		return n, ErrNotFound
	}
	kept := c.words[:0]
	for _, w := range c.words {
		if w != n {
			kept = append(kept, w)
		}
	}
	c.words = kept
	delete(c.index, n)
	return n, nil
}

// Append adds words in bulk without duplicate checks; call Dedupe afterwards.
func (c *Collection) Append(raw ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		c.index = make(map[string]struct{}, len(raw))
	}
	for _, w := range raw {
		n := pattern.Normalize(w)
		if n == "" {
			continue
		}
		c.words = append(c.words, n)
		c.index[n] = struct{}{}
	}
}

// Dedupe removes repeated entries, keeping first occurrences, and returns how
// many were dropped.
func (c *Collection) Dedupe() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := len(c.words)
	c.words = Unique(c.words)
	return before - len(c.words)
}

// Unique normalizes values and drops blanks and case-insensitive repeats,
// keeping first occurrences in order.
func Unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := pattern.Normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// internal/store/memory.go
//
// Store interface for custom words plus its in-memory implementation.
//
// Custom words are the user-added extras on top of the base list. They keep
// the spelling they were added with; uniqueness is case-insensitive.
//
// Implementations:
//   - memory (this file): ephemeral, for development and tests.
//   - jsonFile (json.go): a sorted JSON array on disk.
//   - sqlite (sqlite.go): SQLite table with a mutation audit log.

package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
	ErrEmpty    = errors.New("word is required")
)

// Store defines the persistence interface for custom words.
type Store interface {
	// List returns custom words sorted case-insensitively.
	List(ctx context.Context) ([]string, error)

	// Add persists a word. Returns ErrExists for a case-insensitive duplicate.
	Add(ctx context.Context, word string) error

	// Remove deletes a word case-insensitively. Returns ErrNotFound if absent.
	Remove(ctx context.Context, word string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards words map
	words map[string]string // key -> spelling as added
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{words: make(map[string]string)}
}

func (m *memory) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.words))
	for _, w := range m.words {
		out = append(out, w)
	}
	sortWords(out)
	return out, nil
}

func (m *memory) Add(ctx context.Context, word string) error {
	word, k, err := prepare(word)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.words[k]; ok {
		return ErrExists
	}
	m.words[k] = word
	return nil
}

func (m *memory) Remove(ctx context.Context, word string) error {
	_, k, err := prepare(word)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.words[k]; !ok {
		return ErrNotFound
	}
	delete(m.words, k)
	return nil
}

// prepare trims a word and derives its case-insensitive key.
func prepare(word string) (trimmed, k string, err error) {
	trimmed = strings.TrimSpace(word)
	if trimmed == "" {
		return "", "", ErrEmpty
	}
	return trimmed, key(trimmed), nil
}

func key(word string) string {
	return strings.Join(strings.Fields(strings.ToLower(word)), " ")
}

func sortWords(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i]) < strings.ToLower(list[j])
	})
}

// ------------------------------- actor -------------------------------------

type actorKey struct{}

// WithActor tags ctx with the name of whoever performs a mutation; stores
// that keep an audit trail record it.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, name)
}

func actorFrom(ctx context.Context) string {
	name, _ := ctx.Value(actorKey{}).(string)
	return name
}

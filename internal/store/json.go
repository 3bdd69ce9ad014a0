// internal/store/json.go
//
// File-backed Store: the custom words live in a JSON array (indented, sorted).
// A missing file reads as an empty list. Writes replace the whole file via a
// temp file + rename.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type jsonFile struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore returns a Store persisting to path.
func NewJSONStore(path string) Store {
	return &jsonFile{path: path}
}

func (j *jsonFile) List(ctx context.Context) ([]string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.read()
}

func (j *jsonFile) Add(ctx context.Context, word string) error {
	word, k, err := prepare(word)
	if err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	list, err := j.read()
	if err != nil {
		return err
	}
	for _, w := range list {
		if key(w) == k {
			return ErrExists
		}
	}
	list = append(list, word)
	sortWords(list)
	return j.write(list)
}

func (j *jsonFile) Remove(ctx context.Context, word string) error {
	_, k, err := prepare(word)
	if err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	list, err := j.read()
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, w := range list {
		if key(w) != k {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(list) {
		return ErrNotFound
	}
	return j.write(kept)
}

func (j *jsonFile) read() ([]string, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", j.path, err)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse %s: %w", j.path, err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func (j *jsonFile) write(list []string) error {
	if dir := filepath.Dir(j.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, j.path)
}

// internal/config/autoguess.go
//
// YAML settings for the auto-guesser CLI. Every field is optional; zero
// values fall back to the scheduler defaults.
//
//   delay_ms: 1000
//   dot_prefix: true
//   self_name: alice
//   words_file: ./words.json
//   limits:
//     max_retries: 5
//     preview: 12
//     working_set: 1200
//     spam_cooldown_ms: 1200

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Autoguess mirrors the YAML file.
type Autoguess struct {
	// DelayMS is a pointer so an explicit 0 survives decoding.
	DelayMS   *int   `yaml:"delay_ms"`
	DotPrefix bool   `yaml:"dot_prefix"`
	SelfName  string `yaml:"self_name"`
	WordsFile string `yaml:"words_file"`
	Limits    Limits `yaml:"limits"`
}

// Limits are the scheduler bounds.
type Limits struct {
	MaxRetries     int `yaml:"max_retries"`
	Preview        int `yaml:"preview"`
	WorkingSet     int `yaml:"working_set"`
	SpamCooldownMS int `yaml:"spam_cooldown_ms"`
}

// LoadAutoguess reads path. An empty path or a missing file yields zero
// settings without error.
func LoadAutoguess(path string) (Autoguess, error) {
	var a Autoguess
	if path == "" {
		return a, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return a, nil
	}
	if err != nil {
		return a, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return a, nil
}

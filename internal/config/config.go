// internal/config/config.go
//
// Process configuration.
//
// Server settings come from the environment (optionally seeded from a .env
// file by the caller via godotenv). The auto-guesser additionally reads an
// optional YAML file; see autoguess.go.
//
// Environment:
//   PORT=5175
//   LOG_LEVEL=info
//   STORE=sqlite|json|memory        (custom words backend; default sqlite)
//   DB_PATH=./data/words.db
//   CUSTOM_WORDS_FILE=./data/custom-words.json
//   WORDS_FILE=/path/to/base-words.json
//   WORDS_REMOTE_URLS=https://a/en.txt,https://b/en.txt
//   SKIP_BUNDLED_WORDS=false
//   JWT_SECRET=...                  (admin session signing key)
//   JWT_EXPIRES_DAYS=14
//   ADMIN_PASSWORD_HASH=$2a$10$...  (bcrypt; unset = word mutations are open)
//   COOKIE_NAME=skribbl_admin
//   CLIENT_ORIGIN=http://localhost:5173
//   NODE_ENV=production             (secure cookies)

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const devSecret = "dev_secret_change_me"

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
	StoreMemory = "memory"
)

// Config is the resolved server configuration.
type Config struct {
	Port     string
	LogLevel string

	Store           string
	DBPath          string
	CustomWordsFile string

	WordsFile   string
	RemoteURLs  []string
	SkipBundled bool

	JWTSecret         string
	JWTExpiry         time.Duration
	AdminPasswordHash string
	CookieName        string
	ClientOrigin      string
	Production        bool
}

// Load reads the environment, applying defaults for anything unset.
func Load() Config {
	store := strings.ToLower(getEnv("STORE", StoreSQLite))
	switch store {
	case StoreSQLite, StoreJSON, StoreMemory:
	default:
		store = StoreSQLite
	}
	return Config{
		Port:              getEnv("PORT", "5175"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Store:             store,
		DBPath:            getEnv("DB_PATH", "./data/words.db"),
		CustomWordsFile:   getEnv("CUSTOM_WORDS_FILE", "./data/custom-words.json"),
		WordsFile:         os.Getenv("WORDS_FILE"),
		RemoteURLs:        splitList(os.Getenv("WORDS_REMOTE_URLS")),
		SkipBundled:       envBool("SKIP_BUNDLED_WORDS", false),
		JWTSecret:         getEnv("JWT_SECRET", devSecret),
		JWTExpiry:         time.Duration(envInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CookieName:        getEnv("COOKIE_NAME", "skribbl_admin"),
		ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:        os.Getenv("NODE_ENV") == "production",
	}
}

// AdminEnabled reports whether word mutations require an admin session.
func (c Config) AdminEnabled() bool { return c.AdminPasswordHash != "" }

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

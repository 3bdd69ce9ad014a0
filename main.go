// main.go
//
// Entry point of the skribbl hints API server.
//
// Startup:
//   1. .env (optional) → environment → config.Load
//   2. base word list: bundled + WORDS_FILE + WORDS_REMOTE_URLS
//   3. custom word store selected by STORE (sqlite | json | memory)
//   4. HTTP server on PORT

package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/skribbl-hints/internal/config"
	"github.com/robalobadob/skribbl-hints/internal/httpserver"
	"github.com/robalobadob/skribbl-hints/internal/store"
	"github.com/robalobadob/skribbl-hints/internal/words"
)

const startupTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	base, err := words.Load(ctx, words.Source{
		BaseFile:    cfg.WordsFile,
		RemoteURLs:  cfg.RemoteURLs,
		SkipBundled: cfg.SkipBundled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	custom, db, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store).Msg("failed to open custom word store")
	}
	if db != nil {
		defer db.Close()
	}

	srv, err := httpserver.New(ctx, cfg, base, custom)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}
	if !cfg.AdminEnabled() {
		log.Warn().Msg("ADMIN_PASSWORD_HASH not set; word mutations are open")
	}
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting skribbl-hints server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openStore builds the configured custom word store. The *sql.DB is non-nil
// only for the sqlite backend.
func openStore(cfg config.Config) (store.Store, *sql.DB, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil, nil
	case config.StoreJSON:
		return store.NewJSONStore(cfg.CustomWordsFile), nil, nil
	default:
		return store.OpenSQLite(cfg.DBPath)
	}
}

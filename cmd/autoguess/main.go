// cmd/autoguess/main.go
//
// Auto-guesser driven over stdio.
//
// A host integration (browser extension, bot, replay script) writes one JSON
// message per line to stdin and reads one guess per line from stdout:
//
//   {"type":"observe","observation":{"hint":"__b__","inputEditable":true}}
//   {"type":"chat","text":".apple is close!"}
//   {"type":"start"} / {"type":"stop"} / {"type":"status"}
//   {"type":"delay","ms":750} / {"type":"prefix","on":true} / {"type":"self","name":"alice"}
//
// Logs (including status replies) go to stderr. The process exits when stdin
// closes or on SIGINT/SIGTERM.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/skribbl-hints/internal/autoguess"
	"github.com/robalobadob/skribbl-hints/internal/config"
	"github.com/robalobadob/skribbl-hints/internal/words"
)

func main() {
	_ = godotenv.Load()
	configFile := flag.String("config", os.Getenv("AUTOGUESS_CONFIG"), "path to YAML settings")
	wordsFile := flag.String("words", os.Getenv("WORDS_FILE"), "extra word list (JSON array or one per line)")
	autoStart := flag.Bool("start", false, "start sending immediately")
	level := flag.String("log-level", envOr("LOG_LEVEL", "info"), "zerolog level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	settings, err := config.LoadAutoguess(*configFile)
	if err != nil {
		die("load settings: %v", err)
	}
	if *wordsFile == "" {
		*wordsFile = settings.WordsFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	list, err := words.Load(ctx, words.Source{BaseFile: *wordsFile})
	if err != nil {
		die("load words: %v", err)
	}

	runner := autoguess.NewRunner(autoguess.FromSettings(settings), list, autoguess.NewWriterSink(os.Stdout))
	log.Info().Str("run", runner.ID).Int("words", list.Len()).Msg("auto-guesser ready")

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, cancelLoop := context.WithCancel(gctx)
	g.Go(func() error { return runner.Run(loopCtx) })
	g.Go(func() error {
		defer cancelLoop()
		if *autoStart {
			runner.Start()
		}
		return pump(gctx, os.Stdin, runner)
	})
	go func() {
		// Restore default signal handling so a second interrupt kills the
		// process, and unblock the pending stdin read.
		<-gctx.Done()
		stop()
		_ = os.Stdin.Close()
	}()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		die("%v", err)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "autoguess: "+format+"\n", args...)
	os.Exit(1)
}

// cmd/hints/main.go
//
// Interactive hint finder for the terminal.
//
// Type the hint as shown in game ("__b__", "___ _____") or in compact form
// ("2b2", "3 5"); the other field follows along and the list narrows as you
// type. Enter copies the highlighted word to the clipboard.
//
//   hints [-words extra.json] [-remote url1,url2]

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/skribbl-hints/internal/words"
)

func main() {
	_ = godotenv.Load()
	wordsFile := flag.String("words", os.Getenv("WORDS_FILE"), "extra word list (JSON array or one per line)")
	remote := flag.String("remote", os.Getenv("WORDS_REMOTE_URLS"), "comma separated word list URLs")
	flag.Parse()

	// The TUI owns the screen; only problems are worth printing.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	var urls []string
	for _, u := range strings.Split(*remote, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	list, err := words.Load(ctx, words.Source{BaseFile: *wordsFile, RemoteURLs: urls})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hints: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(list.List()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hints: %v\n", err)
		os.Exit(1)
	}
}

// cmd/wordsync/main.go
//
// Merge missing words from external dumps into the base word list.
//
// Sources (repeatable, local path or http(s) URL):
//   --csv   one word per row, or rows like "word,number_of_characters"
//   --html  pages listing <div class="solution">word</div>
//
// Words already present in the base list or the custom list (compared
// case-insensitively) are skipped. New words are appended in source order.
//
//   wordsync --csv words.csv --html dump.html --words-path words.json --dry-run

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/skribbl-hints/internal/words"
)

const fetchTimeout = 30 * time.Second

type sourceKind int

const (
	kindCSV sourceKind = iota
	kindHTML
)

type source struct {
	kind sourceKind
	ref  string
}

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }
func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var csvs, htmls listFlag
	flag.Var(&csvs, "csv", "CSV source, path or URL (repeatable)")
	flag.Var(&htmls, "html", "HTML source, path or URL (repeatable)")
	wordsPath := flag.String("words-path", "words.json", "base word list to update")
	customPath := flag.String("custom-words-path", "custom-words.json", "custom words, consulted for duplicates only")
	dryRun := flag.Bool("dry-run", false, "report new words without writing")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var sources []source
	for _, c := range csvs {
		sources = append(sources, source{kindCSV, c})
	}
	for _, h := range htmls {
		sources = append(sources, source{kindHTML, h})
	}
	if len(sources) == 0 {
		die("at least one --csv or --html source is required")
	}

	base, err := words.ReadWordFile(*wordsPath)
	if err != nil {
		die("%v", err)
	}
	custom, err := readOptional(*customPath)
	if err != nil {
		die("%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout*time.Duration(len(sources)))
	defer cancel()

	var incoming []string
	bar := progressbar.Default(int64(len(sources)), "reading sources")
	for _, src := range sources {
		got, err := collect(ctx, src)
		if err != nil {
			die("%s: %v", src.ref, err)
		}
		log.Debug().Str("source", src.ref).Int("words", len(got)).Msg("source read")
		incoming = append(incoming, got...)
		_ = bar.Add(1)
	}

	added := words.NewWords(incoming, base, custom)
	if len(added) == 0 {
		fmt.Println("No new words found.")
		return
	}

	if *dryRun {
		fmt.Printf("Would add %d words:\n", len(added))
		printList(added)
		return
	}

	merged := append(base, added...)
	if err := words.WriteWordFile(*wordsPath, merged); err != nil {
		die("%v", err)
	}
	fmt.Printf("Added %d new words to %s. Total: %d\n", len(added), *wordsPath, len(merged))
	printList(added)
}

// collect reads one source and extracts its words.
func collect(ctx context.Context, src source) ([]string, error) {
	rc, err := open(ctx, src.ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch src.kind {
	case kindHTML:
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, err
		}
		return words.ExtractSolutions(string(data)), nil
	default:
		return words.ParseCSV(rc)
	}
}

func open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return os.Open(ref)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return res.Body, nil
}

// readOptional reads a word file, treating a missing file as empty.
func readOptional(path string) ([]string, error) {
	list, err := words.ReadWordFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return list, err
}

func printList(list []string) {
	for _, w := range list {
		fmt.Printf("- %s\n", w)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "wordsync: "+format+"\n", args...)
	os.Exit(1)
}

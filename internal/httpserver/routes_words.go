// internal/httpserver/routes_words.go
//
// HTTP routes for word lookup and the custom word list.
//   - GET    /words          → custom words (sorted, case-insensitive)
//   - GET    /words/all      → base + custom words
//   - POST   /words          → add a custom word        (admin when configured)
//   - DELETE /words          → remove a custom word     (admin when configured)
//   - GET    /search         → ?pattern=&letters=&similar=1&limit=
//   - GET    /convert        → ?blank=__b__ or ?compact=2b2
//   - GET    /hint           → ?text=&length= resolve raw hint-area text
//   - GET    /categories     → category names understood by similar search
//
// Custom words are persisted through store.Store and mirrored into the
// in-memory search index so searches see them immediately.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/skribbl-hints/internal/pattern"
	"github.com/robalobadob/skribbl-hints/internal/store"
	"github.com/robalobadob/skribbl-hints/internal/words"
)

const maxSearchLimit = 5000

// mountWords registers the word routes.
func (s *Server) mountWords(r chi.Router) {
	r.Route("/words", func(r chi.Router) {
		r.Get("/", s.handleListCustom)
		r.Get("/all", s.handleListAll)
		r.With(s.requireAdmin()).Post("/", s.handleAddWord)
		r.With(s.requireAdmin()).Delete("/", s.handleRemoveWord)
	})
	r.Get("/search", s.handleSearch)
	r.Get("/convert", s.handleConvert)
	r.Get("/hint", s.handleHint)
	r.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(words.Categories())
	})
}

// -----------------------------------------------------------------------------
// /words

// wordReq is the payload for POST and DELETE /words.
type wordReq struct {
	Word string `json:"word"`
}

// wordRes acknowledges a mutation.
type wordRes struct {
	Success bool   `json:"success"`
	Word    string `json:"word"`
}

func (s *Server) handleListCustom(w http.ResponseWriter, r *http.Request) {
	list, err := s.custom.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list custom words")
		// The word page treats a broken custom list as empty.
		list = []string{}
	}
	_ = json.NewEncoder(w).Encode(list)
}

func (s *Server) handleListAll(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.index.List())
}

// decodeWord reads the request body and returns the trimmed word, or writes
// a 400 and returns "".
func decodeWord(w http.ResponseWriter, r *http.Request) string {
	var body wordReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"Word is required"}`, http.StatusBadRequest)
		return ""
	}
	word := strings.TrimSpace(body.Word)
	if word == "" {
		http.Error(w, `{"error":"Word is required"}`, http.StatusBadRequest)
	}
	return word
}

// handleAddWord adds a custom word unless it already exists in the base list
// or among the custom words (both case-insensitive).
func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	word := decodeWord(w, r)
	if word == "" {
		return
	}
	if s.base.Contains(word) {
		http.Error(w, `{"error":"Word already exists in original database"}`, http.StatusBadRequest)
		return
	}
	if err := s.custom.Add(r.Context(), word); err != nil {
		if errors.Is(err, store.ErrExists) {
			http.Error(w, `{"error":"Word already exists in custom words"}`, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("word", word).Msg("add custom word")
		http.Error(w, `{"error":"Failed to add word"}`, http.StatusInternalServerError)
		return
	}
	if _, err := s.index.Add(word); err != nil && !errors.Is(err, words.ErrExists) {
		log.Warn().Err(err).Str("word", word).Msg("index custom word")
	}
	log.Info().Str("word", word).Msg("custom word added")
	_ = json.NewEncoder(w).Encode(wordRes{Success: true, Word: word})
}

// handleRemoveWord deletes a custom word; base words are never removed.
func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	word := decodeWord(w, r)
	if word == "" {
		return
	}
	if err := s.custom.Remove(r.Context(), word); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"Word not found in custom words"}`, http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("word", word).Msg("remove custom word")
		http.Error(w, `{"error":"Failed to delete word"}`, http.StatusInternalServerError)
		return
	}
	if !s.base.Contains(word) {
		_, _ = s.index.Remove(word)
	}
	log.Info().Str("word", word).Msg("custom word removed")
	_ = json.NewEncoder(w).Encode(wordRes{Success: true, Word: word})
}

// -----------------------------------------------------------------------------
// /search, /convert, /hint

type searchRes struct {
	Results []string `json:"results"`
	Count   int      `json:"count"`
	Compact string   `json:"compact,omitempty"`
}

// handleSearch runs words.Search over the index.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := words.Query{
		Pattern: strings.TrimSpace(q.Get("pattern")),
		Letters: strings.TrimSpace(q.Get("letters")),
		Similar: isTruthy(q.Get("similar")),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		query.Limit = min(n, maxSearchLimit)
	}

	res := searchRes{Results: words.Search(s.index.List(), query)}
	res.Count = len(res.Results)
	if strings.Contains(query.Pattern, "_") {
		res.Compact = pattern.BlankToCompact(strings.ToLower(query.Pattern))
	}
	_ = json.NewEncoder(w).Encode(res)
}

type convertRes struct {
	Blank   string `json:"blank"`
	Compact string `json:"compact"`
}

// handleConvert translates between the two pattern notations. Exactly one of
// blank or compact must be given.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	blank, compact := q.Get("blank"), strings.TrimSpace(q.Get("compact"))
	switch {
	case blank != "" && compact == "":
		blank = strings.ToLower(blank)
		_ = json.NewEncoder(w).Encode(convertRes{Blank: blank, Compact: pattern.BlankToCompact(blank)})
	case compact != "" && blank == "":
		_ = json.NewEncoder(w).Encode(convertRes{Blank: pattern.CompactToBlank(compact), Compact: compact})
	default:
		http.Error(w, `{"error":"exactly one of blank or compact is required"}`, http.StatusBadRequest)
	}
}

type hintRes struct {
	Blank   string `json:"blank"`
	Compact string `json:"compact"`
	Length  int    `json:"length"`
}

// handleHint resolves raw hint-area text (and an optional known length) the
// same way the auto-guesser does.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := q.Get("text")
	length, ok := pattern.ExtractLength(q.Get("length"))
	if !ok {
		length, _ = pattern.ExtractLength(text)
	}
	h := pattern.ParseHint(pattern.ResolveHint(text, length))
	_ = json.NewEncoder(w).Encode(hintRes{Blank: h.Blank, Compact: h.Compact, Length: length})
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/skribbl-hints/internal/config"
	"github.com/robalobadob/skribbl-hints/internal/store"
	"github.com/robalobadob/skribbl-hints/internal/words"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		JWTExpiry:    time.Hour,
		CookieName:   "skribbl_admin",
		ClientOrigin: "http://localhost:5173",
	}
}

func newTestServer(t *testing.T, cfg config.Config, custom store.Store) *Server {
	t.Helper()
	base := words.NewCollection("Robin", "cabin", "apple", "ice cream", "pre-school")
	s, err := New(context.Background(), cfg, base, custom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())
	rec := do(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decode[map[string]any](t, rec)
	if got["ok"] != true || got["words"] != float64(5) {
		t.Fatalf("body = %v", got)
	}
}

func TestCustomWordLifecycle(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())

	rec := do(t, s, http.MethodPost, "/words", `{"word":"  Zorb "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d body=%s", rec.Code, rec.Body)
	}
	if res := decode[wordRes](t, rec); !res.Success || res.Word != "Zorb" {
		t.Fatalf("add body = %+v", res)
	}

	rec = do(t, s, http.MethodGet, "/words", "")
	if got := decode[[]string](t, rec); !reflect.DeepEqual(got, []string{"Zorb"}) {
		t.Fatalf("custom list = %q", got)
	}

	rec = do(t, s, http.MethodPost, "/words", `{"word":"zorb"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "custom words") {
		t.Fatalf("duplicate add: %d %s", rec.Code, rec.Body)
	}

	rec = do(t, s, http.MethodGet, "/search?pattern=z___", "")
	if res := decode[searchRes](t, rec); !reflect.DeepEqual(res.Results, []string{"zorb"}) || res.Compact != "0z3" {
		t.Fatalf("search = %+v", res)
	}

	rec = do(t, s, http.MethodDelete, "/words", `{"word":"ZORB"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = do(t, s, http.MethodDelete, "/words", `{"word":"zorb"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
	rec = do(t, s, http.MethodGet, "/search?pattern=z___", "")
	if res := decode[searchRes](t, rec); res.Count != 0 {
		t.Fatalf("removed word still searchable: %+v", res)
	}
}

func TestAddWordValidation(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())
	cases := []struct {
		body string
		want string
	}{
		{`{"word":"   "}`, "Word is required"},
		{`not json`, "Word is required"},
		{`{"word":"ROBIN"}`, "original database"},
	}
	for _, tc := range cases {
		rec := do(t, s, http.MethodPost, "/words", tc.body)
		if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("POST %s: %d %s", tc.body, rec.Code, rec.Body)
		}
	}
}

func TestCustomWordsLoadedIntoIndex(t *testing.T) {
	custom := store.NewMemoryStore()
	if err := custom.Add(context.Background(), "Kraken"); err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t, testConfig(), custom)
	rec := do(t, s, http.MethodGet, "/words/all", "")
	got := decode[[]string](t, rec)
	if len(got) != 6 || got[5] != "kraken" {
		t.Fatalf("all words = %q", got)
	}
}

func TestSearchModes(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())
	cases := []struct {
		query string
		want  []string
	}{
		{"pattern=__b__", []string{"cabin", "robin"}},
		{"letters=3-6", []string{"pre-school"}},
		{"letters=3+5", []string{"ice cream"}},
		{"pattern=in", []string{"cabin", "robin"}},
		{"pattern=birds&similar=1", []string{"robin"}},
		{"pattern=i&limit=1", []string{"cabin"}},
	}
	for _, tc := range cases {
		rec := do(t, s, http.MethodGet, "/search?"+tc.query, "")
		res := decode[searchRes](t, rec)
		if !reflect.DeepEqual(res.Results, tc.want) || res.Count != len(tc.want) {
			t.Fatalf("%s: got %q want %q", tc.query, res.Results, tc.want)
		}
	}

	rec := do(t, s, http.MethodGet, "/search?limit=-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative limit status = %d", rec.Code)
	}
}

func TestConvert(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())

	rec := do(t, s, http.MethodGet, "/convert?blank=__B__", "")
	if got := decode[convertRes](t, rec); got != (convertRes{Blank: "__b__", Compact: "2b2"}) {
		t.Fatalf("blank→compact = %+v", got)
	}
	rec = do(t, s, http.MethodGet, "/convert?compact=5+6", "")
	if got := decode[convertRes](t, rec); got.Blank != "_____ ______" {
		t.Fatalf("compact→blank = %+v", got)
	}
	rec = do(t, s, http.MethodGet, "/convert", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing params status = %d", rec.Code)
	}
}

func TestHintEndpoint(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())

	rec := do(t, s, http.MethodGet, "/hint?text=_+_%7Cb", "")
	if got := decode[hintRes](t, rec); got.Blank != "_ _ b" || got.Compact != "1 1 1" {
		t.Fatalf("hint = %+v", got)
	}
	rec = do(t, s, http.MethodGet, "/hint?text=WAITING&length=7", "")
	if got := decode[hintRes](t, rec); got.Blank != "_______" || got.Compact != "7" || got.Length != 7 {
		t.Fatalf("length hint = %+v", got)
	}
}

func TestAdminGuard(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.AdminPasswordHash = string(hash)
	s := newTestServer(t, cfg, store.NewMemoryStore())

	if rec := do(t, s, http.MethodPost, "/words", `{"word":"zorb"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated add status = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"nope"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/words", `{"word":"zorb"}`, &http.Cookie{Name: cfg.CookieName, Value: "garbage"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d", rec.Code)
	}

	rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"hunter2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d body=%s", rec.Code, rec.Body)
	}
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.CookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" || !session.HttpOnly {
		t.Fatalf("session cookie = %+v", session)
	}

	if rec := do(t, s, http.MethodGet, "/auth/me", "", session); rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/words", `{"word":"zorb"}`, session); rec.Code != http.StatusOK {
		t.Fatalf("authenticated add status = %d body=%s", rec.Code, rec.Body)
	}

	// Reads stay public.
	if rec := do(t, s, http.MethodGet, "/words", ""); rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())
	if rec := do(t, s, http.MethodPost, "/auth/login", `{"password":"x"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("login status = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())
	rec := do(t, s, http.MethodOptions, "/words", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t, testConfig(), store.NewMemoryStore())
	rec := do(t, s, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Fatalf("404 = %d %s", rec.Code, rec.Body)
	}
}

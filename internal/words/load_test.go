package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestReadWordFileFormats(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "words.json")
	if err := WriteWordFile(jsonPath, []string{"Apple", "Big Ben"}); err != nil {
		t.Fatal(err)
	}
	got, err := ReadWordFile(jsonPath)
	if err != nil || !slices.Equal(got, []string{"Apple", "Big Ben"}) {
		t.Fatalf("json = %v, %v", got, err)
	}

	txtPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(txtPath, []byte("# comment\nowl\n\n  crane \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = ReadWordFile(txtPath)
	if err != nil || !slices.Equal(got, []string{"owl", "crane"}) {
		t.Fatalf("text = %v, %v", got, err)
	}
}

func TestLoadMergesSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Owl\nzeppelin\n"))
	}))
	defer srv.Close()

	base := filepath.Join(t.TempDir(), "base.json")
	if err := WriteWordFile(base, []string{"owl", "Kite"}); err != nil {
		t.Fatal(err)
	}

	c, err := Load(context.Background(), Source{
		BaseFile:    base,
		RemoteURLs:  []string{srv.URL + "/missing", srv.URL + "/en.txt"},
		SkipBundled: true,
		Client:      srv.Client(),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.List(); !slices.Equal(got, []string{"owl", "kite", "zeppelin"}) {
		t.Fatalf("List = %v", got)
	}
}

func TestLoadBundled(t *testing.T) {
	c, err := Load(context.Background(), Source{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Contains("abraham lincoln") {
		t.Fatal("expected bundled words")
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(context.Background(), Source{SkipBundled: true}); err == nil {
		t.Fatal("expected error for empty list")
	}
}

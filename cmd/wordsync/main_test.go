package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCollectFileSources(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "words.csv")
	htmlPath := filepath.Join(dir, "dump.html")
	if err := os.WriteFile(csvPath, []byte("apple,5\n\"ice cream\",8\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(htmlPath, []byte(`<div class="solution">Kraken</div><div class="other">x</div>`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := collect(context.Background(), source{kindCSV, csvPath})
	if err != nil || !reflect.DeepEqual(got, []string{"apple", "ice cream"}) {
		t.Fatalf("csv = %q, %v", got, err)
	}
	got, err = collect(context.Background(), source{kindHTML, htmlPath})
	if err != nil || !reflect.DeepEqual(got, []string{"Kraken"}) {
		t.Fatalf("html = %q, %v", got, err)
	}
}

func TestCollectRemoteSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("owl\nemu\n"))
	}))
	defer srv.Close()

	got, err := collect(context.Background(), source{kindCSV, srv.URL + "/words.csv"})
	if err != nil || !reflect.DeepEqual(got, []string{"owl", "emu"}) {
		t.Fatalf("remote = %q, %v", got, err)
	}
	if _, err := collect(context.Background(), source{kindCSV, srv.URL + "/missing.csv"}); err == nil {
		t.Fatal("expected error for 404 source")
	}
}

func TestReadOptionalMissingFile(t *testing.T) {
	list, err := readOptional(filepath.Join(t.TempDir(), "none.json"))
	if err != nil || list != nil {
		t.Fatalf("readOptional = %q, %v", list, err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE", "WORDS_REMOTE_URLS", "JWT_EXPIRES_DAYS", "ADMIN_PASSWORD_HASH", "NODE_ENV"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Port != "5175" {
		t.Fatalf("Port = %q", c.Port)
	}
	if c.Store != StoreSQLite {
		t.Fatalf("Store = %q", c.Store)
	}
	if c.JWTExpiry != 14*24*time.Hour {
		t.Fatalf("JWTExpiry = %v", c.JWTExpiry)
	}
	if c.AdminEnabled() {
		t.Fatal("admin should be disabled without a hash")
	}
	if c.RemoteURLs != nil {
		t.Fatalf("RemoteURLs = %v", c.RemoteURLs)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE", "JSON")
	t.Setenv("WORDS_REMOTE_URLS", " https://a/x.txt, ,https://b/y.txt ")
	t.Setenv("JWT_EXPIRES_DAYS", "2")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("SKIP_BUNDLED_WORDS", "true")
	t.Setenv("NODE_ENV", "production")

	c := Load()
	if c.Port != "9000" || c.Store != StoreJSON {
		t.Fatalf("unexpected config: %+v", c)
	}
	want := []string{"https://a/x.txt", "https://b/y.txt"}
	if !reflect.DeepEqual(c.RemoteURLs, want) {
		t.Fatalf("RemoteURLs = %q", c.RemoteURLs)
	}
	if c.JWTExpiry != 48*time.Hour {
		t.Fatalf("JWTExpiry = %v", c.JWTExpiry)
	}
	if !c.AdminEnabled() || !c.SkipBundled || !c.Production {
		t.Fatalf("flags not applied: %+v", c)
	}
}

func TestLoadUnknownStoreFallsBack(t *testing.T) {
	t.Setenv("STORE", "redis")
	if got := Load().Store; got != StoreSQLite {
		t.Fatalf("Store = %q", got)
	}
}

func TestLoadAutoguess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autoguess.yaml")
	body := "delay_ms: 0\ndot_prefix: true\nself_name: Alice\nlimits:\n  max_retries: 3\n  spam_cooldown_ms: 2000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := LoadAutoguess(path)
	if err != nil {
		t.Fatalf("LoadAutoguess: %v", err)
	}
	if a.DelayMS == nil || *a.DelayMS != 0 {
		t.Fatalf("DelayMS = %v", a.DelayMS)
	}
	if !a.DotPrefix || a.SelfName != "Alice" {
		t.Fatalf("unexpected settings: %+v", a)
	}
	if a.Limits.MaxRetries != 3 || a.Limits.SpamCooldownMS != 2000 || a.Limits.Preview != 0 {
		t.Fatalf("Limits = %+v", a.Limits)
	}
}

func TestLoadAutoguessMissingFile(t *testing.T) {
	a, err := LoadAutoguess(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if a.DelayMS != nil {
		t.Fatalf("expected zero settings, got %+v", a)
	}
}

func TestLoadAutoguessInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("delay_ms: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAutoguess(path); err == nil {
		t.Fatal("expected parse error")
	}
}

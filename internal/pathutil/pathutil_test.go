package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve_FallbackWhenBlank(t *testing.T) {
	got, err := Resolve("  ", "/etc/sinyal/config.toml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "/etc/sinyal/config.toml" {
		t.Fatalf("Resolve = %q, want fallback", got)
	}

	if _, err := Resolve("", ""); err == nil {
		t.Fatal("Resolve accepted blank path and blank fallback")
	}
}

func TestResolve_ExplicitPathWinsOverFallback(t *testing.T) {
	got, err := Resolve("/tmp/override.toml", "/etc/default.toml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "/tmp/override.toml" {
		t.Fatalf("Resolve = %q, want explicit path", got)
	}
}

func TestResolve_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := Resolve("~/.config/sinyal/prefs.toml", "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != filepath.Join(home, ".config", "sinyal", "prefs.toml") {
		t.Fatalf("Resolve = %q, want path under %q", got, home)
	}
}

func TestResolve_Absolutizes(t *testing.T) {
	got, err := Resolve("relative.toml", "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, "relative.toml") {
		t.Fatalf("Resolve = %q, want absolute path ending in relative.toml", got)
	}
}

package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaultTheme(t *testing.T) {
	t.Parallel()

	prefs, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if prefs.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", prefs.Theme, defaultTheme)
	}
}

func TestLoad_BrokenFileDegradesToDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = not toml"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if prefs.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default after parse failure", prefs.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if prefs.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", prefs.Theme)
	}
}

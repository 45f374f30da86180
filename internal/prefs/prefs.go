// Package prefs persists sinyal display preferences. The file lives at
// ~/.config/sinyal/prefs.toml and holds nothing critical, so reads degrade
// to defaults on any failure; only writes report errors.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/adimsa/sinyal/internal/pathutil"
)

// Prefs holds user preferences for sinyal.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/sinyal/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path (empty uses the default). Missing,
// unreadable or unparseable files all yield the defaults without error.
func Load(path string) (Prefs, error) {
	defaults := Prefs{Theme: defaultTheme}

	resolved, err := pathutil.Resolve(path, defaultPrefsPath)
	if err != nil {
		return defaults, nil
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		// Absent and unreadable files both fall back to defaults.
		return defaults, nil
	}

	prefs := defaults
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults, nil
	}
	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs, nil
}

// Save writes preferences to path (empty uses the default), creating parent
// directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := pathutil.Resolve(path, defaultPrefsPath)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

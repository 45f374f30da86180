// Package readstate persists the set of notification IDs the user has marked
// read. The gateway's read-all endpoint does not reliably stick, so this
// overlay is layered on top of whatever the server reports: an ID in the set
// always displays as read. Best effort only: losing the file costs nothing
// but cosmetics, so load and save both degrade silently.
package readstate

import (
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/adimsa/sinyal/internal/normalize"
	"github.com/adimsa/sinyal/internal/pathutil"
)

const defaultStatePath = "~/.local/state/sinyal/read.toml"

// Overlay is the set of notification IDs to force-display as read.
type Overlay map[string]struct{}

type stateFile struct {
	ReadIDs []string `toml:"read_ids"`
}

// DefaultPath returns the default overlay file path.
func DefaultPath() string {
	return defaultStatePath
}

// Load reads the overlay from path (empty uses the default). Absence, read
// errors and parse failures all yield an empty overlay.
func Load(path string) Overlay {
	overlay := Overlay{}

	resolved, err := pathutil.Resolve(path, defaultStatePath)
	if err != nil {
		return overlay
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return overlay
	}
	var file stateFile
	if err := toml.Unmarshal(bytes, &file); err != nil {
		return overlay
	}
	for _, id := range file.ReadIDs {
		if id != "" {
			overlay[id] = struct{}{}
		}
	}
	return overlay
}

// Save persists the overlay to path (empty uses the default). Storage
// failures are ignored.
func Save(path string, overlay Overlay) {
	resolved, err := pathutil.Resolve(path, defaultStatePath)
	if err != nil {
		return
	}
	ids := make([]string, 0, len(overlay))
	for id := range overlay {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bytes, err := toml.Marshal(stateFile{ReadIDs: ids})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(resolved, bytes, 0o644)
}

// Add marks the given IDs read. Empty IDs are skipped.
func (o Overlay) Add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			o[id] = struct{}{}
		}
	}
}

// Contains reports whether the overlay holds the ID.
func (o Overlay) Contains(id string) bool {
	_, ok := o[id]
	return ok
}

// Apply returns a copy of the list with the read flag forced true for every
// notification whose ID is in the overlay. All other fields, and flags the
// server already set, are untouched; the input slice is not modified.
func (o Overlay) Apply(list []normalize.Notification) []normalize.Notification {
	if len(list) == 0 {
		return nil
	}
	merged := make([]normalize.Notification, len(list))
	copy(merged, list)
	for i := range merged {
		if merged[i].ID != "" && o.Contains(merged[i].ID) {
			merged[i].Read = true
		}
	}
	return merged
}

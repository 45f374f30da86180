package readstate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adimsa/sinyal/internal/normalize"
)

func TestLoad_MissingOrBrokenFileYieldsEmptyOverlay(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	overlay := Load(filepath.Join(dir, "missing.toml"))
	if len(overlay) != 0 {
		t.Fatalf("overlay = %v, want empty for missing file", overlay)
	}

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("read_ids = not toml"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}
	overlay = Load(broken)
	if len(overlay) != 0 {
		t.Fatalf("overlay = %v, want empty for unparseable file", overlay)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "read.toml")

	overlay := Overlay{}
	overlay.Add("n3", "n1", "")

	Save(path, overlay)

	loaded := Load(path)
	if len(loaded) != 2 || !loaded.Contains("n1") || !loaded.Contains("n3") {
		t.Fatalf("loaded = %v", loaded)
	}

	// IDs are stored sorted so the file is diff-stable.
	bytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if i1, i3 := strings.Index(string(bytes), "n1"), strings.Index(string(bytes), "n3"); i1 < 0 || i3 < 0 || i1 > i3 {
		t.Fatalf("ids not sorted in file:\n%s", bytes)
	}
}

func TestApply_ForcesReadWithoutMutatingInput(t *testing.T) {
	t.Parallel()

	overlay := Overlay{}
	overlay.Add("a", "c")

	input := []normalize.Notification{
		{ID: "a", Title: "satu"},
		{ID: "b", Title: "dua"},
		{ID: "c", Title: "tiga", Read: true},
		{ID: "", Title: "tanpa id"},
	}
	got := overlay.Apply(input)

	if !got[0].Read || got[1].Read || !got[2].Read || got[3].Read {
		t.Fatalf("applied flags = %v %v %v %v", got[0].Read, got[1].Read, got[2].Read, got[3].Read)
	}
	if input[0].Read {
		t.Fatal("input slice was mutated")
	}
	if got[0].Title != "satu" {
		t.Fatalf("other fields changed: %+v", got[0])
	}

	if overlay.Apply(nil) != nil {
		t.Fatal("Apply(nil) should return nil")
	}
}

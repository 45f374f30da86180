package ui

import (
	"encoding/json"
	"testing"
)

func TestFormatRupiah(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{152000, "Rp 152.000"},
		{1234567, "Rp 1.234.567"},
		{-2500, "Rp -2.500"},
	}
	for _, tc := range cases {
		if got := formatRupiah(tc.in); got != tc.want {
			t.Errorf("formatRupiah(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("pendek", 10); got != "pendek" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("panjang sekali", 8); got != "panjang…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("kuota終了", 6); got != "kuota…" {
		t.Fatalf("rune-aware truncate = %q", got)
	}
	if got := truncate("x", 0); got != "" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestIndentJSON(t *testing.T) {
	t.Parallel()

	if got := indentJSON(nil); got != "(kosong)" {
		t.Fatalf("indentJSON(nil) = %q", got)
	}
	if got := indentJSON(json.RawMessage("not json")); got != "not json" {
		t.Fatalf("invalid payload must pass through: %q", got)
	}
	want := "{\n  \"a\": 1\n}"
	if got := indentJSON(json.RawMessage(`{"a":1}`)); got != want {
		t.Fatalf("indentJSON = %q, want %q", got, want)
	}
}

func TestThemeCycle(t *testing.T) {
	t.Parallel()

	start := GetTheme("Dracula")
	next := GetTheme(NextTheme(start.Name))
	if next.Name == start.Name {
		t.Fatal("NextTheme did not advance")
	}
	// Cycling through every theme returns to the start.
	name := start.Name
	for range themes {
		name = NextTheme(name)
	}
	if name != start.Name {
		t.Fatalf("cycle ended at %q, want %q", name, start.Name)
	}

	if GetTheme("does-not-exist").Name != start.Name {
		t.Fatal("unknown theme must fall back to the default")
	}
}

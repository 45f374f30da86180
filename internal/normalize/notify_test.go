package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNotifications_WrapperFallbackOrder(t *testing.T) {
	t.Parallel()

	record := `{"notification_id":"n1","brief_message":"hello","is_read":true}`

	cases := []struct {
		name string
		raw  string
	}{
		{"data.inbox", `{"data":{"inbox":[` + record + `]}}`},
		{"data.notification.data", `{"data":{"notification":{"data":[` + record + `]}}}`},
		{"notifications", `{"notifications":[` + record + `]}`},
		{"data array", `{"data":[` + record + `]}`},
		{"root array", `[` + record + `]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Notifications(json.RawMessage(tc.raw))
			if len(got) != 1 {
				t.Fatalf("got %d records, want 1", len(got))
			}
			if got[0].ID != "n1" || got[0].Title != "hello" || !got[0].Read {
				t.Fatalf("record = %+v", got[0])
			}
		})
	}
}

func TestNotifications_MostSpecificWrapperWins(t *testing.T) {
	t.Parallel()

	// data.inbox must win even when a plain notifications list coexists.
	raw := json.RawMessage(`{
		"data":{"inbox":[{"notification_id":"inbox-1"}]},
		"notifications":[{"notification_id":"flat-1"}]
	}`)
	got := Notifications(raw)
	if len(got) != 1 || got[0].ID != "inbox-1" {
		t.Fatalf("got %+v, want the data.inbox record", got)
	}
}

func TestNotifications_FieldFallbacks(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"notification_id":"a","title":"Judul","message":"Isi","timestamp":"2024-01-02","category":"INFO"},
		{"notification_id":"b","brief_message":"Ringkas","full_message":"Lengkap","title":"ignored","message":"ignored"}
	]`)
	got := Notifications(raw)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Title != "Judul" || got[0].Body != "Isi" || got[0].Category != "INFO" {
		t.Fatalf("fallback record = %+v", got[0])
	}
	if got[1].Title != "Ringkas" || got[1].Body != "Lengkap" {
		t.Fatalf("preferred record = %+v", got[1])
	}
}

func TestNotifications_GarbageYieldsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{``, `null`, `"text"`, `{"data":{"inbox":"nope"}}`, `42`} {
		if got := Notifications(json.RawMessage(raw)); len(got) != 0 {
			t.Fatalf("Notifications(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestNotifications_Idempotent(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"data":{"inbox":[{"notification_id":"n1","brief_message":"x"}]}}`)
	first := Notifications(raw)
	second := Notifications(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

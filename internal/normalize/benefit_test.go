package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFormatDataBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-5, "0"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		{5368709120, "5.00 GB"},
	}
	for _, tc := range cases {
		if got := FormatDataBytes(tc.in); got != tc.want {
			t.Errorf("FormatDataBytes(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBenefits_PrecomputedInfosWin(t *testing.T) {
	t.Parallel()

	pkg := map[string]any{
		"benefit_infos": []any{"Kuota Utama 10 GB", "Telepon 100 menit"},
		"benefits":      []any{map[string]any{"name": "ignored"}},
	}
	got := Benefits(pkg)
	want := []string{"Kuota Utama 10 GB", "Telepon 100 menit"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Benefits = %v, want %v", got, want)
	}
}

func TestBenefits_PlainStringList(t *testing.T) {
	t.Parallel()

	pkg := map[string]any{"benefits": []any{"satu", "dua"}}
	got := Benefits(pkg)
	if !reflect.DeepEqual(got, []string{"satu", "dua"}) {
		t.Fatalf("Benefits = %v", got)
	}
}

func TestBenefits_StructuredRecords(t *testing.T) {
	t.Parallel()

	pkg := map[string]any{"benefits": []any{
		map[string]any{"name": "Kuota", "datatype": "DATA", "remaining": float64(1073741824), "total": float64(2147483648)},
		map[string]any{"name": "Telepon", "datatype": "VOICE", "remaining": float64(30), "total": float64(100)},
		map[string]any{"name": "SMS", "datatype": "TEXT", "remaining": float64(5), "total": float64(10)},
		map[string]any{"name": "Sudah jadi", "datatype": "DATA", "remaining_str": "1 GB", "total_str": "2 GB"},
		map[string]any{"datatype": "OTHER"},
	}}
	got := Benefits(pkg)
	want := []string{
		"Kuota: 1.00 GB/2.00 GB",
		"Telepon: 30/100 menit",
		"SMS: 5/10 SMS",
		"Sudah jadi: 1 GB/2 GB",
		"Benefit 5: -/-",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Benefits = %v, want %v", got, want)
	}
}

func TestPackages_DefaultsAndSpellings(t *testing.T) {
	t.Parallel()

	list := []json.RawMessage{
		json.RawMessage(`{"name":"Akrab L","product_subscription_type":"PREPAID","product_domain":"COMBO","family_code":"fam-1","group_name":"Grup A"}`),
		json.RawMessage(`{"familycode":"fam-2","groupname":"Grup B"}`),
		json.RawMessage(`"not an object"`),
	}
	got := Packages(list)
	if len(got) != 2 {
		t.Fatalf("got %d packages, want 2", len(got))
	}
	if got[0].FamilyCode != "fam-1" || got[0].GroupName != "Grup A" {
		t.Fatalf("primary spellings not honored: %+v", got[0])
	}
	if got[1].Name != "Paket 2" || got[1].SubscriptionType != "REC" || got[1].Domain != "DATA" {
		t.Fatalf("defaults not applied: %+v", got[1])
	}
	if got[1].FamilyCode != "fam-2" || got[1].GroupName != "Grup B" {
		t.Fatalf("alternate spellings not honored: %+v", got[1])
	}
}

package normalize

import (
	"encoding/json"
	"testing"
)

func TestFamilies_AcceptsBothIdentifierSpellings(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"data":{"results":[
		{"id":"fam-1","label":"Akrab"},
		{"code":"fam-2","name":"Bebas"},
		"junk"
	]}}`)
	got := Families(raw)
	if len(got) != 2 {
		t.Fatalf("got %d families, want 2", len(got))
	}
	if got[0].Code != "fam-1" || got[0].Name != "Akrab" {
		t.Fatalf("family[0] = %+v", got[0])
	}
	if got[1].Code != "fam-2" || got[1].Name != "Bebas" {
		t.Fatalf("family[1] = %+v", got[1])
	}
}

func TestStoreItems_PriceOnlyListPreferredAndDiscountWins(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"data":{
		"results_price_only":[
			{"title":"Diskon","family_name":"Fam","validity":"30 hari","original_price":10000,"discounted_price":7500,"action_param":"OPT-A"},
			{"title":"Normal","original_price":5000,"discounted_price":0,"action_param":"OPT-B"}
		],
		"results":[{"title":"ignored","action_param":"OPT-X"}]
	}}`)
	got := StoreItems(raw)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].Price != 7500 {
		t.Fatalf("discounted price not preferred: %d", got[0].Price)
	}
	if got[1].Price != 5000 {
		t.Fatalf("zero discount must fall back to original: %d", got[1].Price)
	}
	if got[0].OptionCode != "OPT-A" || got[0].Source != SourceStore {
		t.Fatalf("item = %+v", got[0])
	}
}

func TestStoreItems_FallsBackToFullResults(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"data":{"results":[{"title":"Satu","original_price":1000,"action_param":"OPT-1"}]}}`)
	got := StoreItems(raw)
	if len(got) != 1 || got[0].Title != "Satu" {
		t.Fatalf("got %+v", got)
	}
}

func TestFamilyQuotaItems_EchoedCodeWins(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"family_code":"echo-1","packages":[
		{"title":"Kuota A","family_name":"Fam","validity":"7 hari","price":2500,"option_code":"OPT-A"}
	]}`)
	code, items := FamilyQuotaItems(raw, "requested-1")
	if code != "echo-1" {
		t.Fatalf("code = %q, want echoed code", code)
	}
	if len(items) != 1 || items[0].Source != SourceFamily || items[0].OptionCode != "OPT-A" {
		t.Fatalf("items = %+v", items)
	}

	code, _ = FamilyQuotaItems(json.RawMessage(`{"packages":[]}`), "requested-2")
	if code != "requested-2" {
		t.Fatalf("code = %q, want requested fallback", code)
	}
}

func TestFamilyOptions_FlattensInVariantOrder(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"family_name":"Akrab","package_variants":[
		{"name":"Mini","validity":"30 hari","package_options":[
			{"name":"2 GB","price":10000,"package_option_code":"OPT-1"},
			{"name":"4 GB","price":20000,"validity":"7 hari","package_option_code":"OPT-2"}
		]},
		{"name":"Jumbo","package_options":[
			{"name":"10 GB","price":50000,"package_option_code":"OPT-3"}
		]}
	]}`)
	got := FamilyOptions(raw, "fallback")
	if len(got) != 3 {
		t.Fatalf("got %d options, want 3", len(got))
	}
	wantCodes := []string{"OPT-1", "OPT-2", "OPT-3"}
	for i, want := range wantCodes {
		if got[i].OptionCode != want {
			t.Fatalf("order broken: option[%d] = %q, want %q", i, got[i].OptionCode, want)
		}
	}
	if got[0].Title != "Mini - 2 GB" {
		t.Fatalf("title = %q", got[0].Title)
	}
	if got[0].Validity != "30 hari" {
		t.Fatalf("variant validity not inherited: %q", got[0].Validity)
	}
	if got[1].Validity != "7 hari" {
		t.Fatalf("option validity must win: %q", got[1].Validity)
	}
	if got[0].FamilyName != "Akrab" {
		t.Fatalf("family name = %q", got[0].FamilyName)
	}
}

func TestFamilyOptions_FallbackFamilyName(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"package_variants":[{"package_options":[{"name":"X","package_option_code":"OPT-1"}]}]}`)
	got := FamilyOptions(raw, "cadangan")
	if len(got) != 1 || got[0].FamilyName != "cadangan" {
		t.Fatalf("got %+v", got)
	}
}

func TestHotItems_BareArray(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"family_name":"Fam","variant_name":"Var","option_name":"Opt","family_code":"f1","order":2,"is_enterprise":true,"price":15000,"option_code":"OPT-H"}
	]`)
	got := HotItems(raw)
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	item := got[0]
	if item.Order != 2 || !item.IsEnterprise || item.Price != 15000 || item.OptionCode != "OPT-H" {
		t.Fatalf("item = %+v", item)
	}
}

func TestRedeemCategories_WrapperAndFieldSpellings(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"data":{"categories":[
		{"category_code":"VCR","category_name":"Voucher","header_desc":"Tukar poin","redeemables":[
			{"name":"Diskon 10rb","subtitle":"Min. 50rb","required_point":100,"valid_until":1735689600,"action_type":"DEEPLINK","action_param":"app://x"},
			{"title":"Judul alternatif","caption":"Sub alternatif","point":5},
			{}
		]}
	]}}`)
	got := RedeemCategories(raw)
	if len(got) != 1 {
		t.Fatalf("got %d categories, want 1", len(got))
	}
	cat := got[0]
	if cat.Code != "VCR" || cat.Name != "Voucher" || cat.HeaderDesc != "Tukar poin" {
		t.Fatalf("category = %+v", cat)
	}
	if len(cat.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(cat.Items))
	}
	if cat.Items[0].Points != 100 || !cat.Items[0].HasPoints || cat.Items[0].ValidUntil.IsZero() {
		t.Fatalf("item[0] = %+v", cat.Items[0])
	}
	if cat.Items[1].Name != "Judul alternatif" || cat.Items[1].Subtitle != "Sub alternatif" || cat.Items[1].Points != 5 {
		t.Fatalf("item[1] = %+v", cat.Items[1])
	}
	if cat.Items[2].Name != "(Tanpa nama)" || cat.Items[2].HasPoints {
		t.Fatalf("item[2] = %+v", cat.Items[2])
	}

	flat := RedeemCategories(json.RawMessage(`{"categories":[{"code":"C","name":"N"}]}`))
	if len(flat) != 1 || flat[0].Code != "C" {
		t.Fatalf("flat wrapper not accepted: %+v", flat)
	}
}

package normalize

import "encoding/json"

// ItemSource records which backend shape a StoreItem was synthesized from.
type ItemSource string

const (
	SourceStore  ItemSource = "STORE"
	SourceFamily ItemSource = "FAMILY"
)

// StoreItem is the unified purchasable record the search index and store
// views work with, synthesized from the catalog price list and the
// per-family detail tree.
type StoreItem struct {
	Title      string
	FamilyName string
	Validity   string
	Price      int
	OptionCode string
	Source     ItemSource
}

// Family is one entry of the package family catalog.
type Family struct {
	Code string
	Name string
}

// Families extracts the family list from the catalog payload. Entries carry
// their identifiers as either id/code and label/name depending on release.
func Families(raw json.RawMessage) []Family {
	list := asSlice(dig(decode(raw), "data", "results"))
	families := make([]Family, 0, len(list))
	for _, entry := range list {
		m := asMap(entry)
		if m == nil {
			continue
		}
		families = append(families, Family{
			Code: str(m, "id", "code"),
			Name: str(m, "label", "name"),
		})
	}
	return families
}

// StoreItems maps the catalog-wide price list into StoreItems. The price-only
// result set is preferred over the full result set; a positive discounted
// price wins over the original price; the option code travels as
// action_param on this endpoint.
func StoreItems(raw json.RawMessage) []StoreItem {
	root := decode(raw)
	list := asSlice(dig(root, "data", "results_price_only"))
	if list == nil {
		list = asSlice(dig(root, "data", "results"))
	}

	items := make([]StoreItem, 0, len(list))
	for _, entry := range list {
		m := asMap(entry)
		if m == nil {
			continue
		}
		original, _ := num(m, "original_price")
		discounted, _ := num(m, "discounted_price")
		price := original
		if discounted > 0 {
			price = discounted
		}
		items = append(items, StoreItem{
			Title:      str(m, "title"),
			FamilyName: str(m, "family_name"),
			Validity:   str(m, "validity"),
			Price:      int(price),
			OptionCode: str(m, "action_param"),
			Source:     SourceStore,
		})
	}
	return items
}

// FamilyQuotaItems maps a family-quota search result into StoreItems and
// returns the family code the backend echoed (or the requested code when it
// did not).
func FamilyQuotaItems(raw json.RawMessage, requestedCode string) (string, []StoreItem) {
	root := decode(raw)
	code := str(asMap(root), "family_code")
	if code == "" {
		code = requestedCode
	}

	list := asSlice(dig(root, "packages"))
	items := make([]StoreItem, 0, len(list))
	for _, entry := range list {
		m := asMap(entry)
		if m == nil {
			continue
		}
		price, _ := num(m, "price")
		items = append(items, StoreItem{
			Title:      str(m, "title"),
			FamilyName: str(m, "family_name"),
			Validity:   str(m, "validity"),
			Price:      int(price),
			OptionCode: str(m, "option_code"),
			Source:     SourceFamily,
		})
	}
	return code, items
}

// FamilyOptions flattens a family detail tree into purchasable items. The
// variant-then-option order is preserved exactly: it is the display order
// and the order the family-loop purchase walks when given a start offset.
func FamilyOptions(raw json.RawMessage, fallbackFamilyName string) []StoreItem {
	root := decode(raw)
	familyName := str(asMap(root), "family_name")
	if familyName == "" {
		familyName = fallbackFamilyName
	}

	var items []StoreItem
	for _, ventry := range asSlice(dig(root, "package_variants")) {
		variant := asMap(ventry)
		if variant == nil {
			continue
		}
		variantName := str(variant, "name")
		variantValidity := str(variant, "validity")
		for _, oentry := range asSlice(variant["package_options"]) {
			option := asMap(oentry)
			if option == nil {
				continue
			}
			price, _ := num(option, "price")
			validity := str(option, "validity")
			if validity == "" {
				validity = variantValidity
			}
			title := str(option, "name")
			if variantName != "" {
				title = variantName + " - " + title
			}
			items = append(items, StoreItem{
				Title:      title,
				FamilyName: familyName,
				Validity:   validity,
				Price:      int(price),
				OptionCode: str(option, "package_option_code"),
				Source:     SourceFamily,
			})
		}
	}
	return items
}

// HotItem is one curated hot-list entry.
type HotItem struct {
	FamilyName   string
	VariantName  string
	OptionName   string
	FamilyCode   string
	Order        int
	IsEnterprise bool
	Price        int
	OptionCode   string
}

// HotItems maps the hot list payload, which is a bare array.
func HotItems(raw json.RawMessage) []HotItem {
	list := asSlice(decode(raw))
	items := make([]HotItem, 0, len(list))
	for _, entry := range list {
		m := asMap(entry)
		if m == nil {
			continue
		}
		price, _ := num(m, "price")
		order, _ := num(m, "order")
		items = append(items, HotItem{
			FamilyName:   str(m, "family_name"),
			VariantName:  str(m, "variant_name"),
			OptionName:   str(m, "option_name"),
			FamilyCode:   str(m, "family_code"),
			Order:        int(order),
			IsEnterprise: boolean(m, "is_enterprise"),
			Price:        int(price),
			OptionCode:   str(m, "option_code"),
		})
	}
	return items
}

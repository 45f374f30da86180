package normalize

import (
	"encoding/json"
	"time"
)

// RedeemItem is one redeemable reward.
type RedeemItem struct {
	Name        string
	Subtitle    string
	Points      int
	HasPoints   bool
	ValidUntil  time.Time
	ActionType  string
	ActionParam string
	ImageURL    string
}

// RedeemCategory groups redeemables the way the catalog presents them.
type RedeemCategory struct {
	Code       string
	Name       string
	HeaderDesc string
	Items      []RedeemItem
}

// RedeemCategories extracts the redeem catalog. Categories live under
// data.categories or categories; item fields have accumulated several
// spellings across releases and all are accepted. valid_until is epoch
// seconds when positive.
func RedeemCategories(raw json.RawMessage) []RedeemCategory {
	root := decode(raw)
	list := asSlice(dig(root, "data", "categories"))
	if list == nil {
		list = asSlice(dig(root, "categories"))
	}

	categories := make([]RedeemCategory, 0, len(list))
	for _, centry := range list {
		cat := asMap(centry)
		if cat == nil {
			continue
		}
		rawItems := asSlice(cat["redeemables"])
		items := make([]RedeemItem, 0, len(rawItems))
		for _, rentry := range rawItems {
			r := asMap(rentry)
			if r == nil {
				continue
			}
			item := RedeemItem{
				Name:        str(r, "name", "title"),
				Subtitle:    str(r, "subtitle", "caption"),
				ActionType:  str(r, "action_type", "actionType"),
				ActionParam: str(r, "action_param", "actionParam"),
				ImageURL:    str(r, "image_url", "image", "icon_url", "thumbnail_url"),
			}
			if item.Name == "" {
				item.Name = "(Tanpa nama)"
			}
			if points, ok := num(r, "required_point", "required_points", "point"); ok {
				item.Points = int(points)
				item.HasPoints = true
			}
			if ts, ok := num(r, "valid_until", "validUntil"); ok && ts > 0 {
				item.ValidUntil = time.Unix(int64(ts), 0)
			}
			items = append(items, item)
		}
		categories = append(categories, RedeemCategory{
			Code:       str(cat, "category_code", "code"),
			Name:       str(cat, "category_name", "name"),
			HeaderDesc: str(cat, "header_desc", "description"),
			Items:      items,
		})
	}
	return categories
}

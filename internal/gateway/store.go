package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// StoreSegments fetches the personalization segments used for package
// recommendations.
func (c *Client) StoreSegments(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/store/segments", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func storeQuery(subsType string, isEnterprise bool) url.Values {
	if subsType == "" {
		subsType = "PREPAID"
	}
	values := url.Values{}
	values.Set("subs_type", subsType)
	values.Set("is_enterprise", strconv.FormatBool(isEnterprise))
	return values
}

// StoreFamilies fetches the package family catalog.
func (c *Client) StoreFamilies(ctx context.Context, subsType string, isEnterprise bool) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.getQuery(ctx, "/store/families", storeQuery(subsType, isEnterprise), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// StorePackages fetches the catalog-wide price list.
func (c *Client) StorePackages(ctx context.Context, subsType string, isEnterprise bool) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.getQuery(ctx, "/store/packages", storeQuery(subsType, isEnterprise), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FamilyDetail fetches the variant/option tree for one family code.
func (c *Client) FamilyDetail(ctx context.Context, familyCode string, isEnterprise bool) (json.RawMessage, error) {
	rel := pathWithSegment("/store/family/", familyCode)
	values := url.Values{}
	values.Set("is_enterprise", strconv.FormatBool(isEnterprise))
	rel.RawQuery = values.Encode()
	var payload json.RawMessage
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Redeemables fetches the voucher/point catalog.
func (c *Client) Redeemables(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/store/redeemables", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SearchFamilyQuotas fetches the flattened quota list for one family code,
// used to extend the quota-search index.
func (c *Client) SearchFamilyQuotas(ctx context.Context, familyCode string) (json.RawMessage, error) {
	var payload json.RawMessage
	body := map[string]string{"family_code": familyCode}
	if err := c.post(ctx, "/search/family-quotas", body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Hot1 fetches the curated hot package list.
func (c *Client) Hot1(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/hot1", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Hot2 fetches the second curated hot package list.
func (c *Client) Hot2(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/hot2", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// PurchaseHot2 buys a hot-2 entry by list index using the given payment rail.
func (c *Client) PurchaseHot2(ctx context.Context, index int, method string) (json.RawMessage, error) {
	var payload json.RawMessage
	body := map[string]any{"index": index, "method": method}
	if err := c.post(ctx, "/hot2/purchase", body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// PurchaseHot2Ewallet buys a hot-2 entry via e-wallet. walletNumber may be
// empty for rails that do not need one.
func (c *Client) PurchaseHot2Ewallet(ctx context.Context, index int, method WalletMethod, walletNumber string) (json.RawMessage, error) {
	body := map[string]any{
		"index":          index,
		"payment_method": method,
	}
	if walletNumber != "" {
		body["wallet_number"] = walletNumber
	} else {
		body["wallet_number"] = nil
	}
	var payload json.RawMessage
	if err := c.post(ctx, "/hot2/ewallet", body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

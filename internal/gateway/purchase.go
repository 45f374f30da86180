package gateway

import "context"

// resolveAmount applies the gateway's amount-precedence rule: an explicit
// positive override wins; otherwise a positive package price is used; when
// neither is positive the overwrite_amount field is omitted and the backend
// applies its own default.
func resolveAmount(price, override int) (int, bool) {
	if override > 0 {
		return override, true
	}
	if price > 0 {
		return price, true
	}
	return 0, false
}

// PurchaseBalance buys one option code against balance. mode selects the
// backend flag set; the endpoint never changes. override is the optional
// amount override (0 means none).
func (c *Client) PurchaseBalance(ctx context.Context, optionCode string, price int, mode BalanceMode, override int) (*PurchaseResponse, error) {
	body := map[string]any{"option_code": optionCode}
	if amount, ok := resolveAmount(price, override); ok {
		body["overwrite_amount"] = amount
	}
	switch mode {
	case BalanceDecoyV1:
		body["use_decoy_v1"] = true
	case BalanceDecoyV2:
		body["use_decoy_v2"] = true
	}
	var payload PurchaseResponse
	if err := c.post(ctx, "/purchase/balance/single", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PurchaseEwallet buys one option code via an e-wallet rail. walletNumber is
// required by some rails (DANA, OVO) and passed through when present.
func (c *Client) PurchaseEwallet(ctx context.Context, optionCode string, method WalletMethod, walletNumber string, price, override int) (*PurchaseResponse, error) {
	body := map[string]any{
		"option_code":    optionCode,
		"payment_method": method,
	}
	if walletNumber != "" {
		body["wallet_number"] = walletNumber
	}
	if amount, ok := resolveAmount(price, override); ok {
		body["overwrite_amount"] = amount
	}
	var payload PurchaseResponse
	if err := c.post(ctx, "/purchase/ewallet/single", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PurchaseQris creates a QRIS transaction for one option code. The decoy
// variants keep the endpoint and set use_decoy plus the profile name the
// backend branches on.
func (c *Client) PurchaseQris(ctx context.Context, optionCode string, price int, mode QrisMode, override int) (*QrisResponse, error) {
	body := map[string]any{"option_code": optionCode}
	if amount, ok := resolveAmount(price, override); ok {
		body["overwrite_amount"] = amount
	}
	if mode == QrisDecoy || mode == QrisDecoy0 {
		body["use_decoy"] = true
		body["decoy_profile"] = string(mode)
	}
	var payload QrisResponse
	if err := c.post(ctx, "/purchase/qris/single", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PurchaseRepeatBalance asks the gateway to buy one option code N times.
// The looping, delays and per-attempt retries all happen server-side; the
// client sends the parameters once and receives the aggregate result.
func (c *Client) PurchaseRepeatBalance(ctx context.Context, optionCode string, times, delaySeconds int, useDecoy bool, tokenConfirmationIdx int) (*RepeatResult, error) {
	body := map[string]any{
		"option_code":            optionCode,
		"times":                  times,
		"delay_seconds":          delaySeconds,
		"use_decoy":              useDecoy,
		"token_confirmation_idx": tokenConfirmationIdx,
	}
	var payload RepeatResult
	if err := c.post(ctx, "/purchase/balance/repeat", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PurchaseFamilyLoop asks the gateway to buy every option in a family
// sequentially, starting from the 1-based option offset. Option order is the
// family detail's variant-then-option order.
func (c *Client) PurchaseFamilyLoop(ctx context.Context, familyCode string, startFromOption, delaySeconds int) (*FamilyLoopResult, error) {
	body := map[string]any{
		"family_code":       familyCode,
		"start_from_option": startFromOption,
		"delay_seconds":     delaySeconds,
	}
	var payload FamilyLoopResult
	if err := c.post(ctx, "/purchase/family/loop", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

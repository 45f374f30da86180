package gateway

import (
	"context"
	"encoding/json"
)

// Summary fetches the balance/profile/tiering snapshot for the active user.
func (c *Client) Summary(ctx context.Context) (*SummaryResponse, error) {
	var payload SummaryResponse
	if err := c.get(ctx, "/me/summary", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MyPackages fetches the active package list.
func (c *Client) MyPackages(ctx context.Context) (*MyPackagesResponse, error) {
	var payload MyPackagesResponse
	if err := c.get(ctx, "/me/packages", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// History fetches past transactions. The record shape is backend-defined and
// rendered raw.
func (c *Client) History(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/transactions/history", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FamilyPlan fetches the family-plan ("Akrab") organizer data.
func (c *Client) FamilyPlan(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/famplan/info", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ValidateMSISDN checks a number's registration and family-plan status.
func (c *Client) ValidateMSISDN(ctx context.Context, msisdn string) (json.RawMessage, error) {
	var payload json.RawMessage
	body := map[string]string{"msisdn": msisdn}
	if err := c.post(ctx, "/famplan/validate-msisdn", body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CircleStatus fetches circle membership status.
func (c *Client) CircleStatus(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/circle/status", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// RegisterCard submits an identity-linked SIM registration.
func (c *Client) RegisterCard(ctx context.Context, body RegistrationBody) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.post(ctx, "/registration/dukcapil", body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

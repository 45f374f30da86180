package gateway

import (
	"context"
	"encoding/json"
	"net/http"
)

// Notifications fetches the inbox. The wrapper shape around the list varies
// by backend release, so the payload stays raw and normalize.Notifications
// does the extraction.
func (c *Client) Notifications(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, "/notifications", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// NotificationDetail fetches one notification by ID.
func (c *Client) NotificationDetail(ctx context.Context, notificationID string) (json.RawMessage, error) {
	var payload json.RawMessage
	rel := pathWithSegment("/notifications/", notificationID)
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// MarkAllNotificationsRead asks the gateway to flag the whole inbox read.
// The backend does not reliably persist this; callers layer the local
// read-state overlay on top regardless of the result.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*MarkReadResponse, error) {
	var payload MarkReadResponse
	if err := c.post(ctx, "/notifications/read-all", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

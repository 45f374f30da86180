package normalize

import "encoding/json"

// Notification is the canonical inbox record the UI renders, regardless of
// which wrapper shape the backend emitted.
type Notification struct {
	ID        string
	Title     string
	Body      string
	Read      bool
	Timestamp string
	Category  string
}

// Notifications extracts the inbox list from a raw payload. The backend has
// shipped several wrapper shapes for the same logical list, so candidates
// are tried most specific first; the order is load-bearing because a bare
// array also satisfies the later checks:
//
//  1. data.inbox
//  2. data.notification.data
//  3. notifications
//  4. data (when it is itself an array)
//  5. the root payload (when it is itself an array)
//
// Anything else yields an empty list. The input is never mutated, so calling
// this twice on the same payload gives identical results.
func Notifications(raw json.RawMessage) []Notification {
	root := decode(raw)

	list := asSlice(dig(root, "data", "inbox"))
	if list == nil {
		list = asSlice(dig(root, "data", "notification", "data"))
	}
	if list == nil {
		list = asSlice(dig(root, "notifications"))
	}
	if list == nil {
		list = asSlice(dig(root, "data"))
	}
	if list == nil {
		list = asSlice(root)
	}

	records := make([]Notification, 0, len(list))
	for _, entry := range list {
		m := asMap(entry)
		if m == nil {
			continue
		}
		records = append(records, Notification{
			ID:        str(m, "notification_id"),
			Title:     str(m, "brief_message", "title"),
			Body:      str(m, "full_message", "message"),
			Read:      boolean(m, "is_read"),
			Timestamp: str(m, "timestamp"),
			Category:  str(m, "category"),
		})
	}
	return records
}

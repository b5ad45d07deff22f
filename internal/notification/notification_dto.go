package notification

import "encoding/json"

type NotificationResponse struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Message    string          `json:"message"`
	WeekAnchor string          `json:"week_anchor"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

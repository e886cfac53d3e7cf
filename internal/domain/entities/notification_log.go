package entities

import (
	"encoding/json"
	"time"
)

// NotificationChannel selects how a budget summary reaches the client.

type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelWhatsApp NotificationChannel = "whatsapp"
)

// NotificationLog is the audit record persisted for every dispatched
// notification.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// Payload:
//   - PayloadRaw keeps the composed message (JSON) for traceability/audit.
//   - Payload is an optional parsed representation, useful for querying.

type NotificationLog struct {
	ID       string              `json:"id"`
	BudgetID string              `json:"budget_id"`
	Channel  NotificationChannel `json:"channel"`
	SentAt   time.Time           `json:"sent_at"`
	Subject  string              `json:"subject,omitempty"`

	PayloadRaw json.RawMessage        `json:"payload_raw,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidEventDate = errors.New("invalid event date")

// BudgetRequest is the payload accepted by the create and edit endpoints.
// EventDate is a calendar date ("2006-01-02"); EventTime an "HH:MM" slot.
type BudgetRequest struct {
	Client         string  `json:"client" binding:"required"`
	Email          string  `json:"email" binding:"required"`
	Phone          string  `json:"phone"`
	EventDate      string  `json:"event_date" binding:"required"`
	EventTime      string  `json:"event_time" binding:"required"`
	EventLocation  string  `json:"event_location"`
	ServiceType    string  `json:"service_type" binding:"required"`
	Description    string  `json:"description"`
	EstimatedValue float64 `json:"estimated_value" binding:"required"`
	Notes          string  `json:"notes"`
	ArcSize        string  `json:"arc_size"`
	ImageRef       string  `json:"image_ref"`
}

// ResolveEventDate parses the calendar date.
func (r BudgetRequest) ResolveEventDate() (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(r.EventDate))
	if err != nil {
		return time.Time{}, ErrInvalidEventDate
	}
	return d, nil
}

// StatusChangeRequest carries a manual status transition. Confirm models the
// user-confirmation gate: the operation is rejected when it is false.
type StatusChangeRequest struct {
	Status  string `json:"status" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// DispatchRequest mirrors the dispatch compositor: the two channel toggles
// are mutually exclusive and confirmation is required.
type DispatchRequest struct {
	Email         bool   `json:"email"`
	WhatsApp      bool   `json:"whatsapp"`
	CustomMessage string `json:"custom_message"`
	Confirm       bool   `json:"confirm"`
}

// ProviderReviewRequest selects the outcome-notification channels; either or
// both may be set.
type ProviderReviewRequest struct {
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

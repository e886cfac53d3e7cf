package response

import (
	"time"

	"decora_festas/internal/domain/entities"
)

type BudgetResponse struct {
	ID             string    `json:"id"`
	Client         string    `json:"client"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	EventDate      string    `json:"event_date"`
	EventTime      string    `json:"event_time"`
	EventLocation  string    `json:"event_location,omitempty"`
	ServiceType    string    `json:"service_type"`
	ServiceLabel   string    `json:"service_label"`
	Description    string    `json:"description,omitempty"`
	EstimatedValue float64   `json:"estimated_value"`
	Notes          string    `json:"notes,omitempty"`
	ArcSize        string    `json:"arc_size,omitempty"`
	ImageRef       string    `json:"image_ref,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:             b.ID,
		Client:         b.Client,
		Email:          b.Email,
		Phone:          b.Phone,
		EventDate:      b.EventDate.Format("2006-01-02"),
		EventTime:      b.EventTime,
		EventLocation:  b.EventLocation,
		ServiceType:    string(b.ServiceType),
		ServiceLabel:   b.ServiceType.Label(),
		Description:    b.Description,
		EstimatedValue: b.EstimatedValue,
		Notes:          b.Notes,
		ArcSize:        b.ArcSize,
		ImageRef:       b.ImageRef,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBudgets(bs []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBudget(b))
	}
	return out
}

package response

import (
	"time"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase"
)

type DispatchResponse struct {
	Budget      BudgetResponse `json:"budget"`
	Channel     string         `json:"channel"`
	Subject     string         `json:"subject,omitempty"`
	Body        string         `json:"body,omitempty"`
	DeepLink    string         `json:"deep_link,omitempty"`
	PaymentLink string         `json:"payment_link,omitempty"`
}

func FromDispatchResult(res usecase.DispatchResult) DispatchResponse {
	return DispatchResponse{
		Budget:      FromBudget(res.Budget),
		Channel:     string(res.Channel),
		Subject:     res.Subject,
		Body:        res.Body,
		DeepLink:    res.DeepLink,
		PaymentLink: res.PaymentLink,
	}
}

type NotificationLogResponse struct {
	ID       string                 `json:"id"`
	BudgetID string                 `json:"budget_id"`
	Channel  string                 `json:"channel"`
	SentAt   time.Time              `json:"sent_at"`
	Subject  string                 `json:"subject,omitempty"`
	Payload  map[string]interface{} `json:"payload,omitempty"`
}

func FromNotificationLog(n entities.NotificationLog) NotificationLogResponse {
	return NotificationLogResponse{
		ID:       n.ID,
		BudgetID: n.BudgetID,
		Channel:  string(n.Channel),
		SentAt:   n.SentAt,
		Subject:  n.Subject,
		Payload:  n.Payload,
	}
}

func FromNotificationLogs(ns []entities.NotificationLog) []NotificationLogResponse {
	out := make([]NotificationLogResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotificationLog(n))
	}
	return out
}

package response

import (
	"decora_festas/internal/usecase"
)

type ProviderReviewResponse struct {
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Subject    string `json:"subject,omitempty"`
	Body       string `json:"body,omitempty"`
	DeepLink   string `json:"deep_link,omitempty"`
}

func FromReviewResult(res usecase.ReviewResult) ProviderReviewResponse {
	return ProviderReviewResponse{
		ProviderID: res.Provider.ID,
		Name:       res.Provider.Name,
		Status:     string(res.Provider.Status),
		Subject:    res.Subject,
		Body:       res.Body,
		DeepLink:   res.DeepLink,
	}
}

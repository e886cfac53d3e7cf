package entities

import "time"

// ProviderStatus tracks the review outcome for a registered decorator.

type ProviderStatus string

const (
	ProviderPending  ProviderStatus = "pending"
	ProviderApproved ProviderStatus = "approved"
	ProviderRejected ProviderStatus = "rejected"
)

// Provider is a decorator (service provider) awaiting or past review.
// Review notifications target this entity; approving or rejecting a provider
// never touches any Budget record.
type Provider struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Status    ProviderStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

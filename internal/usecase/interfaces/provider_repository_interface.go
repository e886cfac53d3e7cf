package interfaces

import (
	"context"

	"decora_festas/internal/domain/entities"
)

// IProviderRepository abstracts DynamoDB persistence for Provider.

type IProviderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Provider, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProviderStatus) (entities.Provider, error)
}

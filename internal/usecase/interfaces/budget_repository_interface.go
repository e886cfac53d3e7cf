package interfaces

import (
	"context"

	"decora_festas/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The service must be able to:
//   - list the canonical collection for the session store
//   - create a budget when the creation workflow submits
//   - update fields and status independently (status changes come from the
//     dashboard action menu and from the dispatch side effect)
//   - delete only on explicit request, never implicitly

type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}

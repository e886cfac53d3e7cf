package interfaces

import (
	"context"

	"decora_festas/internal/domain/entities"
)

// INotificationLogRepository abstracts DynamoDB persistence for the dispatch
// audit trail.

type INotificationLogRepository interface {
	Create(ctx context.Context, n entities.NotificationLog) (entities.NotificationLog, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.NotificationLog, error)
}

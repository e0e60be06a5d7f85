package interfaces

import (
	"context"

	"erp_vendas/internal/domain/entities"
)

// IGoalRepository abstracts DynamoDB persistence for Goal. Goals are unique
// per client, year and month.
type IGoalRepository interface {
	Create(ctx context.Context, g entities.Goal) (entities.Goal, error)
	GetByID(ctx context.Context, id string) (entities.Goal, error)
	List(ctx context.Context) ([]entities.Goal, error)
	Update(ctx context.Context, previous, updated entities.Goal) (entities.Goal, error)
	Delete(ctx context.Context, g entities.Goal) error
}

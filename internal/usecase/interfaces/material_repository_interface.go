package interfaces

import (
	"context"

	"erp_vendas/internal/domain/entities"
)

// IMaterialRepository abstracts DynamoDB persistence for Material. The codigo
// is unique.
type IMaterialRepository interface {
	Create(ctx context.Context, material entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, previous, updated entities.Material) (entities.Material, error)
	Delete(ctx context.Context, material entities.Material) error
}

package interfaces

import (
	"context"

	"erp_vendas/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// The cnpj is kept unique through a reservation item; Create and Update return
// entities.ErrConflict when it is already taken.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, previous, updated entities.Client) (entities.Client, error)
	Delete(ctx context.Context, c entities.Client) error
	NextReference(ctx context.Context) (string, error)
}

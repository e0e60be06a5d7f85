package interfaces

import (
	"context"

	"erp_vendas/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The transition to FATURADO is not exposed here: it only happens inside
// IInvoiceRepository.Issue. Update is conditional on the stored status still
// being expected and returns entities.ErrInvalidOrderState otherwise.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByMaterial(ctx context.Context, materialID string) ([]entities.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"
	"time"

	"erp_vendas/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Writes that touch installments are single transactions:
//   - Issue writes the invoice, reserves numero_nf, writes every installment
//     and moves the order to FATURADO only if it is still PENDENTE or
//     IMPLANTADO. It returns entities.ErrDuplicateInvoiceNumber or
//     entities.ErrInvalidOrderState when the matching condition fails.
//   - ReplaceInstallments deletes the previous installments (refusing Pago
//     ones with entities.ErrAlreadySettled), writes the new ones and updates
//     the invoice from current to inv. It returns entities.ErrConflict when
//     the stored invoice no longer matches current.UpdatedAt.
type IInvoiceRepository interface {
	Issue(ctx context.Context, inv entities.Invoice, items []entities.Installment, now time.Time) error
	ReplaceInstallments(ctx context.Context, current, inv entities.Invoice, previous, items []entities.Installment) error
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Invoice, error)
}

package interfaces

import (
	"context"
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CommissionUpdate is the commission snapshot written onto an installment.
type CommissionUpdate struct {
	Amount      decimal.Decimal
	Rate        decimal.Decimal
	RateUnknown bool
}

// IInstallmentRepository abstracts DynamoDB persistence for Installment.
//
// Both writes are conditional on the stored status not being Pago:
//   - MarkPaid returns entities.ErrAlreadySettled when the row is already
//     Pago and entities.ErrNotFound when it does not exist.
//   - UpdateCommission reports false, without error, when the row is Pago.
type IInstallmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	List(ctx context.Context) ([]entities.Installment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]entities.Installment, error)
	MarkPaid(ctx context.Context, id string, paidOn time.Time, c CommissionUpdate, now time.Time) (entities.Installment, error)
	UpdateCommission(ctx context.Context, id string, c CommissionUpdate, now time.Time) (bool, error)
}

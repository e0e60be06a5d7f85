package ledger

import (
	"time"

	"erp_vendas/internal/domain/entities"
)

// EffectiveStatus is the single overdue rule shared by listings, reports and
// the dashboard: an unpaid installment whose due date is before today is
// Atrasado. Paid installments stay Pago regardless of the due date.
func EffectiveStatus(status entities.InstallmentStatus, dueDate, today time.Time) entities.InstallmentStatus {
	if status == entities.InstallmentStatusPago {
		return entities.InstallmentStatusPago
	}
	if entities.DateOf(dueDate).Before(entities.DateOf(today)) {
		return entities.InstallmentStatusAtrasado
	}
	return entities.InstallmentStatusPendente
}

// WithEffectiveStatus returns a copy of the installments with Status replaced
// by the effective status as of today.
func WithEffectiveStatus(items []entities.Installment, today time.Time) []entities.Installment {
	out := make([]entities.Installment, len(items))
	for i, it := range items {
		it.Status = EffectiveStatus(it.Status, it.DueDate, today)
		out[i] = it
	}
	return out
}

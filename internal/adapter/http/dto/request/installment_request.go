package request

import (
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"
)

// InstallmentStatusRequest is the body of PUT /vencimentos/{id}. Pago is the
// only accepted target: there is no way back from it and Atrasado is derived.
type InstallmentStatusRequest struct {
	Status        string `json:"status" binding:"required" enums:"Pago"`
	DataPagamento string `json:"data_pagamento" example:"2025-01-20"`
}

// PaidOn validates the transition and returns the payment date, nil meaning
// today.
func (r InstallmentStatusRequest) PaidOn() (*time.Time, error) {
	if entities.InstallmentStatus(strings.TrimSpace(r.Status)) != entities.InstallmentStatusPago {
		return nil, entities.NewValidationError("status", "only the transition to Pago is allowed")
	}
	day, err := optionalDate("data_pagamento", r.DataPagamento)
	if err != nil || day.IsZero() {
		return nil, err
	}
	return &day, nil
}

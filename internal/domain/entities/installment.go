package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the status of a vencimento.
//
// Only Pendente and Pago are persisted; Atrasado is derived at read time from
// the due date (see ledger.EffectiveStatus).
type InstallmentStatus string

const (
	InstallmentStatusPendente InstallmentStatus = "Pendente"
	InstallmentStatusAtrasado InstallmentStatus = "Atrasado"
	InstallmentStatusPago     InstallmentStatus = "Pago"
)

func (s InstallmentStatus) Valid() bool {
	switch s {
	case InstallmentStatusPendente, InstallmentStatusAtrasado, InstallmentStatusPago:
		return true
	}
	return false
}

// Installment is one dated payment obligation of an invoice and the
// commission owed on it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (nota_fiscal_id-index): nota_fiscal_id
//
// Commission is derived from Value and CommissionRate. It is rewritten while
// the installment is unpaid and frozen once it is Pago.
type Installment struct {
	ID                    string            `json:"id"`
	InvoiceID             string            `json:"nota_fiscal_id"`
	Number                int               `json:"parcela"`
	TotalInstallments     int               `json:"total_parcelas"`
	Value                 decimal.Decimal   `json:"valor"`
	DueDate               time.Time         `json:"data_vencimento"`
	Status                InstallmentStatus `json:"status"`
	PaymentDate           *time.Time        `json:"data_pagamento,omitempty"`
	Commission            decimal.Decimal   `json:"comissao_calculada"`
	CommissionRate        decimal.Decimal   `json:"porcentagem_comissao"`
	CommissionRateUnknown bool              `json:"comissao_taxa_desconhecida"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// Label renders the "k/N" display form.
func (i Installment) Label() string {
	return fmt.Sprintf("%d/%d", i.Number, i.TotalInstallments)
}

func (i Installment) IsPaid() bool {
	return i.Status == InstallmentStatusPago
}

package response

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InstallmentResponse struct {
	ID                     string          `json:"id"`
	NotaFiscalID           string          `json:"nota_fiscal_id"`
	Parcela                int             `json:"parcela"`
	TotalParcelas          int             `json:"total_parcelas"`
	ParcelaLabel           string          `json:"parcela_label" example:"1/3"`
	Valor                  decimal.Decimal `json:"valor" swaggertype:"number"`
	DataVencimento         string          `json:"data_vencimento"`
	Status                 string          `json:"status" enums:"Pendente,Atrasado,Pago"`
	DataPagamento          *string         `json:"data_pagamento"`
	ComissaoCalculada      decimal.Decimal `json:"comissao_calculada" swaggertype:"number"`
	PorcentagemComissao    decimal.Decimal `json:"porcentagem_comissao" swaggertype:"number"`
	TaxaComissaoIndefinida bool            `json:"comissao_taxa_desconhecida"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func FromInstallment(i entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                     i.ID,
		NotaFiscalID:           i.InvoiceID,
		Parcela:                i.Number,
		TotalParcelas:          i.TotalInstallments,
		ParcelaLabel:           i.Label(),
		Valor:                  i.Value,
		DataVencimento:         date(i.DueDate),
		Status:                 string(i.Status),
		DataPagamento:          datePtr(i.PaymentDate),
		ComissaoCalculada:      i.Commission,
		PorcentagemComissao:    i.CommissionRate,
		TaxaComissaoIndefinida: i.CommissionRateUnknown,
		CreatedAt:              i.CreatedAt,
		UpdatedAt:              i.UpdatedAt,
	}
}

func FromInstallments(is []entities.Installment) []InstallmentResponse {
	return mapSlice(is, FromInstallment)
}

package request

import (
	"erp_vendas/internal/usecase"

	"github.com/shopspring/decimal"
)

// InvoiceRequest issues an invoice. DatasManuais, when present, replaces the
// monthly schedule starting at DataPrimeiroVencimento.
type InvoiceRequest struct {
	PedidoID               string          `json:"pedido_id" binding:"required"`
	NumeroNF               string          `json:"numero_nf" binding:"required"`
	ValorTotal             decimal.Decimal `json:"valor_total" swaggertype:"number"`
	NumeroParcelas         int             `json:"numero_parcelas"`
	DataPrimeiroVencimento string          `json:"data_primeiro_vencimento" example:"2025-02-10"`
	DatasManuais           []string        `json:"datas_manuais"`
	DataEmissao            string          `json:"data_emissao" example:"2025-01-10"`
}

func (r InvoiceRequest) ToCommand() (usecase.IssueInvoiceCommand, error) {
	first, err := optionalDate("data_primeiro_vencimento", r.DataPrimeiroVencimento)
	if err != nil {
		return usecase.IssueInvoiceCommand{}, err
	}
	dates, err := dateList("datas_manuais", r.DatasManuais)
	if err != nil {
		return usecase.IssueInvoiceCommand{}, err
	}
	issued, err := optionalDate("data_emissao", r.DataEmissao)
	if err != nil {
		return usecase.IssueInvoiceCommand{}, err
	}
	return usecase.IssueInvoiceCommand{
		OrderID:          r.PedidoID,
		InvoiceNumber:    r.NumeroNF,
		TotalValue:       r.ValorTotal,
		InstallmentCount: r.NumeroParcelas,
		FirstDueDate:     first,
		DueDates:         dates,
		IssueDate:        issued,
	}, nil
}

// InvoiceCorrectionRequest re-plans an invoice with no paid installment.
type InvoiceCorrectionRequest struct {
	ValorTotal             decimal.Decimal `json:"valor_total" swaggertype:"number"`
	NumeroParcelas         int             `json:"numero_parcelas"`
	DataPrimeiroVencimento string          `json:"data_primeiro_vencimento" example:"2025-02-10"`
	DatasManuais           []string        `json:"datas_manuais"`
	DataEmissao            string          `json:"data_emissao" example:"2025-01-10"`
}

func (r InvoiceCorrectionRequest) ToCommand() (usecase.CorrectInvoiceCommand, error) {
	first, err := optionalDate("data_primeiro_vencimento", r.DataPrimeiroVencimento)
	if err != nil {
		return usecase.CorrectInvoiceCommand{}, err
	}
	dates, err := dateList("datas_manuais", r.DatasManuais)
	if err != nil {
		return usecase.CorrectInvoiceCommand{}, err
	}
	issued, err := optionalDate("data_emissao", r.DataEmissao)
	if err != nil {
		return usecase.CorrectInvoiceCommand{}, err
	}
	return usecase.CorrectInvoiceCommand{
		TotalValue:       r.ValorTotal,
		InstallmentCount: r.NumeroParcelas,
		FirstDueDate:     first,
		DueDates:         dates,
		IssueDate:        issued,
	}, nil
}

package response

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	ID             string          `json:"id"`
	PedidoID       string          `json:"pedido_id"`
	ClienteID      string          `json:"cliente_id"`
	NumeroNF       string          `json:"numero_nf"`
	ValorTotal     decimal.Decimal `json:"valor_total" swaggertype:"number"`
	DataEmissao    string          `json:"data_emissao"`
	NumeroParcelas int             `json:"numero_parcelas"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID,
		PedidoID:       inv.OrderID,
		ClienteID:      inv.ClientID,
		NumeroNF:       inv.Number,
		ValorTotal:     inv.TotalValue,
		DataEmissao:    date(inv.IssueDate),
		NumeroParcelas: inv.InstallmentCount,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	return mapSlice(invs, FromInvoice)
}

// IssuedInvoiceResponse is returned by issue and correction: the invoice with
// its installment schedule.
type IssuedInvoiceResponse struct {
	InvoiceResponse
	Vencimentos []InstallmentResponse `json:"vencimentos"`
}

func FromIssuedInvoice(inv entities.Invoice, items []entities.Installment) IssuedInvoiceResponse {
	return IssuedInvoiceResponse{
		InvoiceResponse: FromInvoice(inv),
		Vencimentos:     FromInstallments(items),
	}
}

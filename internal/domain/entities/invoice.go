package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxInstallments bounds the schedule so an invoice and all of its
// installments fit in a single storage transaction.
const MaxInstallments = 48

// Invoice (nota fiscal) issued against exactly one order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (pedido_id-index): pedido_id
//   - unique key: numero_nf
type Invoice struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"pedido_id"`
	ClientID         string          `json:"cliente_id"`
	Number           string          `json:"numero_nf"`
	TotalValue       decimal.Decimal `json:"valor_total"`
	IssueDate        time.Time       `json:"data_emissao"`
	InstallmentCount int             `json:"numero_parcelas"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

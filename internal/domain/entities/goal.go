package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal (meta) is the target tonnage of a client for one calendar month.
// Unique per (cliente_id, ano, mes).
type Goal struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"cliente_id"`
	Year       int             `json:"ano"`
	Month      int             `json:"mes"`
	TargetTons decimal.Decimal `json:"valor_ton"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

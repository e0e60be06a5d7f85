package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Segment is the product family of a material.
type Segment string

const (
	SegmentBox     Segment = "CAIXA"
	SegmentSheet   Segment = "CHAPA"
	SegmentDieCut  Segment = "CORTE VINCO"
	SegmentSimplex Segment = "SIMPLEX"
)

func (s Segment) Valid() bool {
	switch s {
	case SegmentBox, SegmentSheet, SegmentDieCut, SegmentSimplex:
		return true
	}
	return false
}

// Material is a catalog item. CommissionRate is a percentage (0-100) applied
// to every installment of invoices whose order references the material.
type Material struct {
	ID             string          `json:"id"`
	Code           string          `json:"codigo"`
	Description    string          `json:"descricao"`
	Segment        Segment         `json:"segmento"`
	UnitWeight     decimal.Decimal `json:"peso_unit"`
	UnitPrice      decimal.Decimal `json:"preco_unit"`
	CommissionRate decimal.Decimal `json:"comissao"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

var thousand = decimal.NewFromInt(1000)

// Factor is the price per ton of the material, as shown in the catalog.
func (m Material) Factor() decimal.Decimal {
	if !m.UnitWeight.IsPositive() {
		return decimal.Zero
	}
	return m.UnitPrice.Div(m.UnitWeight.Mul(thousand)).Round(2)
}

package response

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MaterialResponse carries the derived price factor next to the stored fields.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Descricao string          `json:"descricao"`
	Segmento  string          `json:"segmento"`
	PesoUnit  decimal.Decimal `json:"peso_unit" swaggertype:"number"`
	PrecoUnit decimal.Decimal `json:"preco_unit" swaggertype:"number"`
	Comissao  decimal.Decimal `json:"comissao" swaggertype:"number"`
	Fator     decimal.Decimal `json:"fator" swaggertype:"number"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		Codigo:    m.Code,
		Descricao: m.Description,
		Segmento:  string(m.Segment),
		PesoUnit:  m.UnitWeight,
		PrecoUnit: m.UnitPrice,
		Comissao:  m.CommissionRate,
		Fator:     m.Factor(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	return mapSlice(ms, FromMaterial)
}

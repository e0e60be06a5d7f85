package request

import (
	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MaterialRequest struct {
	Codigo    string          `json:"codigo" binding:"required"`
	Descricao string          `json:"descricao" binding:"required"`
	Segmento  string          `json:"segmento" binding:"required"`
	PesoUnit  decimal.Decimal `json:"peso_unit" swaggertype:"number"`
	PrecoUnit decimal.Decimal `json:"preco_unit" swaggertype:"number"`
	Comissao  decimal.Decimal `json:"comissao" swaggertype:"number"`
}

func (r MaterialRequest) ToEntity() entities.Material {
	return entities.Material{
		Code:           r.Codigo,
		Description:    r.Descricao,
		Segment:        entities.Segment(r.Segmento),
		UnitWeight:     r.PesoUnit,
		UnitPrice:      r.PrecoUnit,
		CommissionRate: r.Comissao,
	}
}

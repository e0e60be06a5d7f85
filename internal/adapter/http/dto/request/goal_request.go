package request

import (
	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type GoalRequest struct {
	ClienteID string          `json:"cliente_id" binding:"required"`
	Ano       int             `json:"ano" binding:"required"`
	Mes       int             `json:"mes" binding:"required"`
	ValorTon  decimal.Decimal `json:"valor_ton" swaggertype:"number"`
}

func (r GoalRequest) ToEntity() entities.Goal {
	return entities.Goal{
		ClientID:   r.ClienteID,
		Year:       r.Ano,
		Month:      r.Mes,
		TargetTons: r.ValorTon,
	}
}

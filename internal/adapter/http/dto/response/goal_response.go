package response

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type GoalResponse struct {
	ID        string          `json:"id"`
	ClienteID string          `json:"cliente_id"`
	Ano       int             `json:"ano"`
	Mes       int             `json:"mes"`
	ValorTon  decimal.Decimal `json:"valor_ton" swaggertype:"number"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromGoal(g entities.Goal) GoalResponse {
	return GoalResponse{
		ID:        g.ID,
		ClienteID: g.ClientID,
		Ano:       g.Year,
		Mes:       g.Month,
		ValorTon:  g.TargetTons,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func FromGoals(gs []entities.Goal) []GoalResponse {
	return mapSlice(gs, FromGoal)
}

package request

import (
	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderRequest creates or replaces an order. An empty status keeps the
// current one on update and means PENDENTE on create.
type OrderRequest struct {
	ClienteID         string          `json:"cliente_id" binding:"required"`
	MaterialID        string          `json:"material_id"`
	ItemNome          string          `json:"item_nome"`
	Quantidade        int             `json:"quantidade"`
	PesoTotal         decimal.Decimal `json:"peso_total" swaggertype:"number"`
	ValorTotal        decimal.Decimal `json:"valor_total" swaggertype:"number"`
	DataEntrega       string          `json:"data_entrega" example:"2025-02-28"`
	NumeroOC          string          `json:"numero_oc"`
	NumeroFabrica     string          `json:"numero_fabrica"`
	CondicaoPagamento string          `json:"condicao_pagamento"`
	Status            string          `json:"status" enums:"PENDENTE,IMPLANTADO"`
}

func (r OrderRequest) ToEntity() (entities.Order, error) {
	delivery, err := optionalDate("data_entrega", r.DataEntrega)
	if err != nil {
		return entities.Order{}, err
	}
	return entities.Order{
		ClientID:         r.ClienteID,
		MaterialID:       r.MaterialID,
		ItemName:         r.ItemNome,
		Quantity:         r.Quantidade,
		TotalWeight:      r.PesoTotal,
		TotalValue:       r.ValorTotal,
		DeliveryDate:     delivery,
		PurchaseOrderNo:  r.NumeroOC,
		FactoryNumber:    r.NumeroFabrica,
		PaymentCondition: r.CondicaoPagamento,
		Status:           entities.OrderStatus(r.Status),
	}, nil
}

package response

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID                string          `json:"id"`
	ClienteID         string          `json:"cliente_id"`
	MaterialID        string          `json:"material_id,omitempty"`
	ItemNome          string          `json:"item_nome"`
	Quantidade        int             `json:"quantidade"`
	PesoTotal         decimal.Decimal `json:"peso_total" swaggertype:"number"`
	ValorTotal        decimal.Decimal `json:"valor_total" swaggertype:"number"`
	DataEntrega       string          `json:"data_entrega"`
	NumeroOC          string          `json:"numero_oc"`
	NumeroFabrica     string          `json:"numero_fabrica"`
	CondicaoPagamento string          `json:"condicao_pagamento"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		ClienteID:         o.ClientID,
		MaterialID:        o.MaterialID,
		ItemNome:          o.ItemName,
		Quantidade:        o.Quantity,
		PesoTotal:         o.TotalWeight,
		ValorTotal:        o.TotalValue,
		DataEntrega:       date(o.DeliveryDate),
		NumeroOC:          o.PurchaseOrderNo,
		NumeroFabrica:     o.FactoryNumber,
		CondicaoPagamento: o.PaymentCondition,
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromOrders(os []entities.Order) []OrderResponse {
	return mapSlice(os, FromOrder)
}

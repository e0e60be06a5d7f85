package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of an order (pedido).
//
// PENDENTE and IMPLANTADO are set by users; FATURADO is only ever reached by
// issuing an invoice against the order.
type OrderStatus string

const (
	OrderStatusPendente   OrderStatus = "PENDENTE"
	OrderStatusImplantado OrderStatus = "IMPLANTADO"
	OrderStatusFaturado   OrderStatus = "FATURADO"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendente, OrderStatusImplantado, OrderStatusFaturado:
		return true
	}
	return false
}

// Invoiceable reports whether an invoice may still be issued against the order.
func (s OrderStatus) Invoiceable() bool {
	return s == OrderStatusPendente || s == OrderStatusImplantado
}

// Order is a client purchase order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (material_id-index): material_id
//
// MaterialID is empty for free-text items not tied to the catalog; such
// orders produce installments with an unknown commission rate.
type Order struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"cliente_id"`
	MaterialID       string          `json:"material_id"`
	ItemName         string          `json:"item_nome"`
	Quantity         int             `json:"quantidade"`
	TotalWeight      decimal.Decimal `json:"peso_total"`
	TotalValue       decimal.Decimal `json:"valor_total"`
	DeliveryDate     time.Time       `json:"data_entrega"`
	PurchaseOrderNo  string          `json:"numero_oc"`
	FactoryNumber    string          `json:"numero_fabrica"`
	PaymentCondition string          `json:"condicao_pagamento"`
	Status           OrderStatus     `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

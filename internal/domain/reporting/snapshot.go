package reporting

import (
	"sort"
	"time"

	"erp_vendas/internal/domain/entities"
)

// Snapshot is the set of collections a report is computed from. Reports are
// pure functions of a Snapshot and the evaluation date; nothing is cached.
type Snapshot struct {
	Clients      []entities.Client
	Materials    []entities.Material
	Orders       []entities.Order
	Invoices     []entities.Invoice
	Installments []entities.Installment
	Goals        []entities.Goal
}

type index struct {
	clients   map[string]entities.Client
	materials map[string]entities.Material
	orders    map[string]entities.Order
	invoices  map[string]entities.Invoice
	invoiced  map[string]bool
}

func (s Snapshot) index() index {
	idx := index{
		clients:   make(map[string]entities.Client, len(s.Clients)),
		materials: make(map[string]entities.Material, len(s.Materials)),
		orders:    make(map[string]entities.Order, len(s.Orders)),
		invoices:  make(map[string]entities.Invoice, len(s.Invoices)),
		invoiced:  make(map[string]bool, len(s.Invoices)),
	}
	for _, c := range s.Clients {
		idx.clients[c.ID] = c
	}
	for _, m := range s.Materials {
		idx.materials[m.ID] = m
	}
	for _, o := range s.Orders {
		idx.orders[o.ID] = o
	}
	for _, inv := range s.Invoices {
		idx.invoices[inv.ID] = inv
		idx.invoiced[inv.OrderID] = true
	}
	return idx
}

// SortInstallments orders installments by insertion: created_at, then
// invoice, then installment number, then id. Storage scans return items in
// no particular order, so every view applies this before presenting them.
func SortInstallments(items []entities.Installment) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.InvoiceID != b.InvoiceID {
			return a.InvoiceID < b.InvoiceID
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.ID < b.ID
	})
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

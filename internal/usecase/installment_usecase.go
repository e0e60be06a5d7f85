package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/ledger"
	"erp_vendas/internal/domain/reporting"
	"erp_vendas/internal/logger"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrInstallmentNotFound = fmt.Errorf("installment %w", entities.ErrNotFound)
	ErrInstallmentPaid     = fmt.Errorf("installment %w", entities.ErrAlreadySettled)
)

// IInstallmentUseCase exposes the installment (vencimento) ledger.
//
// MarkPaid is the only transition users can trigger. There is no way back
// from Pago.
type IInstallmentUseCase interface {
	List(ctx context.Context) ([]entities.Installment, error)
	MarkPaid(ctx context.Context, id string, paidOn *time.Time) (entities.Installment, error)
	RecomputeForMaterial(ctx context.Context, materialID string) (int, error)
}

type InstallmentUseCase struct {
	repo      interfaces.IInstallmentRepository
	invoices  interfaces.IInvoiceRepository
	orders    interfaces.IOrderRepository
	materials interfaces.IMaterialRepository
	now       Clock
	log       zerolog.Logger
}

var (
	_ IInstallmentUseCase              = (*InstallmentUseCase)(nil)
	_ interfaces.ICommissionRecomputer = (*InstallmentUseCase)(nil)
)

func NewInstallmentUseCase(
	repo interfaces.IInstallmentRepository,
	invoices interfaces.IInvoiceRepository,
	orders interfaces.IOrderRepository,
	materials interfaces.IMaterialRepository,
	clock Clock,
) *InstallmentUseCase {
	return &InstallmentUseCase{
		repo:      repo,
		invoices:  invoices,
		orders:    orders,
		materials: materials,
		now:       orSystemClock(clock),
		log:       logger.WithComponent("installment.usecase"),
	}
}

// List returns every installment in insertion order with its effective
// status as of today.
func (u *InstallmentUseCase) List(ctx context.Context) ([]entities.Installment, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	reporting.SortInstallments(items)
	return ledger.WithEffectiveStatus(items, u.now()), nil
}

// MarkPaid settles an installment and freezes its commission at the current
// material rate. paidOn defaults to today. Concurrent calls for the same id
// are serialized by the store: exactly one succeeds, the others get
// ErrInstallmentPaid.
func (u *InstallmentUseCase) MarkPaid(ctx context.Context, id string, paidOn *time.Time) (entities.Installment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Installment{}, entities.NewValidationError("id", "required")
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Installment{}, err
	}
	if current.ID == "" {
		return entities.Installment{}, ErrInstallmentNotFound
	}
	if current.IsPaid() {
		return entities.Installment{}, ErrInstallmentPaid
	}

	rate, err := u.rateForInvoice(ctx, current.InvoiceID)
	if err != nil {
		return entities.Installment{}, err
	}
	frozen := ledger.ApplyCommission(current, rate)

	now := u.now()
	day := entities.DateOf(now)
	if paidOn != nil && !paidOn.IsZero() {
		day = entities.DateOf(*paidOn)
	}

	paid, err := u.repo.MarkPaid(ctx, id, day, commissionOf(frozen), now)
	if err != nil {
		u.log.Error().Err(err).Str("installment_id", id).Msg("mark paid failed")
		return entities.Installment{}, err
	}
	u.log.Info().
		Str("installment_id", id).
		Str("parcela", paid.Label()).
		Str("comissao", paid.Commission.StringFixed(2)).
		Str("data_pagamento", entities.FormatDate(day)).
		Msg("installment paid")
	return paid, nil
}

// RecomputeForMaterial rewrites the commission of every unpaid installment
// whose invoice's order references materialID. Paid rows are skipped by a
// storage condition, so a payment racing with the recompute keeps the
// commission it froze.
func (u *InstallmentUseCase) RecomputeForMaterial(ctx context.Context, materialID string) (int, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return 0, entities.NewValidationError("material_id", "required")
	}
	m, err := u.materials.GetByID(ctx, materialID)
	if err != nil {
		return 0, err
	}
	var rate *decimal.Decimal
	if m.ID != "" {
		r := m.CommissionRate
		rate = &r
	}

	orders, err := u.orders.ListByMaterial(ctx, materialID)
	if err != nil {
		return 0, err
	}

	now := u.now()
	updated := 0
	for _, o := range orders {
		invoices, err := u.invoices.ListByOrder(ctx, o.ID)
		if err != nil {
			return updated, err
		}
		for _, inv := range invoices {
			items, err := u.repo.ListByInvoice(ctx, inv.ID)
			if err != nil {
				return updated, err
			}
			for _, it := range items {
				if it.IsPaid() {
					continue
				}
				next := ledger.ApplyCommission(it, rate)
				if next.Commission.Equal(it.Commission) && next.CommissionRate.Equal(it.CommissionRate) &&
					next.CommissionRateUnknown == it.CommissionRateUnknown {
					continue
				}
				ok, err := u.repo.UpdateCommission(ctx, it.ID, commissionOf(next), now)
				if err != nil {
					return updated, err
				}
				if ok {
					updated++
				}
			}
		}
	}
	u.log.Info().Str("material_id", materialID).Int("orders", len(orders)).Int("updated", updated).Msg("commission recomputed")
	return updated, nil
}

func (u *InstallmentUseCase) rateForInvoice(ctx context.Context, invoiceID string) (*decimal.Decimal, error) {
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, nil
	}
	order, err := u.orders.GetByID(ctx, inv.OrderID)
	if err != nil {
		return nil, err
	}
	if order.MaterialID == "" {
		return nil, nil
	}
	m, err := u.materials.GetByID(ctx, order.MaterialID)
	if err != nil {
		return nil, err
	}
	return ledger.RateOf(order, map[string]entities.Material{m.ID: m}), nil
}

func commissionOf(it entities.Installment) interfaces.CommissionUpdate {
	return interfaces.CommissionUpdate{
		Amount:      it.Commission,
		Rate:        it.CommissionRate,
		RateUnknown: it.CommissionRateUnknown,
	}
}

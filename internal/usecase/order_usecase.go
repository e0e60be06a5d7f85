package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/logger"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound   = fmt.Errorf("order %w", entities.ErrNotFound)
	ErrOrderInvoiced   = fmt.Errorf("order already invoiced: %w", entities.ErrInvalidOrderState)
	ErrOrderStatusSet  = fmt.Errorf("FATURADO is only reached by issuing an invoice: %w", entities.ErrInvalidOrderState)
	ErrOrderTermsFixed = fmt.Errorf("material_id and valor_total of an invoiced order are fixed: %w", entities.ErrInvalidOrderState)
	ErrOrderReferenced = fmt.Errorf("order referenced by invoices: %w", entities.ErrConflict)
)

// IOrderUseCase exposes order (pedido) operations.
//
// Users move orders between PENDENTE and IMPLANTADO; FATURADO is set only by
// IInvoiceUseCase.Issue.
type IOrderUseCase interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	clients   interfaces.IClientRepository
	materials interfaces.IMaterialRepository
	invoices  interfaces.IInvoiceRepository
	now       Clock
	log       zerolog.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	clients interfaces.IClientRepository,
	materials interfaces.IMaterialRepository,
	invoices interfaces.IInvoiceRepository,
	clock Clock,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		clients:   clients,
		materials: materials,
		invoices:  invoices,
		now:       orSystemClock(clock),
		log:       logger.WithComponent("order.usecase"),
	}
}

func (u *OrderUseCase) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.Status == "" {
		o.Status = entities.OrderStatusPendente
	}
	if o.Status == entities.OrderStatusFaturado {
		return entities.Order{}, ErrOrderStatusSet
	}
	o, err := u.prepare(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.now()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.PurchaseOrderNo == "" {
		o.PurchaseOrderNo = "OC-" + now.Format("20060102150405")
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.log.Error().Err(err).Str("cliente_id", o.ClientID).Msg("create failed")
		return entities.Order{}, err
	}
	u.log.Info().
		Str("order_id", created.ID).
		Str("numero_oc", created.PurchaseOrderNo).
		Str("status", string(created.Status)).
		Msg("order created")
	return created, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, o entities.Order) (entities.Order, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status == "" {
		o.Status = current.Status
	}
	switch {
	case current.Status == entities.OrderStatusFaturado && o.Status != entities.OrderStatusFaturado:
		return entities.Order{}, ErrOrderInvoiced
	case current.Status != entities.OrderStatusFaturado && o.Status == entities.OrderStatusFaturado:
		return entities.Order{}, ErrOrderStatusSet
	}

	o, err = u.prepare(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	// Installment commissions of an invoiced order derive from its material.
	if current.Status == entities.OrderStatusFaturado &&
		(o.MaterialID != current.MaterialID || !o.TotalValue.Equal(current.TotalValue)) {
		return entities.Order{}, ErrOrderTermsFixed
	}
	o.ID = current.ID
	o.CreatedAt = current.CreatedAt
	o.UpdatedAt = u.now()
	if o.PurchaseOrderNo == "" {
		o.PurchaseOrderNo = current.PurchaseOrderNo
	}

	updated, err := u.repo.Update(ctx, o, current.Status)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", id).Msg("update failed")
		return entities.Order{}, err
	}
	if updated.Status != current.Status {
		u.log.Info().
			Str("order_id", id).
			Str("from", string(current.Status)).
			Str("to", string(updated.Status)).
			Msg("order status changed")
	}
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	invoices, err := u.invoices.ListByOrder(ctx, current.ID)
	if err != nil {
		return err
	}
	if len(invoices) > 0 {
		return ErrOrderReferenced
	}
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		u.log.Error().Err(err).Str("order_id", id).Msg("delete failed")
		return err
	}
	u.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, entities.NewValidationError("id", "required")
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns orders newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// prepare validates o against the registry and the catalog and fills the
// derived weight.
func (u *OrderUseCase) prepare(ctx context.Context, o entities.Order) (entities.Order, error) {
	if !o.Status.Valid() {
		return o, entities.NewValidationError("status", "must be one of PENDENTE, IMPLANTADO, FATURADO")
	}

	var err error
	if o.ClientID, err = requireText("cliente_id", o.ClientID); err != nil {
		return o, err
	}
	client, err := u.clients.GetByID(ctx, o.ClientID)
	if err != nil {
		return o, err
	}
	if client.ID == "" {
		return o, entities.NewValidationError("cliente_id", "unknown client")
	}

	o.MaterialID = strings.TrimSpace(o.MaterialID)
	o.ItemName = strings.TrimSpace(o.ItemName)
	var material entities.Material
	if o.MaterialID != "" {
		if material, err = u.materials.GetByID(ctx, o.MaterialID); err != nil {
			return o, err
		}
		if material.ID == "" {
			return o, entities.NewValidationError("material_id", "unknown material")
		}
		if o.ItemName == "" {
			o.ItemName = material.Description
		}
	} else if o.ItemName == "" {
		return o, entities.NewValidationError("item_nome", "required when no material is linked")
	}

	if o.Quantity < 0 {
		return o, entities.NewValidationError("quantidade", "must not be negative")
	}
	if err := requireNonNegative("peso_total", o.TotalWeight); err != nil {
		return o, err
	}
	if err := requireNonNegative("valor_total", o.TotalValue); err != nil {
		return o, err
	}
	if err := requireCents("valor_total", o.TotalValue); err != nil {
		return o, err
	}
	if o.TotalWeight.IsZero() && material.ID != "" {
		o.TotalWeight = material.UnitWeight.Mul(decimal.NewFromInt(int64(o.Quantity)))
	}
	o.PurchaseOrderNo = strings.TrimSpace(o.PurchaseOrderNo)
	o.FactoryNumber = strings.TrimSpace(o.FactoryNumber)
	return o, nil
}

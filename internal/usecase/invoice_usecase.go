package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/ledger"
	"erp_vendas/internal/domain/reporting"
	"erp_vendas/internal/logger"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound       = fmt.Errorf("invoice %w", entities.ErrNotFound)
	ErrInvoiceHasPaidParcels = fmt.Errorf("invoice has paid installments: %w", entities.ErrAlreadySettled)
)

// IssueInvoiceCommand carries the input of IInvoiceUseCase.Issue. DueDates,
// when non-empty, replaces the monthly schedule built from FirstDueDate.
// IssueDate defaults to today.
type IssueInvoiceCommand struct {
	OrderID          string
	InvoiceNumber    string
	TotalValue       decimal.Decimal
	InstallmentCount int
	FirstDueDate     time.Time
	DueDates         []time.Time
	IssueDate        time.Time
}

// CorrectInvoiceCommand re-plans the schedule of an invoice that has no paid
// installment yet.
type CorrectInvoiceCommand struct {
	TotalValue       decimal.Decimal
	InstallmentCount int
	FirstDueDate     time.Time
	DueDates         []time.Time
	IssueDate        time.Time
}

// IInvoiceUseCase issues invoices (notas fiscais) against orders and splits
// them into installments.
type IInvoiceUseCase interface {
	Issue(ctx context.Context, cmd IssueInvoiceCommand) (entities.Invoice, []entities.Installment, error)
	Correct(ctx context.Context, id string, cmd CorrectInvoiceCommand) (entities.Invoice, []entities.Installment, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	Installments(ctx context.Context, invoiceID string) ([]entities.Installment, error)
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	orders       interfaces.IOrderRepository
	materials    interfaces.IMaterialRepository
	installments interfaces.IInstallmentRepository
	now          Clock
	log          zerolog.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	orders interfaces.IOrderRepository,
	materials interfaces.IMaterialRepository,
	installments interfaces.IInstallmentRepository,
	clock Clock,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:         repo,
		orders:       orders,
		materials:    materials,
		installments: installments,
		now:          orSystemClock(clock),
		log:          logger.WithComponent("invoice.usecase"),
	}
}

// Issue turns an order into an invoice. The invoice, its installments and the
// order's move to FATURADO are written in one transaction; on any error
// nothing is written.
func (u *InvoiceUseCase) Issue(ctx context.Context, cmd IssueInvoiceCommand) (entities.Invoice, []entities.Installment, error) {
	number, err := requireText("numero_nf", cmd.InvoiceNumber)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	orderID, err := requireText("pedido_id", cmd.OrderID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	shares, err := ledger.BuildSchedule(cmd.TotalValue, cmd.InstallmentCount, cmd.FirstDueDate, cmd.DueDates)
	if err != nil {
		return entities.Invoice{}, nil, err
	}

	u.log.Info().Str("order_id", orderID).Str("numero_nf", number).Int("parcelas", len(shares)).Msg("issue start")

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	if order.ID == "" {
		return entities.Invoice{}, nil, ErrOrderNotFound
	}
	if !order.Status.Invoiceable() {
		u.log.Warn().Str("order_id", orderID).Str("status", string(order.Status)).Msg("order not invoiceable")
		return entities.Invoice{}, nil, fmt.Errorf("order %s is %s: %w", order.ID, order.Status, entities.ErrInvalidOrderState)
	}
	rate, err := u.rateFor(ctx, order)
	if err != nil {
		return entities.Invoice{}, nil, err
	}

	now := u.now()
	issueDate := entities.DateOf(now)
	if !cmd.IssueDate.IsZero() {
		issueDate = entities.DateOf(cmd.IssueDate)
	}
	inv := entities.Invoice{
		ID:               uuid.NewString(),
		OrderID:          order.ID,
		ClientID:         order.ClientID,
		Number:           number,
		TotalValue:       cmd.TotalValue,
		IssueDate:        issueDate,
		InstallmentCount: len(shares),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	items := buildInstallments(inv, shares, rate, now)

	if err := u.repo.Issue(ctx, inv, items, now); err != nil {
		u.log.Error().Err(err).Str("order_id", orderID).Str("numero_nf", number).Msg("issue failed")
		return entities.Invoice{}, nil, err
	}
	u.log.Info().
		Str("invoice_id", inv.ID).
		Str("numero_nf", number).
		Str("valor_total", inv.TotalValue.StringFixed(2)).
		Bool("comissao_taxa_desconhecida", rate == nil).
		Msg("invoice issued")
	return inv, ledger.WithEffectiveStatus(items, now), nil
}

// Correct regenerates every installment of an invoice. It is refused with
// ErrInvoiceHasPaidParcels once any installment is paid.
func (u *InvoiceUseCase) Correct(ctx context.Context, id string, cmd CorrectInvoiceCommand) (entities.Invoice, []entities.Installment, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	shares, err := ledger.BuildSchedule(cmd.TotalValue, cmd.InstallmentCount, cmd.FirstDueDate, cmd.DueDates)
	if err != nil {
		return entities.Invoice{}, nil, err
	}

	previous, err := u.installments.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	for _, it := range previous {
		if it.IsPaid() {
			return entities.Invoice{}, nil, ErrInvoiceHasPaidParcels
		}
	}

	order, err := u.orders.GetByID(ctx, inv.OrderID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	rate, err := u.rateFor(ctx, order)
	if err != nil {
		return entities.Invoice{}, nil, err
	}

	now := u.now()
	current := inv
	inv.TotalValue = cmd.TotalValue
	inv.InstallmentCount = len(shares)
	inv.UpdatedAt = now
	if !cmd.IssueDate.IsZero() {
		inv.IssueDate = entities.DateOf(cmd.IssueDate)
	}
	items := buildInstallments(inv, shares, rate, now)

	if err := u.repo.ReplaceInstallments(ctx, current, inv, previous, items); err != nil {
		u.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("correct failed")
		return entities.Invoice{}, nil, err
	}
	u.log.Info().
		Str("invoice_id", inv.ID).
		Int("removed", len(previous)).
		Int("parcelas", len(items)).
		Msg("invoice corrected")
	return inv, ledger.WithEffectiveStatus(items, now), nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, entities.NewValidationError("id", "required")
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// List returns invoices newest first.
func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (u *InvoiceUseCase) Installments(ctx context.Context, invoiceID string) ([]entities.Installment, error) {
	inv, err := u.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := u.installments.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	reporting.SortInstallments(items)
	return ledger.WithEffectiveStatus(items, u.now()), nil
}

// rateFor resolves the commission rate of order. A missing material yields a
// nil rate, never an error.
func (u *InvoiceUseCase) rateFor(ctx context.Context, order entities.Order) (*decimal.Decimal, error) {
	if order.MaterialID == "" {
		return nil, nil
	}
	m, err := u.materials.GetByID(ctx, order.MaterialID)
	if err != nil {
		return nil, err
	}
	return ledger.RateOf(order, map[string]entities.Material{m.ID: m}), nil
}

func buildInstallments(inv entities.Invoice, shares []ledger.Share, rate *decimal.Decimal, now time.Time) []entities.Installment {
	items := make([]entities.Installment, len(shares))
	for i, s := range shares {
		items[i] = ledger.ApplyCommission(entities.Installment{
			ID:                uuid.NewString(),
			InvoiceID:         inv.ID,
			Number:            s.Number,
			TotalInstallments: len(shares),
			Value:             s.Value,
			DueDate:           s.DueDate,
			Status:            entities.InstallmentStatusPendente,
			CreatedAt:         now,
			UpdatedAt:         now,
		}, rate)
	}
	return items
}

package usecase

import (
	"context"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/reporting"
	"erp_vendas/internal/logger"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// IReportUseCase computes the financial views. Every call reads the current
// collections; nothing is cached between calls.
type IReportUseCase interface {
	Dashboard(ctx context.Context) (reporting.DashboardStats, error)
	CommissionReport(ctx context.Context, f reporting.CommissionFilter) (reporting.CommissionReport, error)
	GoalProgress(ctx context.Context, year, month int) (reporting.MonthlyAttainment, error)
	ExportCommissions(ctx context.Context, f reporting.CommissionFilter) (content []byte, contentType string, err error)
}

type ReportUseCase struct {
	clients      interfaces.IClientRepository
	materials    interfaces.IMaterialRepository
	orders       interfaces.IOrderRepository
	invoices     interfaces.IInvoiceRepository
	installments interfaces.IInstallmentRepository
	goals        interfaces.IGoalRepository
	exporter     interfaces.ICommissionExporter
	now          Clock
	log          zerolog.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// ReportSources groups the collections a report reads.
type ReportSources struct {
	Clients      interfaces.IClientRepository
	Materials    interfaces.IMaterialRepository
	Orders       interfaces.IOrderRepository
	Invoices     interfaces.IInvoiceRepository
	Installments interfaces.IInstallmentRepository
	Goals        interfaces.IGoalRepository
}

func NewReportUseCase(src ReportSources, exporter interfaces.ICommissionExporter, clock Clock) *ReportUseCase {
	return &ReportUseCase{
		clients:      src.Clients,
		materials:    src.Materials,
		orders:       src.Orders,
		invoices:     src.Invoices,
		installments: src.Installments,
		goals:        src.Goals,
		exporter:     exporter,
		now:          orSystemClock(clock),
		log:          logger.WithComponent("report.usecase"),
	}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (reporting.DashboardStats, error) {
	s, err := u.snapshot(ctx)
	if err != nil {
		return reporting.DashboardStats{}, err
	}
	return reporting.Dashboard(s, u.now()), nil
}

func (u *ReportUseCase) CommissionReport(ctx context.Context, f reporting.CommissionFilter) (reporting.CommissionReport, error) {
	if err := validateFilter(f); err != nil {
		return reporting.CommissionReport{}, err
	}
	s, err := u.snapshot(ctx)
	if err != nil {
		return reporting.CommissionReport{}, err
	}
	return reporting.BuildCommissionReport(s, f, u.now()), nil
}

// GoalProgress lists every client's attainment for year/month. Zero year or
// month default to the current ones.
func (u *ReportUseCase) GoalProgress(ctx context.Context, year, month int) (reporting.MonthlyAttainment, error) {
	today := u.now()
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	if month < 1 || month > 12 {
		return reporting.MonthlyAttainment{}, entities.NewValidationError("mes", "must be between 1 and 12")
	}

	var clients []entities.Client
	var goals []entities.Goal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { clients, err = u.clients.List(gctx); return })
	g.Go(func() (err error) { goals, err = u.goals.List(gctx); return })
	if err := g.Wait(); err != nil {
		return reporting.MonthlyAttainment{}, err
	}
	return reporting.MonthAttainment(reporting.Snapshot{Clients: clients, Goals: goals}, year, month), nil
}

func (u *ReportUseCase) ExportCommissions(ctx context.Context, f reporting.CommissionFilter) ([]byte, string, error) {
	report, err := u.CommissionReport(ctx, f)
	if err != nil {
		return nil, "", err
	}
	content, contentType, err := u.exporter.Export(report)
	if err != nil {
		u.log.Error().Err(err).Int("rows", len(report.Rows)).Msg("export failed")
		return nil, "", err
	}
	u.log.Info().Int("rows", len(report.Rows)).Int("bytes", len(content)).Msg("commissions exported")
	return content, contentType, nil
}

// snapshot loads every collection concurrently. Any failure fails the whole
// report: partial figures are never returned.
func (u *ReportUseCase) snapshot(ctx context.Context) (reporting.Snapshot, error) {
	var s reporting.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { s.Clients, err = u.clients.List(gctx); return })
	g.Go(func() (err error) { s.Materials, err = u.materials.List(gctx); return })
	g.Go(func() (err error) { s.Orders, err = u.orders.List(gctx); return })
	g.Go(func() (err error) { s.Invoices, err = u.invoices.List(gctx); return })
	g.Go(func() (err error) { s.Installments, err = u.installments.List(gctx); return })
	g.Go(func() (err error) { s.Goals, err = u.goals.List(gctx); return })
	if err := g.Wait(); err != nil {
		u.log.Error().Err(err).Msg("snapshot load failed")
		return reporting.Snapshot{}, err
	}
	return s, nil
}

func validateFilter(f reporting.CommissionFilter) error {
	if f.Status != "" && f.Status != reporting.StatusAll && !f.Status.Valid() {
		return entities.NewValidationError("status", "must be one of Todos, Pendente, Atrasado, Pago")
	}
	if f.Month < 0 || f.Month > 12 {
		return entities.NewValidationError("mes", "must be between 0 and 12")
	}
	return nil
}

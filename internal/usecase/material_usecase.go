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
)

var (
	ErrMaterialNotFound   = fmt.Errorf("material %w", entities.ErrNotFound)
	ErrMaterialReferenced = fmt.Errorf("material referenced by orders: %w", entities.ErrConflict)
)

// IMaterialUseCase exposes the material catalog.
//
// Changing a material's commission rate rewrites the commission of every
// unpaid installment of orders of that material before Update returns.
type IMaterialUseCase interface {
	Create(ctx context.Context, material entities.Material) (entities.Material, error)
	Update(ctx context.Context, id string, material entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
}

type MaterialUseCase struct {
	repo       interfaces.IMaterialRepository
	orders     interfaces.IOrderRepository
	recomputer interfaces.ICommissionRecomputer
	now        Clock
	log        zerolog.Logger
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, orders interfaces.IOrderRepository, recomputer interfaces.ICommissionRecomputer, clock Clock) *MaterialUseCase {
	return &MaterialUseCase{
		repo:       repo,
		orders:     orders,
		recomputer: recomputer,
		now:        orSystemClock(clock),
		log:        logger.WithComponent("material.usecase"),
	}
}

func (u *MaterialUseCase) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	m, err := validateMaterial(m)
	if err != nil {
		return entities.Material{}, err
	}

	now := u.now()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		u.log.Error().Err(err).Str("codigo", m.Code).Msg("create failed")
		return entities.Material{}, err
	}
	u.log.Info().Str("material_id", created.ID).Str("codigo", created.Code).Msg("material created")
	return created, nil
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, m entities.Material) (entities.Material, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	m, err = validateMaterial(m)
	if err != nil {
		return entities.Material{}, err
	}

	m.ID = current.ID
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current, m)
	if err != nil {
		u.log.Error().Err(err).Str("material_id", id).Msg("update failed")
		return entities.Material{}, err
	}

	if !current.CommissionRate.Equal(updated.CommissionRate) {
		n, err := u.recomputer.RecomputeForMaterial(ctx, updated.ID)
		if err != nil {
			u.log.Error().Err(err).Str("material_id", id).Msg("commission recompute failed")
			u.restore(ctx, updated, current)
			return entities.Material{}, err
		}
		u.log.Info().
			Str("material_id", id).
			Str("from", current.CommissionRate.String()).
			Str("to", updated.CommissionRate.String()).
			Int("installments", n).
			Msg("commission rate changed")
	}
	return updated, nil
}

// restore puts the previous material back after a failed recompute so the
// rate change is still pending and a retried Update recomputes again.
func (u *MaterialUseCase) restore(ctx context.Context, updated, previous entities.Material) {
	if _, err := u.repo.Update(ctx, updated, previous); err != nil {
		u.log.Error().Err(err).Str("material_id", previous.ID).Msg("material rollback failed")
		return
	}
	u.log.Warn().
		Str("material_id", previous.ID).
		Str("comissao", previous.CommissionRate.String()).
		Msg("material restored after failed recompute")
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	orders, err := u.orders.ListByMaterial(ctx, current.ID)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return ErrMaterialReferenced
	}
	if err := u.repo.Delete(ctx, current); err != nil {
		u.log.Error().Err(err).Str("material_id", id).Msg("delete failed")
		return err
	}
	u.log.Info().Str("material_id", id).Msg("material deleted")
	return nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, entities.NewValidationError("id", "required")
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items, nil
}

func validateMaterial(m entities.Material) (entities.Material, error) {
	var err error
	if m.Code, err = requireText("codigo", m.Code); err != nil {
		return m, err
	}
	if m.Description, err = requireText("descricao", m.Description); err != nil {
		return m, err
	}
	m.Segment = entities.Segment(strings.ToUpper(strings.TrimSpace(string(m.Segment))))
	if !m.Segment.Valid() {
		return m, entities.NewValidationError("segmento", "must be one of CAIXA, CHAPA, CORTE VINCO, SIMPLEX")
	}
	if err := requireNonNegative("peso_unit", m.UnitWeight); err != nil {
		return m, err
	}
	if err := requireNonNegative("preco_unit", m.UnitPrice); err != nil {
		return m, err
	}
	if m.CommissionRate.IsNegative() || m.CommissionRate.GreaterThan(maxRate) {
		return m, entities.NewValidationError("comissao", "must be between 0 and 100")
	}
	return m, nil
}

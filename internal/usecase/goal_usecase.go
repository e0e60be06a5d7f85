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

var ErrGoalNotFound = fmt.Errorf("goal %w", entities.ErrNotFound)

// IGoalUseCase exposes monthly tonnage goals (metas).
type IGoalUseCase interface {
	Create(ctx context.Context, g entities.Goal) (entities.Goal, error)
	Update(ctx context.Context, id string, g entities.Goal) (entities.Goal, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Goal, error)
	List(ctx context.Context) ([]entities.Goal, error)
}

type GoalUseCase struct {
	repo    interfaces.IGoalRepository
	clients interfaces.IClientRepository
	now     Clock
	log     zerolog.Logger
}

var _ IGoalUseCase = (*GoalUseCase)(nil)

func NewGoalUseCase(repo interfaces.IGoalRepository, clients interfaces.IClientRepository, clock Clock) *GoalUseCase {
	return &GoalUseCase{
		repo:    repo,
		clients: clients,
		now:     orSystemClock(clock),
		log:     logger.WithComponent("goal.usecase"),
	}
}

func (u *GoalUseCase) Create(ctx context.Context, g entities.Goal) (entities.Goal, error) {
	g, err := u.validate(ctx, g)
	if err != nil {
		return entities.Goal{}, err
	}

	now := u.now()
	g.ID = uuid.NewString()
	g.CreatedAt = now
	g.UpdatedAt = now

	created, err := u.repo.Create(ctx, g)
	if err != nil {
		u.log.Error().Err(err).Str("cliente_id", g.ClientID).Int("ano", g.Year).Int("mes", g.Month).Msg("create failed")
		return entities.Goal{}, err
	}
	u.log.Info().Str("goal_id", created.ID).Str("cliente_id", created.ClientID).Msg("goal created")
	return created, nil
}

func (u *GoalUseCase) Update(ctx context.Context, id string, g entities.Goal) (entities.Goal, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Goal{}, err
	}
	g, err = u.validate(ctx, g)
	if err != nil {
		return entities.Goal{}, err
	}

	g.ID = current.ID
	g.CreatedAt = current.CreatedAt
	g.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current, g)
	if err != nil {
		u.log.Error().Err(err).Str("goal_id", id).Msg("update failed")
		return entities.Goal{}, err
	}
	return updated, nil
}

func (u *GoalUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, current); err != nil {
		u.log.Error().Err(err).Str("goal_id", id).Msg("delete failed")
		return err
	}
	return nil
}

func (u *GoalUseCase) GetByID(ctx context.Context, id string) (entities.Goal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Goal{}, entities.NewValidationError("id", "required")
	}
	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Goal{}, err
	}
	if g.ID == "" {
		return entities.Goal{}, ErrGoalNotFound
	}
	return g, nil
}

// List returns goals most recent month first.
func (u *GoalUseCase) List(ctx context.Context) ([]entities.Goal, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Year != items[j].Year {
			return items[i].Year > items[j].Year
		}
		if items[i].Month != items[j].Month {
			return items[i].Month > items[j].Month
		}
		return items[i].ClientID < items[j].ClientID
	})
	return items, nil
}

func (u *GoalUseCase) validate(ctx context.Context, g entities.Goal) (entities.Goal, error) {
	var err error
	if g.ClientID, err = requireText("cliente_id", g.ClientID); err != nil {
		return g, err
	}
	if g.Year < 2000 || g.Year > 2100 {
		return g, entities.NewValidationError("ano", "must be between 2000 and 2100")
	}
	if g.Month < 1 || g.Month > 12 {
		return g, entities.NewValidationError("mes", "must be between 1 and 12")
	}
	if err := requireNonNegative("valor_ton", g.TargetTons); err != nil {
		return g, err
	}
	client, err := u.clients.GetByID(ctx, g.ClientID)
	if err != nil {
		return g, err
	}
	if client.ID == "" {
		return g, entities.NewValidationError("cliente_id", "unknown client")
	}
	return g, nil
}

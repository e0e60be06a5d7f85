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
	ErrClientNotFound   = fmt.Errorf("client %w", entities.ErrNotFound)
	ErrClientReferenced = fmt.Errorf("client referenced by orders: %w", entities.ErrConflict)
)

// IClientUseCase exposes the client registry.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	orders interfaces.IOrderRepository
	now    Clock
	log    zerolog.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, orders interfaces.IOrderRepository, clock Clock) *ClientUseCase {
	return &ClientUseCase{
		repo:   repo,
		orders: orders,
		now:    orSystemClock(clock),
		log:    logger.WithComponent("client.usecase"),
	}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c, err := validateClient(c)
	if err != nil {
		return entities.Client{}, err
	}

	ref, err := u.repo.NextReference(ctx)
	if err != nil {
		return entities.Client{}, err
	}

	now := u.now()
	c.ID = uuid.NewString()
	c.Reference = ref
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error().Err(err).Str("cnpj", c.TaxID).Msg("create failed")
		return entities.Client{}, err
	}
	u.log.Info().Str("client_id", created.ID).Str("referencia", created.Reference).Msg("client created")
	return created, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	c, err = validateClient(c)
	if err != nil {
		return entities.Client{}, err
	}

	c.ID = current.ID
	c.Reference = current.Reference
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current, c)
	if err != nil {
		u.log.Error().Err(err).Str("client_id", id).Msg("update failed")
		return entities.Client{}, err
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	orders, err := u.orders.ListByClient(ctx, current.ID)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return ErrClientReferenced
	}
	if err := u.repo.Delete(ctx, current); err != nil {
		u.log.Error().Err(err).Str("client_id", id).Msg("delete failed")
		return err
	}
	u.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, entities.NewValidationError("id", "required")
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func validateClient(c entities.Client) (entities.Client, error) {
	var err error
	if c.Name, err = requireText("nome", c.Name); err != nil {
		return c, err
	}
	if c.TaxID, err = requireText("cnpj", c.TaxID); err != nil {
		return c, err
	}
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	if c.State != "" && len(c.State) != 2 {
		return c, entities.NewValidationError("estado", "must be a 2-letter code")
	}
	c.Email = strings.TrimSpace(c.Email)
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return c, entities.NewValidationError("email", "invalid address")
	}
	return c, nil
}

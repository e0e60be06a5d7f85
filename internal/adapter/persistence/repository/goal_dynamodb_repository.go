package repository

import (
	"context"
	"fmt"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type goalItem struct {
	ID         string `dynamodbav:"id"`
	ClientID   string `dynamodbav:"cliente_id"`
	Year       int    `dynamodbav:"ano"`
	Month      int    `dynamodbav:"mes"`
	TargetTons string `dynamodbav:"valor_ton"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// GoalDynamoRepository persists Goal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type GoalDynamoRepository struct {
	store *Store
	table string
}

var _ interfaces.IGoalRepository = (*GoalDynamoRepository)(nil)

func NewGoalDynamoRepository(store *Store) *GoalDynamoRepository {
	return &GoalDynamoRepository{store: store, table: store.tables.Goals}
}

func (r *GoalDynamoRepository) Create(ctx context.Context, g entities.Goal) (entities.Goal, error) {
	av, err := attributevalue.MarshalMap(toGoalItem(g))
	if err != nil {
		return entities.Goal{}, err
	}
	err = r.store.uniqueWrite(ctx, "create goal", r.store.putNew(r.table, av),
		"", goalKey(g), g.ID,
		taken("goal id", g.ID), goalTaken(g))
	if err != nil {
		return entities.Goal{}, err
	}
	return g, nil
}

func (r *GoalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Goal, error) {
	var it goalItem
	ok, err := r.store.get(ctx, r.table, id, &it)
	if err != nil || !ok {
		return entities.Goal{}, err
	}
	return fromGoalItem(it), nil
}

func (r *GoalDynamoRepository) List(ctx context.Context) ([]entities.Goal, error) {
	var items []goalItem
	if err := r.store.scanAll(ctx, r.table, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Goal, 0, len(items))
	for _, it := range items {
		out = append(out, fromGoalItem(it))
	}
	return out, nil
}

func (r *GoalDynamoRepository) Update(ctx context.Context, previous, updated entities.Goal) (entities.Goal, error) {
	av, err := attributevalue.MarshalMap(toGoalItem(updated))
	if err != nil {
		return entities.Goal{}, err
	}
	err = r.store.uniqueWrite(ctx, "update goal", r.store.putExisting(r.table, av),
		goalKey(previous), goalKey(updated), updated.ID,
		notFound("goal", updated.ID), goalTaken(updated))
	if err != nil {
		return entities.Goal{}, err
	}
	return updated, nil
}

func (r *GoalDynamoRepository) Delete(ctx context.Context, g entities.Goal) error {
	return r.store.uniqueWrite(ctx, "delete goal", r.store.deleteItem(r.table, g.ID),
		goalKey(g), "", g.ID, nil, nil)
}

func goalKey(g entities.Goal) string {
	return fmt.Sprintf("meta#%s#%04d#%02d", g.ClientID, g.Year, g.Month)
}

func goalTaken(g entities.Goal) error {
	return fmt.Errorf("%w: client %s already has a goal for %04d-%02d", entities.ErrConflict, g.ClientID, g.Year, g.Month)
}

func toGoalItem(g entities.Goal) goalItem {
	return goalItem{
		ID:         g.ID,
		ClientID:   g.ClientID,
		Year:       g.Year,
		Month:      g.Month,
		TargetTons: formatDecimal(g.TargetTons),
		CreatedAt:  formatTime(g.CreatedAt),
		UpdatedAt:  formatTime(g.UpdatedAt),
	}
}

func fromGoalItem(it goalItem) entities.Goal {
	return entities.Goal{
		ID:         it.ID,
		ClientID:   it.ClientID,
		Year:       it.Year,
		Month:      it.Month,
		TargetTons: parseDecimal(it.TargetTons),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}

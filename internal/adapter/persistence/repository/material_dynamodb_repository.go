package repository

import (
	"context"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type materialItem struct {
	ID             string `dynamodbav:"id"`
	Code           string `dynamodbav:"codigo"`
	Description    string `dynamodbav:"descricao"`
	Segment        string `dynamodbav:"segmento"`
	UnitWeight     string `dynamodbav:"peso_unit"`
	UnitPrice      string `dynamodbav:"preco_unit"`
	CommissionRate string `dynamodbav:"comissao"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists Material entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type MaterialDynamoRepository struct {
	store *Store
	table string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(store *Store) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{store: store, table: store.tables.Materials}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
	}
	err = r.store.uniqueWrite(ctx, "create material", r.store.putNew(r.table, av),
		"", materialCodeKey(m.Code), m.ID,
		taken("material id", m.ID), taken("codigo", m.Code))
	if err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	var it materialItem
	ok, err := r.store.get(ctx, r.table, id, &it)
	if err != nil || !ok {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	var items []materialItem
	if err := r.store.scanAll(ctx, r.table, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Material, 0, len(items))
	for _, it := range items {
		out = append(out, fromMaterialItem(it))
	}
	return out, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, previous, updated entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(updated))
	if err != nil {
		return entities.Material{}, err
	}
	err = r.store.uniqueWrite(ctx, "update material", r.store.putExisting(r.table, av),
		materialCodeKey(previous.Code), materialCodeKey(updated.Code), updated.ID,
		notFound("material", updated.ID), taken("codigo", updated.Code))
	if err != nil {
		return entities.Material{}, err
	}
	return updated, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, m entities.Material) error {
	return r.store.uniqueWrite(ctx, "delete material", r.store.deleteItem(r.table, m.ID),
		materialCodeKey(m.Code), "", m.ID, nil, nil)
}

func materialCodeKey(code string) string {
	return "material#" + code
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:             m.ID,
		Code:           m.Code,
		Description:    m.Description,
		Segment:        string(m.Segment),
		UnitWeight:     formatDecimal(m.UnitWeight),
		UnitPrice:      formatDecimal(m.UnitPrice),
		CommissionRate: formatDecimal(m.CommissionRate),
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	return entities.Material{
		ID:             it.ID,
		Code:           it.Code,
		Description:    it.Description,
		Segment:        entities.Segment(it.Segment),
		UnitWeight:     parseDecimal(it.UnitWeight),
		UnitPrice:      parseDecimal(it.UnitPrice),
		CommissionRate: parseDecimal(it.CommissionRate),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

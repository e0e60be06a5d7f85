package repository

import (
	"context"
	"errors"
	"fmt"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// material_id is omitted for free-text orders so they stay out of the
// material_id-index (GSI keys cannot be empty strings).
type orderItem struct {
	ID               string `dynamodbav:"id"`
	ClientID         string `dynamodbav:"cliente_id"`
	MaterialID       string `dynamodbav:"material_id,omitempty"`
	ItemName         string `dynamodbav:"item_nome"`
	Quantity         int    `dynamodbav:"quantidade"`
	TotalWeight      string `dynamodbav:"peso_total"`
	TotalValue       string `dynamodbav:"valor_total"`
	DeliveryDate     string `dynamodbav:"data_entrega,omitempty"`
	PurchaseOrderNo  string `dynamodbav:"numero_oc"`
	FactoryNumber    string `dynamodbav:"numero_fabrica,omitempty"`
	PaymentCondition string `dynamodbav:"condicao_pagamento,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: material_id-index (PK: material_id)
//   - GSI: cliente_id-index (PK: cliente_id)
type OrderDynamoRepository struct {
	store *Store
	table string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(store *Store) *OrderDynamoRepository {
	return &OrderDynamoRepository{store: store, table: store.tables.Orders}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	ctx, cancel := r.store.bounded(ctx)
	defer cancel()
	_, err = r.store.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, taken("order id", o.ID)
		}
		return entities.Order{}, entities.StorageError("PutItem "+r.table, err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	ok, err := r.store.get(ctx, r.table, id, &it)
	if err != nil || !ok {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var items []orderItem
	if err := r.store.scanAll(ctx, r.table, &items); err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

func (r *OrderDynamoRepository) ListByMaterial(ctx context.Context, materialID string) ([]entities.Order, error) {
	var items []orderItem
	if err := r.store.queryIndex(ctx, r.table, ordersMaterialIndex, "material_id", materialID, &items); err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

func (r *OrderDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Order, error) {
	var items []orderItem
	if err := r.store.queryIndex(ctx, r.table, ordersClientIndex, "cliente_id", clientID, &items); err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

// Update replaces the order only while its stored status is still expected,
// so a concurrent invoice issue is never overwritten.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	ctx, cancel := r.store.bounded(ctx)
	defer cancel()
	_, err = r.store.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(r.table),
		Item:                                av,
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames:            map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues:           map[string]types.AttributeValue{":expected": stringValue(string(expected))},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Order{}, notFound("order", o.ID)
			}
			return entities.Order{}, fmt.Errorf("order %s changed concurrently: %w", o.ID, entities.ErrInvalidOrderState)
		}
		return entities.Order{}, entities.StorageError("PutItem "+r.table, err)
	}
	return o, nil
}

// Delete refuses orders that were invoiced in the meantime.
func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.store.bounded(ctx)
	defer cancel()
	_, err := r.store.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.table),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_not_exists(#id) OR #status <> :faturado"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":faturado": stringValue(string(entities.OrderStatusFaturado))},
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("order %s already invoiced: %w", id, entities.ErrInvalidOrderState)
		}
		return entities.StorageError("DeleteItem "+r.table, err)
	}
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:               o.ID,
		ClientID:         o.ClientID,
		MaterialID:       o.MaterialID,
		ItemName:         o.ItemName,
		Quantity:         o.Quantity,
		TotalWeight:      formatDecimal(o.TotalWeight),
		TotalValue:       formatDecimal(o.TotalValue),
		DeliveryDate:     entities.FormatDate(o.DeliveryDate),
		PurchaseOrderNo:  o.PurchaseOrderNo,
		FactoryNumber:    o.FactoryNumber,
		PaymentCondition: o.PaymentCondition,
		Status:           string(o.Status),
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:               it.ID,
		ClientID:         it.ClientID,
		MaterialID:       it.MaterialID,
		ItemName:         it.ItemName,
		Quantity:         it.Quantity,
		TotalWeight:      parseDecimal(it.TotalWeight),
		TotalValue:       parseDecimal(it.TotalValue),
		DeliveryDate:     parseDate(it.DeliveryDate),
		PurchaseOrderNo:  it.PurchaseOrderNo,
		FactoryNumber:    it.FactoryNumber,
		PaymentCondition: it.PaymentCondition,
		Status:           entities.OrderStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromOrderItems(items []orderItem) []entities.Order {
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out
}

package repository

import (
	"context"
	"fmt"
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the part of *dynamodb.Client the repositories use.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Tables names every table the service uses.
//
//   - clientes, materiais, pedidos, notas_fiscais, vencimentos, metas: PK id
//   - unique_keys: PK key; reserves cnpj, material code, invoice number and
//     (client, year, month) of goals
//   - counters: PK name; sequential references
type Tables struct {
	Clients      string
	Materials    string
	Orders       string
	Invoices     string
	Installments string
	Goals        string
	UniqueKeys   string
	Counters     string
}

// TablesFromEnv reads the table names, falling back to the defaults.
func TablesFromEnv() Tables {
	return Tables{
		Clients:      getenvDefault("CLIENTS_TABLE", "clientes"),
		Materials:    getenvDefault("MATERIALS_TABLE", "materiais"),
		Orders:       getenvDefault("ORDERS_TABLE", "pedidos"),
		Invoices:     getenvDefault("INVOICES_TABLE", "notas_fiscais"),
		Installments: getenvDefault("INSTALLMENTS_TABLE", "vencimentos"),
		Goals:        getenvDefault("GOALS_TABLE", "metas"),
		UniqueKeys:   getenvDefault("UNIQUE_KEYS_TABLE", "unique_keys"),
		Counters:     getenvDefault("COUNTERS_TABLE", "counters"),
	}
}

const (
	ordersMaterialIndex      = "material_id-index"
	ordersClientIndex        = "cliente_id-index"
	invoicesOrderIndex       = "pedido_id-index"
	installmentsInvoiceIndex = "nota_fiscal_id-index"
)

// Store carries the client, the table names and the per-call timeout shared
// by every repository.
type Store struct {
	ddb     DynamoDBAPI
	tables  Tables
	timeout time.Duration
}

func NewStore(ddb DynamoDBAPI, tables Tables, timeout time.Duration) *Store {
	return &Store{ddb: ddb, tables: tables, timeout: timeout}
}

func (s *Store) Tables() Tables {
	return s.tables
}

func (s *Store) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// get loads the item with the given id into out. It reports false when the
// item does not exist.
func (s *Store) get(ctx context.Context, table, id string, out any) (bool, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, entities.StorageError("GetItem "+table, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, entities.StorageError("decode "+table, err)
	}
	return true, nil
}

// scanAll reads every page of table into out, a pointer to a slice.
func (s *Store) scanAll(ctx context.Context, table string, out any) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	var items []map[string]types.AttributeValue
	var start map[string]types.AttributeValue
	for {
		res, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return entities.StorageError("Scan "+table, err)
		}
		items = append(items, res.Items...)
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		start = res.LastEvaluatedKey
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return entities.StorageError("decode "+table, err)
	}
	return nil
}

// queryIndex reads every item of a GSI whose hash key attr equals value.
func (s *Store) queryIndex(ctx context.Context, table, index, attr, value string, out any) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	var items []map[string]types.AttributeValue
	var start map[string]types.AttributeValue
	for {
		res, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String("#k = :v"),
			ExpressionAttributeNames:  map[string]string{"#k": attr},
			ExpressionAttributeValues: map[string]types.AttributeValue{":v": stringValue(value)},
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return entities.StorageError("Query "+index, err)
		}
		items = append(items, res.Items...)
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		start = res.LastEvaluatedKey
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return entities.StorageError("decode "+table, err)
	}
	return nil
}

func (s *Store) transact(ctx context.Context, items []types.TransactWriteItem) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func (s *Store) deleteByID(ctx context.Context, table, id string) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.StorageError("DeleteItem "+table, err)
	}
	return nil
}

// nextSequence atomically increments the named counter and returns the new
// value.
func (s *Store) nextSequence(ctx context.Context, name string) (int64, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	res, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tables.Counters),
		Key:                       map[string]types.AttributeValue{"name": stringValue(name)},
		UpdateExpression:          aws.String("SET #v = if_not_exists(#v, :zero) + :one"),
		ExpressionAttributeNames:  map[string]string{"#v": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":zero": &types.AttributeValueMemberN{Value: "0"}, ":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, entities.StorageError("UpdateItem "+s.tables.Counters, err)
	}
	var out struct {
		Value int64 `dynamodbav:"value"`
	}
	if err := attributevalue.UnmarshalMap(res.Attributes, &out); err != nil {
		return 0, entities.StorageError("decode "+s.tables.Counters, err)
	}
	return out.Value, nil
}

type uniqueKeyItem struct {
	Key     string `dynamodbav:"key"`
	OwnerID string `dynamodbav:"owner_id"`
}

// reserve claims key for owner inside a transaction; the condition fails when
// another owner already holds it.
func (s *Store) reserve(key, owner string) types.TransactWriteItem {
	av, _ := attributevalue.MarshalMap(uniqueKeyItem{Key: key, OwnerID: owner})
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(s.tables.UniqueKeys),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#k)"),
		ExpressionAttributeNames: map[string]string{"#k": "key"},
	}}
}

func (s *Store) release(key string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(s.tables.UniqueKeys),
		Key:       map[string]types.AttributeValue{"key": stringValue(key)},
	}}
}

func (s *Store) putNew(table string, item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}
}

func (s *Store) putExisting(table string, item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}
}

func (s *Store) deleteItem(table, id string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(table),
		Key:       idKey(id),
	}}
}

// uniqueWrite runs the common create/update/delete shape of an entity that
// owns one unique key: the entity write first, then the key release and
// reservation. A failed entity condition maps to missing, a failed
// reservation to conflict.
func (s *Store) uniqueWrite(ctx context.Context, op string, entity types.TransactWriteItem, oldKey, newKey, owner string, missing, conflict error) error {
	items := []types.TransactWriteItem{entity}
	if oldKey != newKey && oldKey != "" {
		items = append(items, s.release(oldKey))
	}
	reservedAt := -1
	if oldKey != newKey && newKey != "" {
		reservedAt = len(items)
		items = append(items, s.reserve(newKey, owner))
	}

	err := s.transact(ctx, items)
	if err == nil {
		return nil
	}
	if i, ok := canceledAt(err); ok {
		switch i {
		case 0:
			return missing
		case reservedAt:
			return conflict
		}
	}
	return entities.StorageError(op, err)
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, entities.ErrNotFound)
}

func taken(what, value string) error {
	return fmt.Errorf("%w: %s %q already in use", entities.ErrConflict, what, value)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// TableAdmin is the part of *dynamodb.Client used to provision tables.
type TableAdmin interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAdmin = (*dynamodb.Client)(nil)

const tableReadyTimeout = 2 * time.Minute

// Schema returns the definition of every table, pay-per-request, with the
// secondary indexes the repositories query.
func Schema(t Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(t.Clients, "id"),
		hashTable(t.Materials, "id"),
		hashTable(t.Orders, "id", ordersMaterialIndex, "material_id", ordersClientIndex, "cliente_id"),
		hashTable(t.Invoices, "id", invoicesOrderIndex, "pedido_id"),
		hashTable(t.Installments, "id", installmentsInvoiceIndex, "nota_fiscal_id"),
		hashTable(t.Goals, "id"),
		hashTable(t.UniqueKeys, "key"),
		hashTable(t.Counters, "name"),
	}
}

// hashTable builds a table keyed by a string hash key. indexes is a list of
// (index name, string attribute) pairs.
func hashTable(name, key string, indexes ...string) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	}
	for i := 0; i+1 < len(indexes); i += 2 {
		index, attr := indexes[i], indexes[i+1]
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return in
}

// EnsureTables creates the missing tables and waits until each is active.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, admin TableAdmin, t Tables, log zerolog.Logger) error {
	waiter := dynamodb.NewTableExistsWaiter(admin)
	for _, in := range Schema(t) {
		name := aws.ToString(in.TableName)
		_, err := admin.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			log.Info().Str("table", name).Msg("table already exists")
			continue
		case err != nil:
			return fmt.Errorf("create table %s: %w", name, err)
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableReadyTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.Info().Str("table", name).Msg("table created")
	}
	return nil
}

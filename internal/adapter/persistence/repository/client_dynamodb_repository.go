package repository

import (
	"context"
	"fmt"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const clientReferenceCounter = "clientes"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Reference string `dynamodbav:"referencia"`
	Name      string `dynamodbav:"nome"`
	TaxID     string `dynamodbav:"cnpj"`
	Address   string `dynamodbav:"endereco,omitempty"`
	City      string `dynamodbav:"cidade,omitempty"`
	State     string `dynamodbav:"estado,omitempty"`
	Buyer     string `dynamodbav:"comprador,omitempty"`
	Phone     string `dynamodbav:"telefone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The cnpj is reserved in the unique_keys table in the same transaction as
// the client write.
type ClientDynamoRepository struct {
	store *Store
	table string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(store *Store) *ClientDynamoRepository {
	return &ClientDynamoRepository{store: store, table: store.tables.Clients}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}
	err = r.store.uniqueWrite(ctx, "create client", r.store.putNew(r.table, av),
		"", taxIDKey(c.TaxID), c.ID,
		taken("client id", c.ID), taken("cnpj", c.TaxID))
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	ok, err := r.store.get(ctx, r.table, id, &it)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	var items []clientItem
	if err := r.store.scanAll(ctx, r.table, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, previous, updated entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(updated))
	if err != nil {
		return entities.Client{}, err
	}
	err = r.store.uniqueWrite(ctx, "update client", r.store.putExisting(r.table, av),
		taxIDKey(previous.TaxID), taxIDKey(updated.TaxID), updated.ID,
		notFound("client", updated.ID), taken("cnpj", updated.TaxID))
	if err != nil {
		return entities.Client{}, err
	}
	return updated, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, c entities.Client) error {
	return r.store.uniqueWrite(ctx, "delete client", r.store.deleteItem(r.table, c.ID),
		taxIDKey(c.TaxID), "", c.ID, nil, nil)
}

// NextReference hands out CLI-0001, CLI-0002, ... from an atomic counter.
func (r *ClientDynamoRepository) NextReference(ctx context.Context) (string, error) {
	n, err := r.store.nextSequence(ctx, clientReferenceCounter)
	if err != nil {
		return "", err
	}
	return formatClientReference(n), nil
}

func formatClientReference(n int64) string {
	return fmt.Sprintf("CLI-%04d", n)
}

func taxIDKey(taxID string) string {
	return "cnpj#" + taxID
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Reference: c.Reference,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Buyer:     c.Buyer,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		Reference: it.Reference,
		Name:      it.Name,
		TaxID:     it.TaxID,
		Address:   it.Address,
		City:      it.City,
		State:     it.State,
		Buyer:     it.Buyer,
		Phone:     it.Phone,
		Email:     it.Email,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

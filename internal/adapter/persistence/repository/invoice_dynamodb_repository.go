package repository

import (
	"context"
	"fmt"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type invoiceItem struct {
	ID               string `dynamodbav:"id"`
	OrderID          string `dynamodbav:"pedido_id"`
	ClientID         string `dynamodbav:"cliente_id"`
	Number           string `dynamodbav:"numero_nf"`
	TotalValue       string `dynamodbav:"valor_total"`
	IssueDate        string `dynamodbav:"data_emissao"`
	InstallmentCount int    `dynamodbav:"numero_parcelas"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB and owns the
// transactions that create or replace their installments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pedido_id-index (PK: pedido_id)
type InvoiceDynamoRepository struct {
	store *Store
	table string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(store *Store) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{store: store, table: store.tables.Invoices}
}

// Positions of the fixed items of the issue transaction.
const (
	issueInvoiceAt = iota
	issueNumberAt
	issueOrderAt
)

// Issue writes the invoice, reserves its number, moves the order to FATURADO
// and writes every installment as one transaction.
func (r *InvoiceDynamoRepository) Issue(ctx context.Context, inv entities.Invoice, items []entities.Installment, now time.Time) error {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return err
	}

	tx := make([]types.TransactWriteItem, 0, 3+len(items))
	tx = append(tx,
		r.store.putNew(r.table, av),
		r.store.reserve(invoiceNumberKey(inv.Number), inv.ID),
		r.invoiceOrder(inv.OrderID, now),
	)
	for _, it := range items {
		iav, err := attributevalue.MarshalMap(toInstallmentItem(it))
		if err != nil {
			return err
		}
		tx = append(tx, r.store.putNew(r.store.tables.Installments, iav))
	}

	err = r.store.transact(ctx, tx)
	if err == nil {
		return nil
	}
	if i, ok := canceledAt(err); ok {
		switch i {
		case issueNumberAt:
			return fmt.Errorf("numero_nf %q: %w", inv.Number, entities.ErrDuplicateInvoiceNumber)
		case issueOrderAt:
			return fmt.Errorf("order %s is no longer invoiceable: %w", inv.OrderID, entities.ErrInvalidOrderState)
		default:
			return taken("invoice id", inv.ID)
		}
	}
	return entities.StorageError("TransactWriteItems issue invoice", err)
}

func (r *InvoiceDynamoRepository) invoiceOrder(orderID string, now time.Time) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.store.tables.Orders),
		Key:                 idKey(orderID),
		UpdateExpression:    aws.String("SET #status = :faturado, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pendente, :implantado)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":faturado":   stringValue(string(entities.OrderStatusFaturado)),
			":pendente":   stringValue(string(entities.OrderStatusPendente)),
			":implantado": stringValue(string(entities.OrderStatusImplantado)),
			":now":        stringValue(formatTime(now)),
		},
	}}
}

// ReplaceInstallments rewrites the invoice and swaps its installments in one
// transaction. The invoice write only applies while the stored invoice still
// has current.UpdatedAt, so of two concurrent corrections one fails with
// entities.ErrConflict. Deleting a previous installment is conditional on it
// not being Pago.
func (r *InvoiceDynamoRepository) ReplaceInstallments(ctx context.Context, current, inv entities.Invoice, previous, items []entities.Installment) error {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return err
	}

	installments := r.store.tables.Installments
	tx := make([]types.TransactWriteItem, 0, 1+len(previous)+len(items))
	tx = append(tx, r.putUnchangedSince(av, current.UpdatedAt))
	for _, it := range previous {
		tx = append(tx, types.TransactWriteItem{Delete: &types.Delete{
			TableName:                 aws.String(installments),
			Key:                       idKey(it.ID),
			ConditionExpression:       aws.String("attribute_not_exists(#id) OR #status <> :pago"),
			ExpressionAttributeNames:  map[string]string{"#id": "id", "#status": "status"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":pago": stringValue(string(entities.InstallmentStatusPago))},
		}})
	}
	for _, it := range items {
		iav, err := attributevalue.MarshalMap(toInstallmentItem(it))
		if err != nil {
			return err
		}
		tx = append(tx, r.store.putNew(installments, iav))
	}

	err = r.store.transact(ctx, tx)
	if err == nil {
		return nil
	}
	if i, reason, ok := cancellation(err); ok {
		switch {
		case i == 0 && len(reason.Item) == 0:
			return notFound("invoice", inv.ID)
		case i == 0:
			return fmt.Errorf("invoice %s was changed meanwhile: %w", inv.ID, entities.ErrConflict)
		case i <= len(previous):
			return fmt.Errorf("installment %s was paid meanwhile: %w", previous[i-1].ID, entities.ErrAlreadySettled)
		default:
			return taken("installment id", items[i-1-len(previous)].ID)
		}
	}
	return entities.StorageError("TransactWriteItems replace installments", err)
}

func (r *InvoiceDynamoRepository) putUnchangedSince(item map[string]types.AttributeValue, updatedAt time.Time) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                           aws.String(r.table),
		Item:                                item,
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #updated_at = :read_at"),
		ExpressionAttributeNames:            map[string]string{"#id": "id", "#updated_at": "updated_at"},
		ExpressionAttributeValues:           map[string]types.AttributeValue{":read_at": stringValue(formatTime(updatedAt))},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var it invoiceItem
	ok, err := r.store.get(ctx, r.table, id, &it)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	var items []invoiceItem
	if err := r.store.scanAll(ctx, r.table, &items); err != nil {
		return nil, err
	}
	return fromInvoiceItems(items), nil
}

func (r *InvoiceDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.Invoice, error) {
	var items []invoiceItem
	if err := r.store.queryIndex(ctx, r.table, invoicesOrderIndex, "pedido_id", orderID, &items); err != nil {
		return nil, err
	}
	return fromInvoiceItems(items), nil
}

func invoiceNumberKey(number string) string {
	return "numero_nf#" + number
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:               inv.ID,
		OrderID:          inv.OrderID,
		ClientID:         inv.ClientID,
		Number:           inv.Number,
		TotalValue:       formatDecimal(inv.TotalValue),
		IssueDate:        entities.FormatDate(inv.IssueDate),
		InstallmentCount: inv.InstallmentCount,
		CreatedAt:        formatTime(inv.CreatedAt),
		UpdatedAt:        formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:               it.ID,
		OrderID:          it.OrderID,
		ClientID:         it.ClientID,
		Number:           it.Number,
		TotalValue:       parseDecimal(it.TotalValue),
		IssueDate:        parseDate(it.IssueDate),
		InstallmentCount: it.InstallmentCount,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromInvoiceItems(items []invoiceItem) []entities.Invoice {
	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	return out
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type installmentItem struct {
	ID                    string `dynamodbav:"id"`
	InvoiceID             string `dynamodbav:"nota_fiscal_id"`
	Number                int    `dynamodbav:"parcela"`
	TotalInstallments     int    `dynamodbav:"total_parcelas"`
	Value                 string `dynamodbav:"valor"`
	DueDate               string `dynamodbav:"data_vencimento"`
	Status                string `dynamodbav:"status"`
	PaymentDate           string `dynamodbav:"data_pagamento,omitempty"`
	Commission            string `dynamodbav:"comissao_calculada"`
	CommissionRate        string `dynamodbav:"porcentagem_comissao"`
	CommissionRateUnknown bool   `dynamodbav:"comissao_taxa_desconhecida"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// InstallmentDynamoRepository persists Installment entities in DynamoDB.
// Installments are created and deleted by InvoiceDynamoRepository
// transactions; this repository reads them and applies the two unpaid-only
// writes.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: nota_fiscal_id-index (PK: nota_fiscal_id)
type InstallmentDynamoRepository struct {
	store *Store
	table string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(store *Store) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{store: store, table: store.tables.Installments}
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	var it installmentItem
	ok, err := r.store.get(ctx, r.table, id, &it)
	if err != nil || !ok {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) List(ctx context.Context) ([]entities.Installment, error) {
	var items []installmentItem
	if err := r.store.scanAll(ctx, r.table, &items); err != nil {
		return nil, err
	}
	return fromInstallmentItems(items), nil
}

func (r *InstallmentDynamoRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]entities.Installment, error) {
	var items []installmentItem
	if err := r.store.queryIndex(ctx, r.table, installmentsInvoiceIndex, "nota_fiscal_id", invoiceID, &items); err != nil {
		return nil, err
	}
	return fromInstallmentItems(items), nil
}

// MarkPaid settles the installment and freezes its commission. The write is
// conditional on the stored status not being Pago, which serializes
// concurrent calls: exactly one wins.
func (r *InstallmentDynamoRepository) MarkPaid(ctx context.Context, id string, paidOn time.Time, c interfaces.CommissionUpdate, now time.Time) (entities.Installment, error) {
	expr, names, values := commissionSet(c, now)
	expr += ", #status = :pago, #data_pagamento = :paid_on"
	names["#status"] = "status"
	names["#data_pagamento"] = "data_pagamento"
	values[":pago"] = stringValue(string(entities.InstallmentStatusPago))
	values[":paid_on"] = stringValue(entities.FormatDate(paidOn))

	ctx, cancel := r.store.bounded(ctx)
	defer cancel()
	out, err := r.store.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.table),
		Key:                                 idKey(id),
		UpdateExpression:                    aws.String(expr),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status <> :pago"),
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Installment{}, notFound("installment", id)
			}
			return entities.Installment{}, fmt.Errorf("installment %s: %w", id, entities.ErrAlreadySettled)
		}
		return entities.Installment{}, entities.StorageError("UpdateItem "+r.table, err)
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Installment{}, entities.StorageError("decode "+r.table, err)
	}
	return fromInstallmentItem(it), nil
}

// UpdateCommission rewrites the commission of an unpaid installment. It
// reports false when the installment is Pago or gone.
func (r *InstallmentDynamoRepository) UpdateCommission(ctx context.Context, id string, c interfaces.CommissionUpdate, now time.Time) (bool, error) {
	expr, names, values := commissionSet(c, now)
	names["#status"] = "status"
	values[":pago"] = stringValue(string(entities.InstallmentStatusPago))

	ctx, cancel := r.store.bounded(ctx)
	defer cancel()
	_, err := r.store.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       idKey(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status <> :pago"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, entities.StorageError("UpdateItem "+r.table, err)
	}
	return true, nil
}

func commissionSet(c interfaces.CommissionUpdate, now time.Time) (string, map[string]string, map[string]types.AttributeValue) {
	expr := "SET #comissao = :comissao, #taxa = :taxa, #desconhecida = :desconhecida, #updated_at = :updated_at"
	names := map[string]string{
		"#comissao":     "comissao_calculada",
		"#taxa":         "porcentagem_comissao",
		"#desconhecida": "comissao_taxa_desconhecida",
		"#updated_at":   "updated_at",
	}
	values := map[string]types.AttributeValue{
		":comissao":     stringValue(formatDecimal(c.Amount)),
		":taxa":         stringValue(formatDecimal(c.Rate)),
		":desconhecida": &types.AttributeValueMemberBOOL{Value: c.RateUnknown},
		":updated_at":   stringValue(formatTime(now)),
	}
	return expr, names, values
}

func toInstallmentItem(i entities.Installment) installmentItem {
	it := installmentItem{
		ID:                    i.ID,
		InvoiceID:             i.InvoiceID,
		Number:                i.Number,
		TotalInstallments:     i.TotalInstallments,
		Value:                 formatDecimal(i.Value),
		DueDate:               entities.FormatDate(i.DueDate),
		Status:                string(i.Status),
		Commission:            formatDecimal(i.Commission),
		CommissionRate:        formatDecimal(i.CommissionRate),
		CommissionRateUnknown: i.CommissionRateUnknown,
		CreatedAt:             formatTime(i.CreatedAt),
		UpdatedAt:             formatTime(i.UpdatedAt),
	}
	if i.PaymentDate != nil {
		it.PaymentDate = entities.FormatDate(*i.PaymentDate)
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	i := entities.Installment{
		ID:                    it.ID,
		InvoiceID:             it.InvoiceID,
		Number:                it.Number,
		TotalInstallments:     it.TotalInstallments,
		Value:                 parseDecimal(it.Value),
		DueDate:               parseDate(it.DueDate),
		Status:                entities.InstallmentStatus(it.Status),
		Commission:            parseDecimal(it.Commission),
		CommissionRate:        parseDecimal(it.CommissionRate),
		CommissionRateUnknown: it.CommissionRateUnknown,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
	if it.PaymentDate != "" {
		paid := parseDate(it.PaymentDate)
		i.PaymentDate = &paid
	}
	return i
}

func fromInstallmentItems(items []installmentItem) []entities.Installment {
	out := make([]entities.Installment, 0, len(items))
	for _, it := range items {
		out = append(out, fromInstallmentItem(it))
	}
	return out
}

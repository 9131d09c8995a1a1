package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/factupro/invoice-api/internal/domain"
)

// dynamoAPI is the slice of the DynamoDB client the store uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoRecordStore implements RecordStore on a DynamoDB table keyed by
// InvoiceId.
type DynamoRecordStore struct {
	client dynamoAPI
	table  string
}

// NewDynamoRecordStore creates a record store over the given table.
func NewDynamoRecordStore(client dynamoAPI, table string) *DynamoRecordStore {
	return &DynamoRecordStore{client: client, table: table}
}

// Put writes the invoice unconditionally; an existing record with the same id
// is overwritten.
func (r *DynamoRecordStore) Put(ctx context.Context, invoice *domain.Invoice) error {
	item, err := attributevalue.MarshalMap(invoice)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

// Scan reads the whole table, requesting subsequent pages until no
// LastEvaluatedKey remains. The month prefix, when set, becomes a
// begins_with(Date, ...) filter expression evaluated server-side.
func (r *DynamoRecordStore) Scan(ctx context.Context, monthPrefix string) ([]domain.Invoice, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.table)}

	if monthPrefix != "" {
		expr, err := expression.NewBuilder().
			WithFilter(expression.Name("Date").BeginsWith(monthPrefix)).
			Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build filter expression: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	invoices := make([]domain.Invoice, 0)
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoices: %w", err)
		}

		var page []domain.Invoice
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invoices: %w", err)
		}
		invoices = append(invoices, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return invoices, nil
}

// Delete removes the record by id. The delete is condition-checked: deleting
// an id that does not exist fails with domain.ErrRecordNotFound.
func (r *DynamoRecordStore) Delete(ctx context.Context, invoiceID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"InvoiceId": &types.AttributeValueMemberS{Value: invoiceID},
		},
		ConditionExpression: aws.String("attribute_exists(InvoiceId)"),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, invoiceID)
		}
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	ServiceID   string `dynamodbav:"service_id"`
	ProviderID  string `dynamodbav:"provider_id"`
	CostValue   string `dynamodbav:"cost_value"`
	SaleValue   string `dynamodbav:"sale_value"`
	FinalValue  string `dynamodbav:"final_value"`
	Status      string `dynamodbav:"status"`
	ValidUntil  string `dynamodbav:"valid_until"`
	Observation string `dynamodbav:"observation,omitempty"`
	SaleID      string `dynamodbav:"sale_id,omitempty"`
	DecidedBy   string `dynamodbav:"decided_by,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every decision write carries a ConditionExpression on the stored status, so
// the repository is where the compare-and-swap semantics of the workflow
// actually live. Expiration is never written: the stored status stays
// "pendente" until an explicit decision lands.

type QuoteDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	salesTable        string
	saleServicesTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, quotesTable, salesTable, saleServicesTable string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:               ddb,
		tableName:         quotesTable,
		salesTable:        salesTable,
		saleServicesTable: saleServicesTable,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) RejectIfPending(ctx context.Context, id, observation, decidedBy string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #observation = :observation, #decided_by = :decided_by, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#observation": "observation",
			"#decided_by":  "decided_by",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPendente)},
			":status":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejeitado)},
			":observation": &types.AttributeValueMemberS{Value: observation},
			":decided_by":  &types.AttributeValueMemberS{Value: decidedBy},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// ApproveWithSale flips the quote to "aprovado" and creates the sale with its
// line items in one TransactWriteItems. A lost status condition (someone else
// decided first) cancels the whole transaction: no sale row, no line items,
// quote untouched.
func (r *QuoteDynamoRepository) ApproveWithSale(ctx context.Context, id, decidedBy string, sale entities.Sale, items []entities.SaleService) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	saleAV, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return entities.Quote{}, err
	}

	txItems := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
				UpdateExpression:    aws.String("SET #status = :status, #sale_id = :sale_id, #decided_by = :decided_by, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#sale_id":    "sale_id",
					"#decided_by": "decided_by",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPendente)},
					":status":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAprovado)},
					":sale_id":    &types.AttributeValueMemberS{Value: sale.ID},
					":decided_by": &types.AttributeValueMemberS{Value: decidedBy},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.salesTable),
				Item:                saleAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}

	for _, item := range items {
		itemAV, err := attributevalue.MarshalMap(toSaleServiceItem(item))
		if err != nil {
			return entities.Quote{}, err
		}
		txItems = append(txItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.saleServicesTable),
				Item:                itemAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: txItems,
	})
	if err != nil {
		if transactionLostCondition(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	return r.GetByID(ctx, id)
}

// transactionLostCondition reports whether a TransactWriteItems error was a
// plain conditional-check loss rather than an infrastructure failure.
func transactionLostCondition(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ServiceID:   q.ServiceID,
		ProviderID:  q.ProviderID,
		CostValue:   floatToString(q.CostValue),
		SaleValue:   floatToString(q.SaleValue),
		FinalValue:  floatToString(q.FinalValue),
		Status:      string(q.Status),
		ValidUntil:  formatTime(q.ValidUntil),
		Observation: q.Observation,
		SaleID:      q.SaleID,
		DecidedBy:   q.DecidedBy,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:          it.ID,
		ClientID:    it.ClientID,
		ServiceID:   it.ServiceID,
		ProviderID:  it.ProviderID,
		CostValue:   stringToFloat(it.CostValue),
		SaleValue:   stringToFloat(it.SaleValue),
		FinalValue:  stringToFloat(it.FinalValue),
		Status:      entities.QuoteStatus(it.Status),
		ValidUntil:  parseTime(it.ValidUntil),
		Observation: it.Observation,
		SaleID:      it.SaleID,
		DecidedBy:   it.DecidedBy,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"saudeplus/internal/domain/entities"
	"saudeplus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const saleServicesSaleIDIndex = "sale_id-index"

type saleItem struct {
	ID            string `dynamodbav:"id"`
	ClientID      string `dynamodbav:"client_id"`
	Total         string `dynamodbav:"total"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	Observation   string `dynamodbav:"observation,omitempty"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type saleServiceItem struct {
	ID         string `dynamodbav:"id"`
	SaleID     string `dynamodbav:"sale_id"`
	ServiceID  string `dynamodbav:"service_id"`
	ProviderID string `dynamodbav:"provider_id"`
	Value      string `dynamodbav:"value"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// SaleDynamoRepository persists Sale and SaleService entities in DynamoDB.
//
// Table requirements:
//   - sales:         PK: id (string)
//   - sale_services: PK: id (string), GSI: sale_id-index (PK: sale_id)
type SaleDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	saleServicesTable string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client, salesTable, saleServicesTable string) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:               ddb,
		tableName:         salesTable,
		saleServicesTable: saleServicesTable,
	}
}

// CreateWithItems writes the sale and every line item in one
// TransactWriteItems: a sale row is never visible without its items.
func (r *SaleDynamoRepository) CreateWithItems(ctx context.Context, sale entities.Sale, items []entities.SaleService) (entities.Sale, error) {
	saleAV, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return entities.Sale{}, err
	}

	txItems := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
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
			return entities.Sale{}, err
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
		return entities.Sale{}, err
	}
	return sale, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) ListItemsBySaleID(ctx context.Context, saleID string) ([]entities.SaleService, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.saleServicesTable),
		IndexName:              aws.String(saleServicesSaleIDIndex),
		KeyConditionExpression: aws.String("sale_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: saleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SaleService, 0, len(out.Items))
	for _, raw := range out.Items {
		var it saleServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSaleServiceItem(it))
	}
	// GSI order is not insertion order; restore it.
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *SaleDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SaleStatus) (entities.Sale, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:            s.ID,
		ClientID:      s.ClientID,
		Total:         floatToString(s.Total),
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		Observation:   s.Observation,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:            it.ID,
		ClientID:      it.ClientID,
		Total:         stringToFloat(it.Total),
		PaymentMethod: it.PaymentMethod,
		Status:        entities.SaleStatus(it.Status),
		Observation:   it.Observation,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toSaleServiceItem(s entities.SaleService) saleServiceItem {
	return saleServiceItem{
		ID:         s.ID,
		SaleID:     s.SaleID,
		ServiceID:  s.ServiceID,
		ProviderID: s.ProviderID,
		Value:      floatToString(s.Value),
		Status:     s.Status,
		CreatedAt:  formatTime(s.CreatedAt),
	}
}

func fromSaleServiceItem(it saleServiceItem) entities.SaleService {
	return entities.SaleService{
		ID:         it.ID,
		SaleID:     it.SaleID,
		ServiceID:  it.ServiceID,
		ProviderID: it.ProviderID,
		Value:      stringToFloat(it.Value),
		Status:     it.Status,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

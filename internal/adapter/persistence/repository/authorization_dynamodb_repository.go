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

const authorizationsSaleIDIndex = "sale_id-index"

type authorizationItem struct {
	ID            string `dynamodbav:"id"`
	ClientID      string `dynamodbav:"client_id"`
	ProviderID    string `dynamodbav:"provider_id"`
	ServiceID     string `dynamodbav:"service_id"`
	Value         string `dynamodbav:"value"`
	Status        string `dynamodbav:"status"`
	AuthCode      string `dynamodbav:"auth_code"`
	SaleID        string `dynamodbav:"sale_id,omitempty"`
	SaleServiceID string `dynamodbav:"sale_service_id,omitempty"`
	EmittedAt     string `dynamodbav:"emitted_at"`
	RealizedAt    string `dynamodbav:"realized_at,omitempty"`
	BilledAt      string `dynamodbav:"billed_at,omitempty"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`
	CanceledAt    string `dynamodbav:"canceled_at,omitempty"`
	ReversedAt    string `dynamodbav:"reversed_at,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// AuthorizationDynamoRepository persists ServiceAuthorization entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sale_id-index (PK: sale_id)
//
// Rows are append-and-transition only; nothing is ever deleted.
type AuthorizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuthorizationRepository = (*AuthorizationDynamoRepository)(nil)

func NewAuthorizationDynamoRepository(ddb *dynamodb.Client, table string) *AuthorizationDynamoRepository {
	return &AuthorizationDynamoRepository{ddb: ddb, tableName: table}
}

// CreateBatch writes the whole batch in one TransactWriteItems so a failed
// issuance leaves no authorizations behind and the caller can retry the batch
// as a unit.
func (r *AuthorizationDynamoRepository) CreateBatch(ctx context.Context, auths []entities.ServiceAuthorization) ([]entities.ServiceAuthorization, error) {
	if len(auths) == 0 {
		return nil, nil
	}

	txItems := make([]types.TransactWriteItem, 0, len(auths))
	for _, a := range auths {
		av, err := attributevalue.MarshalMap(toAuthorizationItem(a))
		if err != nil {
			return nil, err
		}
		txItems = append(txItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: txItems,
	})
	if err != nil {
		return nil, err
	}
	return auths, nil
}

func (r *AuthorizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceAuthorization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceAuthorization{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceAuthorization{}, nil
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceAuthorization{}, err
	}
	return fromAuthorizationItem(it), nil
}

func (r *AuthorizationDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.ServiceAuthorization, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(authorizationsSaleIDIndex),
		KeyConditionExpression: aws.String("sale_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: saleID},
		},
	})
	if err != nil {
		return nil, err
	}

	auths := make([]entities.ServiceAuthorization, 0, len(out.Items))
	for _, raw := range out.Items {
		var it authorizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		auths = append(auths, fromAuthorizationItem(it))
	}
	// GSI order is not insertion order; restore it.
	sort.Slice(auths, func(i, j int) bool {
		if auths[i].EmittedAt.Equal(auths[j].EmittedAt) {
			return auths[i].ID < auths[j].ID
		}
		return auths[i].EmittedAt.Before(auths[j].EmittedAt)
	})
	return auths, nil
}

// TransitionStatus applies from → to conditionally on the row still being in
// `from`, recording the transition timestamp for the target state. Returns a
// zero-value entity when the condition loses.
func (r *AuthorizationDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.AuthorizationStatus, at time.Time) (entities.ServiceAuthorization, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if attr := transitionTimestampAttribute(to); attr != "" {
		updateExpr += ", #ts = :now"
		names["#ts"] = attr
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:         aws.String(updateExpr),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceAuthorization{}, nil
		}
		return entities.ServiceAuthorization{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceAuthorization{}, nil
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceAuthorization{}, err
	}
	return fromAuthorizationItem(it), nil
}

func transitionTimestampAttribute(to entities.AuthorizationStatus) string {
	switch to {
	case entities.AuthorizationStatusRealizada:
		return "realized_at"
	case entities.AuthorizationStatusFaturada:
		return "billed_at"
	case entities.AuthorizationStatusPaga:
		return "paid_at"
	case entities.AuthorizationStatusCancelada:
		return "canceled_at"
	case entities.AuthorizationStatusEstornada:
		return "reversed_at"
	default:
		return ""
	}
}

func toAuthorizationItem(a entities.ServiceAuthorization) authorizationItem {
	return authorizationItem{
		ID:            a.ID,
		ClientID:      a.ClientID,
		ProviderID:    a.ProviderID,
		ServiceID:     a.ServiceID,
		Value:         floatToString(a.Value),
		Status:        string(a.Status),
		AuthCode:      a.AuthCode,
		SaleID:        a.SaleID,
		SaleServiceID: a.SaleServiceID,
		EmittedAt:     formatTime(a.EmittedAt),
		RealizedAt:    formatTimePtr(a.RealizedAt),
		BilledAt:      formatTimePtr(a.BilledAt),
		PaidAt:        formatTimePtr(a.PaidAt),
		CanceledAt:    formatTimePtr(a.CanceledAt),
		ReversedAt:    formatTimePtr(a.ReversedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromAuthorizationItem(it authorizationItem) entities.ServiceAuthorization {
	return entities.ServiceAuthorization{
		ID:            it.ID,
		ClientID:      it.ClientID,
		ProviderID:    it.ProviderID,
		ServiceID:     it.ServiceID,
		Value:         stringToFloat(it.Value),
		Status:        entities.AuthorizationStatus(it.Status),
		AuthCode:      it.AuthCode,
		SaleID:        it.SaleID,
		SaleServiceID: it.SaleServiceID,
		EmittedAt:     parseTime(it.EmittedAt),
		RealizedAt:    parseTimePtr(it.RealizedAt),
		BilledAt:      parseTimePtr(it.BilledAt),
		PaidAt:        parseTimePtr(it.PaidAt),
		CanceledAt:    parseTimePtr(it.CanceledAt),
		ReversedAt:    parseTimePtr(it.ReversedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

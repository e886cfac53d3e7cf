package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type budgetItem struct {
	ID             string `dynamodbav:"id"`
	Client         string `dynamodbav:"client"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone"`
	EventDate      string `dynamodbav:"event_date"`
	EventTime      string `dynamodbav:"event_time"`
	EventLocation  string `dynamodbav:"event_location"`
	ServiceType    string `dynamodbav:"service_type"`
	Description    string `dynamodbav:"description"`
	EstimatedValue string `dynamodbav:"estimated_value"`
	Notes          string `dynamodbav:"notes,omitempty"`
	ArcSize        string `dynamodbav:"arc_size,omitempty"`
	ImageRef       string `dynamodbav:"image_ref,omitempty"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The canonical collection is small (one booking business), so List is a
// table scan.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var out []entities.Budget
	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range res.Items {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromBudgetItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Record vanished after the caller's existence check.
			return nil
		}
		return err
	}
	return nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:             b.ID,
		Client:         b.Client,
		Email:          b.Email,
		Phone:          b.Phone,
		EventDate:      b.EventDate.UTC().Format("2006-01-02"),
		EventTime:      b.EventTime,
		EventLocation:  b.EventLocation,
		ServiceType:    string(b.ServiceType),
		Description:    b.Description,
		EstimatedValue: floatToString(b.EstimatedValue),
		Notes:          b.Notes,
		ArcSize:        b.ArcSize,
		ImageRef:       b.ImageRef,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	eventDate, _ := time.Parse("2006-01-02", it.EventDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	value, _ := strconv.ParseFloat(it.EstimatedValue, 64)
	return entities.Budget{
		ID:             it.ID,
		Client:         it.Client,
		Email:          it.Email,
		Phone:          it.Phone,
		EventDate:      eventDate,
		EventTime:      it.EventTime,
		EventLocation:  it.EventLocation,
		ServiceType:    entities.ServiceType(it.ServiceType),
		Description:    it.Description,
		EstimatedValue: value,
		Notes:          it.Notes,
		ArcSize:        it.ArcSize,
		ImageRef:       it.ImageRef,
		Status:         entities.BudgetStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

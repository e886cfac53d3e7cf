package repository

import (
	"context"
	"time"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsBudgetIDIndex    = "budget_id-index"
)

type notificationLogItem struct {
	ID         string                 `dynamodbav:"id"`
	BudgetID   string                 `dynamodbav:"budget_id"`
	Channel    string                 `dynamodbav:"channel"`
	SentAt     string                 `dynamodbav:"sent_at"`
	Subject    string                 `dynamodbav:"subject,omitempty"`
	Payload    map[string]interface{} `dynamodbav:"payload,omitempty"`
	PayloadRaw string                 `dynamodbav:"payload_raw,omitempty"`
}

// NotificationLogDynamoRepository persists the dispatch audit trail in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type NotificationLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationLogRepository = (*NotificationLogDynamoRepository)(nil)

func NewNotificationLogDynamoRepository(ddb *dynamodb.Client) *NotificationLogDynamoRepository {
	return &NotificationLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationLogDynamoRepository) Create(ctx context.Context, n entities.NotificationLog) (entities.NotificationLog, error) {
	it := toNotificationLogItem(n)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.NotificationLog{}, err
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
		return entities.NotificationLog{}, err
	}
	return n, nil
}

func (r *NotificationLogDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.NotificationLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.NotificationLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationLogItem(it))
	}
	return items, nil
}

func toNotificationLogItem(n entities.NotificationLog) notificationLogItem {
	return notificationLogItem{
		ID:         n.ID,
		BudgetID:   n.BudgetID,
		Channel:    string(n.Channel),
		SentAt:     n.SentAt.UTC().Format(time.RFC3339Nano),
		Subject:    n.Subject,
		Payload:    n.Payload,
		PayloadRaw: string(n.PayloadRaw),
	}
}

func fromNotificationLogItem(it notificationLogItem) entities.NotificationLog {
	sentAt, _ := time.Parse(time.RFC3339Nano, it.SentAt)
	return entities.NotificationLog{
		ID:         it.ID,
		BudgetID:   it.BudgetID,
		Channel:    entities.NotificationChannel(it.Channel),
		SentAt:     sentAt,
		Subject:    it.Subject,
		Payload:    it.Payload,
		PayloadRaw: []byte(it.PayloadRaw),
	}
}

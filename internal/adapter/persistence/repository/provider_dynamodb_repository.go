package repository

import (
	"context"
	"errors"
	"time"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProvidersTableName = "providers"

type providerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProviderDynamoRepository persists Provider entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProviderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProviderRepository = (*ProviderDynamoRepository)(nil)

func NewProviderDynamoRepository(ddb *dynamodb.Client) *ProviderDynamoRepository {
	return &ProviderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROVIDERS_TABLE", defaultProvidersTableName),
	}
}

func (r *ProviderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Provider{}, err
	}
	if len(out.Item) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func (r *ProviderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProviderStatus) (entities.Provider, error) {
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
			return entities.Provider{}, nil
		}
		return entities.Provider{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func fromProviderItem(it providerItem) entities.Provider {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Provider{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Status:    entities.ProviderStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultResetCodesTableName = "password_reset_codes"

type resetCodeItem struct {
	Email     string `dynamodbav:"email"`
	Code      string `dynamodbav:"code"`
	Attempts  int    `dynamodbav:"attempts"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt string `dynamodbav:"expires_at"`

	// TTL epoch for DynamoDB's expiry sweeper; the use case still checks
	// expires_at because TTL deletion is best effort.
	TTL int64 `dynamodbav:"ttl"`
}

// ResetCodeDynamoRepository persists password reset codes in DynamoDB.
//
// Table requirements:
//   - PK: email (string)
//   - TTL attribute: ttl

type ResetCodeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IResetCodeRepository = (*ResetCodeDynamoRepository)(nil)

func NewResetCodeDynamoRepository(ddb *dynamodb.Client) *ResetCodeDynamoRepository {
	return &ResetCodeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESET_CODES_TABLE", defaultResetCodesTableName),
	}
}

func (r *ResetCodeDynamoRepository) Put(ctx context.Context, code entities.PasswordResetCode) (entities.PasswordResetCode, error) {
	it := resetCodeItem{
		Email:     code.Email,
		Code:      code.Code,
		Attempts:  code.Attempts,
		CreatedAt: code.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: code.ExpiresAt.UTC().Format(time.RFC3339Nano),
		TTL:       code.ExpiresAt.UTC().Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PasswordResetCode{}, err
	}

	// No condition: re-requesting a reset replaces the previous code.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PasswordResetCode{}, err
	}
	return code, nil
}

func (r *ResetCodeDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.PasswordResetCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PasswordResetCode{}, err
	}
	if len(out.Item) == 0 {
		return entities.PasswordResetCode{}, nil
	}

	var it resetCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PasswordResetCode{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.PasswordResetCode{
		Email:     it.Email,
		Code:      it.Code,
		Attempts:  it.Attempts,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (r *ResetCodeDynamoRepository) IncrementAttempts(ctx context.Context, email string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConditionExpression: aws.String("attribute_exists(#email)"),
		UpdateExpression:    aws.String("ADD #attempts :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#email":    "email",
			"#attempts": "attempts",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Code already consumed or expired; nothing to count.
			return nil
		}
		return err
	}
	return nil
}

func (r *ResetCodeDynamoRepository) Delete(ctx context.Context, email string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	return err
}

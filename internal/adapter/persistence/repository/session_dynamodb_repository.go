package repository

import (
	"context"
	"time"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	Token     string `dynamodbav:"token"`
	UserID    string `dynamodbav:"user_id"`
	Anonymous bool   `dynamodbav:"anonymous"`
	CreatedAt string `dynamodbav:"created_at"`
}

// SessionDynamoRepository reads the session table written by the auth
// provider.
//
// Table requirements:
//   - PK: token (string)

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Session{
		Token:     it.Token,
		UserID:    it.UserID,
		Anonymous: it.Anonymous,
		CreatedAt: createdAt,
	}, nil
}

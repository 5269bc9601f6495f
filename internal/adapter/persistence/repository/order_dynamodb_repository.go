package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersOwnerIDIndex     = "owner_id-index"
	ordersRecentIndex      = "recent-index"

	// Constant partition key of recent-index; created_at is the sort key, so
	// one Query returns the newest orders across all owners.
	ordersRecentPartition = "order"
)

type orderItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	CreatedAt string `dynamodbav:"created_at"`
	GSI1PK    string `dynamodbav:"gsi1_pk"`

	CustomerName       string `dynamodbav:"customer_name"`
	CustomerPhone      string `dynamodbav:"customer_phone"`
	CustomerEmail      string `dynamodbav:"customer_email,omitempty"`
	LinkedAccountEmail string `dynamodbav:"pagseguro_email,omitempty"`

	DeliveryCep          string `dynamodbav:"delivery_cep"`
	DeliveryStreet       string `dynamodbav:"delivery_street"`
	DeliveryNumber       string `dynamodbav:"delivery_number"`
	DeliveryComplement   string `dynamodbav:"delivery_complement,omitempty"`
	DeliveryNeighborhood string `dynamodbav:"delivery_neighborhood"`
	DeliveryCity         string `dynamodbav:"delivery_city"`
	DeliveryState        string `dynamodbav:"delivery_state"`

	MachineType string `dynamodbav:"machine_type"`
	MachineName string `dynamodbav:"machine_name"`
	Quantity    int    `dynamodbav:"quantity"`

	PaymentMethod        string `dynamodbav:"payment_method"`
	TotalPrice           string `dynamodbav:"total_price"`
	InstallmentCount     *int   `dynamodbav:"installment_count,omitempty"`
	InstallmentUnitPrice string `dynamodbav:"installment_unit_price,omitempty"`

	Status           string `dynamodbav:"status"`
	NotificationSent bool   `dynamodbav:"notification_sent"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id, SK: created_at)
//   - GSI: recent-index (PK: gsi1_pk, SK: created_at)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersRecentIndex),
		KeyConditionExpression: aws.String("gsi1_pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: ordersRecentPartition},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, notificationSent *bool) (entities.Order, error) {
	expr := "SET #status = :status"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#status": "status",
		"#id":     "id",
	}
	if notificationSent != nil {
		expr += ", #notification_sent = :notification_sent"
		values[":notification_sent"] = &types.AttributeValueMemberBOOL{Value: *notificationSent}
		names["#notification_sent"] = "notification_sent"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	items := make([]entities.Order, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:        o.ID,
		OwnerID:   o.OwnerID,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		GSI1PK:    ordersRecentPartition,

		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		CustomerEmail:      o.CustomerEmail,
		LinkedAccountEmail: o.LinkedAccountEmail,

		DeliveryCep:          o.Delivery.Cep,
		DeliveryStreet:       o.Delivery.Street,
		DeliveryNumber:       o.Delivery.Number,
		DeliveryComplement:   o.Delivery.Complement,
		DeliveryNeighborhood: o.Delivery.Neighborhood,
		DeliveryCity:         o.Delivery.City,
		DeliveryState:        o.Delivery.State,

		MachineType: string(o.Category),
		MachineName: o.MachineName,
		Quantity:    o.Quantity,

		PaymentMethod:    string(o.PaymentMethod),
		TotalPrice:       floatToString(o.TotalPrice),
		InstallmentCount: o.InstallmentCount,

		Status:           string(o.Status),
		NotificationSent: o.NotificationSent,
	}
	if o.InstallmentUnitPrice != nil {
		it.InstallmentUnitPrice = floatToString(*o.InstallmentUnitPrice)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	totalPrice, _ := strconv.ParseFloat(it.TotalPrice, 64)

	o := entities.Order{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		CreatedAt: createdAt,

		CustomerName:       it.CustomerName,
		CustomerPhone:      it.CustomerPhone,
		CustomerEmail:      it.CustomerEmail,
		LinkedAccountEmail: it.LinkedAccountEmail,

		Delivery: entities.DeliveryAddress{
			Cep:          it.DeliveryCep,
			Street:       it.DeliveryStreet,
			Number:       it.DeliveryNumber,
			Complement:   it.DeliveryComplement,
			Neighborhood: it.DeliveryNeighborhood,
			City:         it.DeliveryCity,
			State:        it.DeliveryState,
		},

		Category:    entities.MachineCategory(it.MachineType),
		MachineName: it.MachineName,
		Quantity:    it.Quantity,

		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		TotalPrice:       totalPrice,
		InstallmentCount: it.InstallmentCount,

		Status:           entities.OrderStatus(it.Status),
		NotificationSent: it.NotificationSent,
	}
	if it.InstallmentUnitPrice != "" {
		v, err := strconv.ParseFloat(it.InstallmentUnitPrice, 64)
		if err == nil {
			o.InstallmentUnitPrice = &v
		}
	}
	return o
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

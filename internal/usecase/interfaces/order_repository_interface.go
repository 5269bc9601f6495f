package interfaces

import (
	"context"
	"maquininhas_mky/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Repositories return the zero-value entity (not an error) when a record is
// missing; not-found policy lives in the use cases.
//
// UpdateStatus patches only the lifecycle fields; everything else on an order
// is immutable after creation.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Order, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, notificationSent *bool) (entities.Order, error)
}

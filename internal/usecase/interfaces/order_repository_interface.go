package interfaces

import (
	"context"
	"painel_pedidos/internal/domain/entities"
)

// IOrderRepository abstracts persistence of the pedidos table.
//
// Lookups return a zero Order (empty ID) and a nil error when the row does
// not exist; Create and Update return the persisted row.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, u entities.OrderUpdate) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

// IOrderItemRepository is only needed to cascade order deletion.

type IOrderItemRepository interface {
	DeleteByOrderID(ctx context.Context, orderID string) error
}

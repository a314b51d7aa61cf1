package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// OrderGormRepository persists orders in the pedidos table.

type OrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) List(ctx context.Context) ([]entities.Order, error) {
	rows, err := listNewestFirst[orderModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(rows))
	for _, m := range rows {
		orders = append(orders, fromOrderModel(m))
	}
	return orders, nil
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	m, found, err := findByID[orderModel](ctx, r.db, id)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderModel(m), nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	m := toOrderModel(o)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Order{}, err
	}
	return fromOrderModel(m), nil
}

func (r *OrderGormRepository) Update(ctx context.Context, id string, u entities.OrderUpdate) (entities.Order, error) {
	m, found, err := updateAndReload[orderModel](ctx, r.db, id, map[string]any{
		"nome":                u.Name,
		"email":               u.Email,
		"telefone":            u.Phone,
		"status":              string(u.Status),
		"total":               u.Total,
		"observacao":          u.Note,
		"codigo_rastreamento": u.TrackingCode,
	})
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderModel(m), nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderModel{}).Error
}

// OrderItemGormRepository only supports the cascade from order deletion.

type OrderItemGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderItemRepository = (*OrderItemGormRepository)(nil)

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Where("pedido_id = ?", orderID).Delete(&orderItemModel{}).Error
}

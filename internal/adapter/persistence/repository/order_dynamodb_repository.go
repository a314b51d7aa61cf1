package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"
)

const (
	defaultOrdersTableName     = "pedidos"
	defaultOrderItemsTableName = "itens_pedido"
)

type orderItem struct {
	ID                 string   `dynamodbav:"id"`
	CreatedAt          string   `dynamodbav:"created_at"`
	Nome               string   `dynamodbav:"nome"`
	Email              string   `dynamodbav:"email"`
	Telefone           string   `dynamodbav:"telefone"`
	Status             string   `dynamodbav:"status"`
	Total              string   `dynamodbav:"total"`
	Observacao         *string  `dynamodbav:"observacao,omitempty"`
	CodigoRastreamento *string  `dynamodbav:"codigo_rastreamento,omitempty"`
	Endereco           *string  `dynamodbav:"endereco,omitempty"`
	Descricoes         []string `dynamodbav:"descricoes,omitempty"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lists are full scans sorted by created_at in memory; the dashboard has
// no pagination.

type OrderDynamoRepository struct {
	table dynamoTable[orderItem]
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{table: dynamoTable[orderItem]{
		ddb:       ddb,
		tableName: tableName,
		createdAt: func(it orderItem) string { return it.CreatedAt },
	}}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := r.table.scan(ctx, nil)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := r.table.put(ctx, toOrderItem(o)); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, u entities.OrderUpdate) (entities.Order, error) {
	b := newUpdateBuilder().
		set("nome", u.Name).
		set("email", u.Email).
		set("telefone", u.Phone).
		set("status", string(u.Status)).
		set("total", u.Total.String()).
		setOptional("observacao", u.Note).
		setOptional("codigo_rastreamento", u.TrackingCode)
	it, found, err := r.table.update(ctx, id, b)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

type orderLineItem struct {
	ID       string `dynamodbav:"id"`
	PedidoID string `dynamodbav:"pedido_id"`
}

// OrderItemDynamoRepository removes the line items of a deleted order.

type OrderItemDynamoRepository struct {
	table dynamoTable[orderLineItem]
}

var _ interfaces.IOrderItemRepository = (*OrderItemDynamoRepository)(nil)

func NewOrderItemDynamoRepository(ddb DynamoAPI, tableName string) *OrderItemDynamoRepository {
	if tableName == "" {
		tableName = defaultOrderItemsTableName
	}
	return &OrderItemDynamoRepository{table: dynamoTable[orderLineItem]{
		ddb:       ddb,
		tableName: tableName,
		createdAt: func(orderLineItem) string { return "" },
	}}
}

func (r *OrderItemDynamoRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	return r.table.deleteWhere(ctx, "pedido_id", orderID, func(it orderLineItem) string { return it.ID })
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		CreatedAt:          formatTime(o.CreatedAt),
		Nome:               o.Name,
		Email:              o.Email,
		Telefone:           o.Phone,
		Status:             string(o.Status),
		Total:              o.Total.String(),
		Observacao:         o.Note,
		CodigoRastreamento: o.TrackingCode,
		Endereco:           o.Address,
		Descricoes:         o.Descriptions,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:           it.ID,
		CreatedAt:    parseTime(it.CreatedAt),
		Name:         it.Nome,
		Email:        it.Email,
		Phone:        it.Telefone,
		Status:       entities.OrderStatus(it.Status),
		Total:        parseDecimal(it.Total),
		Note:         it.Observacao,
		TrackingCode: it.CodigoRastreamento,
		Address:      it.Endereco,
		Descriptions: it.Descricoes,
	}
}

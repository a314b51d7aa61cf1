package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a line item of an order (itens_pedido). The dashboard never
// edits items directly; they are only removed when their order is deleted.
type OrderItem struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	OrderID   string          `json:"pedido_id"`
	ProductID string          `json:"produto_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
	Total     decimal.Decimal `json:"total"`
}

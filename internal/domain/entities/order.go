package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the production lifecycle of an order (pedido).
//
// Transitions are free-form: the dashboard may set any value directly, the
// status is a plain enumerated field and not a guarded state machine.

type OrderStatus string

const (
	OrderStatusProducao OrderStatus = "producao"
	OrderStatusPronto   OrderStatus = "pronto"
	OrderStatusEnviado  OrderStatus = "enviado"
)

// OrderStatusAll is the filter sentinel meaning "every status".
const OrderStatusAll = "todos"

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProducao, OrderStatusPronto, OrderStatusEnviado:
		return true
	}
	return false
}

// Order is a customer order persisted in the pedidos table.
//
// Storage model:
//   - PK: id
//   - list order: created_at descending
//
// Name, Email and Phone are never empty on persisted records.
type Order struct {
	ID           string          `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	Name         string          `json:"nome"`
	Email        string          `json:"email"`
	Phone        string          `json:"telefone"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Note         *string         `json:"observacao"`
	TrackingCode *string         `json:"codigo_rastreamento"`
	Address      *string         `json:"endereco,omitempty"`
	Descriptions []string        `json:"descricoes,omitempty"`
}

// OrderFields carries the user-supplied fields of an order form. A nil
// Total means "not informed" and defaults to zero on create.
type OrderFields struct {
	Name         string
	Email        string
	Phone        string
	Status       OrderStatus
	Total        *decimal.Decimal
	Note         *string
	TrackingCode *string
	Address      *string
	Descriptions []string
}

// OrderUpdate holds the mutable fields of an order. Editing replaces all of
// them at once and never touches ID or CreatedAt.
type OrderUpdate struct {
	Name         string
	Email        string
	Phone        string
	Status       OrderStatus
	Total        decimal.Decimal
	Note         *string
	TrackingCode *string
}

// Apply returns a copy of o with the mutable fields replaced.
func (u OrderUpdate) Apply(o Order) Order {
	o.Name = u.Name
	o.Email = u.Email
	o.Phone = u.Phone
	o.Status = u.Status
	o.Total = u.Total
	o.Note = u.Note
	o.TrackingCode = u.TrackingCode
	return o
}

// Update converts form fields into the mutable-field set used by edits.
// Address and descriptions are only written on create.
func (f OrderFields) Update() OrderUpdate {
	u := OrderUpdate{
		Name:         f.Name,
		Email:        f.Email,
		Phone:        f.Phone,
		Status:       f.Status,
		Note:         f.Note,
		TrackingCode: f.TrackingCode,
	}
	if f.Total != nil {
		u.Total = *f.Total
	}
	return u
}

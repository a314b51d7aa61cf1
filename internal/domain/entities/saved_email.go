package entities

import "time"

// SavedEmailOrigin tags where an e-mail capture came from.

type SavedEmailOrigin string

const (
	SavedEmailOriginPedido  SavedEmailOrigin = "pedido"
	SavedEmailOriginContato SavedEmailOrigin = "contato"
)

func (o SavedEmailOrigin) Valid() bool {
	return o == SavedEmailOriginPedido || o == SavedEmailOriginContato
}

// SavedEmail is an e-mail capture record (emails_salvos) with an optional
// back-reference to the order or contact that produced it.
type SavedEmail struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Email     string           `json:"email"`
	Name      string           `json:"nome"`
	Origin    SavedEmailOrigin `json:"origem"`
	OrderID   *string          `json:"pedido_id"`
	ContactID *string          `json:"contato_id"`
}

type SavedEmailFields struct {
	Email     string
	Name      string
	Origin    SavedEmailOrigin
	OrderID   *string
	ContactID *string
}

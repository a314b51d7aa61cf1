package entities

import "time"

// DefaultContactMessage is stored on contacts created from an order.
const DefaultContactMessage = "Contato criado a partir do pedido"

// Contact is a person record (contatos).
type Contact struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Message   string    `json:"mensagem"`
}

type ContactFields struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

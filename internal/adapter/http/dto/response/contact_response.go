package response

import (
	"painel_pedidos/internal/domain/entities"
	"time"
)

type ContactResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Mensagem  string    `json:"mensagem"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Nome:      c.Name,
		Email:     c.Email,
		Telefone:  c.Phone,
		Mensagem:  c.Message,
	}
}

func FromContacts(cs []entities.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContact(c))
	}
	return out
}

type SavedEmailResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Origem    string    `json:"origem"`
	PedidoID  *string   `json:"pedido_id"`
	ContatoID *string   `json:"contato_id"`
}

func FromSavedEmail(e entities.SavedEmail) SavedEmailResponse {
	return SavedEmailResponse{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Email:     e.Email,
		Nome:      e.Name,
		Origem:    string(e.Origin),
		PedidoID:  e.OrderID,
		ContatoID: e.ContactID,
	}
}

func FromSavedEmails(es []entities.SavedEmail) []SavedEmailResponse {
	out := make([]SavedEmailResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromSavedEmail(e))
	}
	return out
}

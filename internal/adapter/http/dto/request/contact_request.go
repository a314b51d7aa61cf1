package request

import "painel_pedidos/internal/domain/entities"

type ContactRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email" binding:"omitempty,email"`
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem"`
}

func (r ContactRequest) ToFields() entities.ContactFields {
	return entities.ContactFields{
		Name:    r.Nome,
		Email:   r.Email,
		Phone:   r.Telefone,
		Message: r.Mensagem,
	}
}

type SavedEmailRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Nome      string  `json:"nome"`
	Origem    string  `json:"origem" binding:"required,email_origin"`
	PedidoID  *string `json:"pedido_id"`
	ContatoID *string `json:"contato_id"`
}

func (r SavedEmailRequest) ToFields() entities.SavedEmailFields {
	return entities.SavedEmailFields{
		Email:     r.Email,
		Name:      r.Nome,
		Origin:    entities.SavedEmailOrigin(r.Origem),
		OrderID:   r.PedidoID,
		ContactID: r.ContatoID,
	}
}

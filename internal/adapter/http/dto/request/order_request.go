package request

import (
	"painel_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderRequest is the order form. Required fields are checked by the use
// case so the response carries the form message.
type OrderRequest struct {
	Nome               string           `json:"nome"`
	Email              string           `json:"email"`
	Telefone           string           `json:"telefone"`
	Status             string           `json:"status" binding:"omitempty,order_status"`
	Total              *decimal.Decimal `json:"total"`
	Observacao         *string          `json:"observacao"`
	CodigoRastreamento *string          `json:"codigo_rastreamento"`
	Endereco           *string          `json:"endereco"`
	Descricoes         []string         `json:"descricoes" binding:"omitempty,dive,max=500"`
}

func (r OrderRequest) ToFields() entities.OrderFields {
	return entities.OrderFields{
		Name:         r.Nome,
		Email:        r.Email,
		Phone:        r.Telefone,
		Status:       entities.OrderStatus(r.Status),
		Total:        r.Total,
		Note:         r.Observacao,
		TrackingCode: r.CodigoRastreamento,
		Address:      r.Endereco,
		Descriptions: r.Descricoes,
	}
}

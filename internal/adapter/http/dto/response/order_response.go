package response

import (
	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"
	"time"
)

type OrderResponse struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	Nome               string    `json:"nome"`
	Email              string    `json:"email"`
	Telefone           string    `json:"telefone"`
	Status             string    `json:"status"`
	Total              float64   `json:"total"`
	Observacao         *string   `json:"observacao"`
	CodigoRastreamento *string   `json:"codigo_rastreamento"`
	Endereco           *string   `json:"endereco,omitempty"`
	Descricoes         []string  `json:"descricoes,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		CreatedAt:          o.CreatedAt,
		Nome:               o.Name,
		Email:              o.Email,
		Telefone:           o.Phone,
		Status:             string(o.Status),
		Total:              o.Total.InexactFloat64(),
		Observacao:         o.Note,
		CodigoRastreamento: o.TrackingCode,
		Endereco:           o.Address,
		Descricoes:         o.Descriptions,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type DeleteStepResponse struct {
	Etapa string `json:"etapa"`
	OK    bool   `json:"ok"`
	Erro  string `json:"erro,omitempty"`
}

// DeleteOrderResponse reports the cascade of an order deletion. Failed
// steps are warnings, the order itself is gone.
type DeleteOrderResponse struct {
	ID       string               `json:"id"`
	Mensagem string               `json:"mensagem"`
	Etapas   []DeleteStepResponse `json:"etapas"`
}

func FromDeleteReport(r usecase.DeleteReport) DeleteOrderResponse {
	steps := make([]DeleteStepResponse, 0, len(r.Steps))
	for _, s := range r.Steps {
		step := DeleteStepResponse{Etapa: s.Name, OK: s.OK()}
		if s.Err != nil {
			step.Erro = s.Err.Error()
		}
		steps = append(steps, step)
	}
	return DeleteOrderResponse{ID: r.OrderID, Mensagem: r.Message(), Etapas: steps}
}

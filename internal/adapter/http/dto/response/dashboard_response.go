package response

import (
	"painel_pedidos/internal/dashboard"
	"time"
)

type ModeResponse struct {
	Modo     string `json:"modo"`
	PedidoID string `json:"pedido_id,omitempty"`
}

func FromMode(m dashboard.Mode) ModeResponse {
	if id, ok := m.OrderID(); ok {
		return ModeResponse{Modo: "editing", PedidoID: id}
	}
	return ModeResponse{Modo: "creating"}
}

// DashboardResponse is the full dashboard view for one status filter.
type DashboardResponse struct {
	Filtro      string                `json:"filtro"`
	EmAndamento []OrderResponse       `json:"em_andamento"`
	Concluidos  []OrderResponse       `json:"concluidos"`
	Transacoes  []TransactionResponse `json:"transacoes"`
	Totais      TotalsResponse        `json:"totais"`
	Contatos    []ContactResponse     `json:"contatos"`
	Formulario  ModeResponse          `json:"formulario"`
}

func FromSnapshot(s dashboard.Snapshot) DashboardResponse {
	return DashboardResponse{
		Filtro:      string(s.Filter),
		EmAndamento: FromOrders(s.InProgress),
		Concluidos:  FromOrders(s.Completed),
		Transacoes:  FromTransactions(s.Transactions),
		Totais:      FromTotals(s.Totals),
		Contatos:    FromContacts(s.Contacts),
		Formulario:  FromMode(s.Mode),
	}
}

type NotificationResponse struct {
	Titulo   string    `json:"titulo"`
	Mensagem string    `json:"mensagem"`
	Variante string    `json:"variante"`
	Em       time.Time `json:"em"`
}

func FromNotifications(ns []dashboard.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationResponse{
			Titulo:   n.Title,
			Mensagem: n.Message,
			Variante: string(n.Variant),
			Em:       n.At,
		})
	}
	return out
}

package response

import (
	"painel_pedidos/internal/dashboard"
	"painel_pedidos/internal/domain/entities"
	"time"
)

type TransactionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Tipo      string    `json:"tipo"`
	Valor     float64   `json:"valor"`
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao"`
	Categoria *string   `json:"categoria"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Tipo:      string(t.Type),
		Valor:     t.Amount.InexactFloat64(),
		Data:      t.Date,
		Descricao: t.Description,
		Categoria: t.Category,
	}
}

func FromTransactions(ts []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransaction(t))
	}
	return out
}

type TotalsResponse struct {
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
	Lucro    float64 `json:"lucro"`
}

func FromTotals(t dashboard.Totals) TotalsResponse {
	return TotalsResponse{
		Receitas: t.Income.InexactFloat64(),
		Despesas: t.Expense.InexactFloat64(),
		Lucro:    t.Profit.InexactFloat64(),
	}
}

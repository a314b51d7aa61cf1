package dashboard

import (
	"painel_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Totals is the ledger summary shown on the dashboard.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// PartitionOrders splits orders into in-progress (not shipped) and
// completed (shipped), keeping relative order.
func PartitionOrders(orders []entities.Order) (inProgress, completed []entities.Order) {
	inProgress = make([]entities.Order, 0, len(orders))
	completed = make([]entities.Order, 0)
	for _, o := range orders {
		if o.Status == entities.OrderStatusEnviado {
			completed = append(completed, o)
		} else {
			inProgress = append(inProgress, o)
		}
	}
	return inProgress, completed
}

// FilterByStatus keeps orders whose status equals filter. "todos" and the
// empty filter keep everything.
func FilterByStatus(orders []entities.Order, filter entities.OrderStatus) []entities.Order {
	if filter == entities.OrderStatusAll || filter == "" {
		return orders
	}
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == filter {
			out = append(out, o)
		}
	}
	return out
}

// ComputeTotals sums income and expense. Amounts are decimals, so a
// missing amount is already zero.
func ComputeTotals(transactions []entities.Transaction) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case entities.TransactionTypeReceita:
			income = income.Add(t.Amount)
		case entities.TransactionTypeDespesa:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Profit: income.Sub(expense)}
}

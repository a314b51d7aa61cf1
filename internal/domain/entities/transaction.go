package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells income from expense in the ledger (financeiro).

type TransactionType string

const (
	TransactionTypeReceita TransactionType = "receita"
	TransactionTypeDespesa TransactionType = "despesa"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeReceita || t == TransactionTypeDespesa
}

// DefaultTransactionCategory is assigned when a transaction is created
// without a category.
const DefaultTransactionCategory = "geral"

// Transaction is a single ledger entry. Amount is expected to be
// non-negative but that is not enforced.
type Transaction struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Type        TransactionType `json:"tipo"`
	Amount      decimal.Decimal `json:"valor"`
	Date        time.Time       `json:"data"`
	Description string          `json:"descricao"`
	Category    *string         `json:"categoria"`
}

// TransactionFields are the editable fields of a transaction.
type TransactionFields struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    *string
}

// TransactionUpdate is a partial edit. Nil fields keep their stored value.
type TransactionUpdate struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	Category    *string
}

// Empty reports whether no field is set.
func (u TransactionUpdate) Empty() bool {
	return u.Type == nil && u.Amount == nil && u.Date == nil && u.Description == nil && u.Category == nil
}

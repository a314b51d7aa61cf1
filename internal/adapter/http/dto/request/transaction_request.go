package request

import (
	"errors"
	"strings"
	"time"

	"painel_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidTransactionDate = errors.New("invalid transaction date")

// Accepted layouts for the data field.
var transactionDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

type TransactionRequest struct {
	Tipo      string          `json:"tipo" binding:"required,transaction_type"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data"`
	Descricao string          `json:"descricao"`
	Categoria *string         `json:"categoria"`
}

// ToFields converts the payload. An empty date is left zero and the use
// case fills it.
func (r TransactionRequest) ToFields() (entities.TransactionFields, error) {
	f := entities.TransactionFields{
		Type:        entities.TransactionType(r.Tipo),
		Amount:      r.Valor,
		Description: r.Descricao,
		Category:    r.Categoria,
	}
	data := strings.TrimSpace(r.Data)
	if data == "" {
		return f, nil
	}
	date, err := parseTransactionDate(data)
	if err != nil {
		return entities.TransactionFields{}, err
	}
	f.Date = date
	return f, nil
}

// TransactionUpdateRequest is a partial edit: absent keys keep the stored
// value.
type TransactionUpdateRequest struct {
	Tipo      *string          `json:"tipo" binding:"omitempty,transaction_type"`
	Valor     *decimal.Decimal `json:"valor"`
	Data      *string          `json:"data"`
	Descricao *string          `json:"descricao"`
	Categoria *string          `json:"categoria"`
}

func (r TransactionUpdateRequest) ToUpdate() (entities.TransactionUpdate, error) {
	u := entities.TransactionUpdate{
		Amount:      r.Valor,
		Description: r.Descricao,
		Category:    r.Categoria,
	}
	if r.Tipo != nil {
		t := entities.TransactionType(*r.Tipo)
		u.Type = &t
	}
	if r.Data != nil {
		date, err := parseTransactionDate(strings.TrimSpace(*r.Data))
		if err != nil {
			return entities.TransactionUpdate{}, err
		}
		u.Date = &date
	}
	return u, nil
}

func parseTransactionDate(data string) (time.Time, error) {
	for _, layout := range transactionDateLayouts {
		if t, err := time.Parse(layout, data); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTransactionDate
}

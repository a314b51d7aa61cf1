package interfaces

import (
	"context"
	"painel_pedidos/internal/domain/entities"
)

// ITransactionRepository abstracts persistence of the financeiro table.

type ITransactionRepository interface {
	List(ctx context.Context) ([]entities.Transaction, error)
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	Update(ctx context.Context, id string, u entities.TransactionUpdate) (entities.Transaction, error)
	Delete(ctx context.Context, id string) error
}

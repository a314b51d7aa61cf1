package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"
)

const defaultTransactionsTableName = "financeiro"

type transactionItem struct {
	ID        string  `dynamodbav:"id"`
	CreatedAt string  `dynamodbav:"created_at"`
	Tipo      string  `dynamodbav:"tipo"`
	Valor     string  `dynamodbav:"valor"`
	Data      string  `dynamodbav:"data"`
	Descricao string  `dynamodbav:"descricao"`
	Categoria *string `dynamodbav:"categoria,omitempty"`
}

type TransactionDynamoRepository struct {
	table dynamoTable[transactionItem]
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionDynamoRepository {
	if tableName == "" {
		tableName = defaultTransactionsTableName
	}
	return &TransactionDynamoRepository{table: dynamoTable[transactionItem]{
		ddb:       ddb,
		tableName: tableName,
		createdAt: func(it transactionItem) string { return it.CreatedAt },
	}}
}

func (r *TransactionDynamoRepository) List(ctx context.Context) ([]entities.Transaction, error) {
	items, err := r.table.scan(ctx, nil)
	if err != nil {
		return nil, err
	}
	txs := make([]entities.Transaction, 0, len(items))
	for _, it := range items {
		txs = append(txs, fromTransactionItem(it))
	}
	return txs, nil
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	if err := r.table.put(ctx, toTransactionItem(t)); err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, id string, u entities.TransactionUpdate) (entities.Transaction, error) {
	b := newUpdateBuilder()
	if u.Type != nil {
		b.set("tipo", string(*u.Type))
	}
	if u.Amount != nil {
		b.set("valor", u.Amount.String())
	}
	if u.Date != nil {
		b.set("data", formatTime(*u.Date))
	}
	if u.Description != nil {
		b.set("descricao", *u.Description)
	}
	if u.Category != nil {
		b.set("categoria", *u.Category)
	}
	it, found, err := r.table.update(ctx, id, b)
	if err != nil || !found {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:        t.ID,
		CreatedAt: formatTime(t.CreatedAt),
		Tipo:      string(t.Type),
		Valor:     t.Amount.String(),
		Data:      formatTime(t.Date),
		Descricao: t.Description,
		Categoria: t.Category,
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:          it.ID,
		CreatedAt:   parseTime(it.CreatedAt),
		Type:        entities.TransactionType(it.Tipo),
		Amount:      parseDecimal(it.Valor),
		Date:        parseTime(it.Data),
		Description: it.Descricao,
		Category:    it.Categoria,
	}
}

package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITransactionRepository = (*TransactionGormRepository)(nil)

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) List(ctx context.Context) ([]entities.Transaction, error) {
	rows, err := listNewestFirst[transactionModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	txs := make([]entities.Transaction, 0, len(rows))
	for _, m := range rows {
		txs = append(txs, fromTransactionModel(m))
	}
	return txs, nil
}

func (r *TransactionGormRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	m := toTransactionModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionModel(m), nil
}

// Update writes only the columns set in u.
func (r *TransactionGormRepository) Update(ctx context.Context, id string, u entities.TransactionUpdate) (entities.Transaction, error) {
	values := map[string]any{}
	if u.Type != nil {
		values["tipo"] = string(*u.Type)
	}
	if u.Amount != nil {
		values["valor"] = *u.Amount
	}
	if u.Date != nil {
		values["data"] = *u.Date
	}
	if u.Description != nil {
		values["descricao"] = *u.Description
	}
	if u.Category != nil {
		values["categoria"] = *u.Category
	}
	m, found, err := updateAndReload[transactionModel](ctx, r.db, id, values)
	if err != nil || !found {
		return entities.Transaction{}, err
	}
	return fromTransactionModel(m), nil
}

func (r *TransactionGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&transactionModel{}).Error
}

package usecase

import (
	"context"
	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const entityTransaction = "transação"

// ITransactionUseCase is the ledger gateway. Transactions never cascade.

type ITransactionUseCase interface {
	List(ctx context.Context) ([]entities.Transaction, error)
	Create(ctx context.Context, f entities.TransactionFields) (entities.Transaction, error)
	Update(ctx context.Context, id string, u entities.TransactionUpdate) (entities.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type TransactionUseCase struct {
	repo       interfaces.ITransactionRepository
	logger     *zap.Logger
	now        func() time.Time
	generateID func() string
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository, logger *zap.Logger) *TransactionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionUseCase{
		repo:       repo,
		logger:     logger.Named("transaction"),
		now:        func() time.Time { return time.Now().UTC() },
		generateID: uuid.NewString,
	}
}

func (u *TransactionUseCase) List(ctx context.Context) ([]entities.Transaction, error) {
	txs, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("list transactions failed", zap.Error(err))
		return nil, wrapStore("list financeiro", err)
	}
	return txs, nil
}

func (u *TransactionUseCase) Create(ctx context.Context, f entities.TransactionFields) (entities.Transaction, error) {
	f, err := u.normalize(f)
	if err != nil {
		return entities.Transaction{}, err
	}
	if f.Category == nil {
		category := entities.DefaultTransactionCategory
		f.Category = &category
	}

	t := entities.Transaction{
		ID:          u.generateID(),
		CreatedAt:   u.now(),
		Type:        f.Type,
		Amount:      f.Amount,
		Date:        f.Date,
		Description: f.Description,
		Category:    f.Category,
	}
	u.logger.Info("creating transaction", zap.String("transaction_id", t.ID), zap.String("type", string(t.Type)))

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		u.logger.Error("create transaction failed", zap.String("transaction_id", t.ID), zap.Error(err))
		return entities.Transaction{}, wrapStore("create financeiro", err)
	}
	if created.ID == "" {
		return entities.Transaction{}, &EmptyResultError{Op: "create financeiro"}
	}
	return created, nil
}

// Update writes only the fields set in upd. The date is never defaulted
// here, so an edit that omits it keeps the stored one.
func (u *TransactionUseCase) Update(ctx context.Context, id string, upd entities.TransactionUpdate) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidID
	}
	upd, err := normalizeUpdate(upd)
	if err != nil {
		return entities.Transaction{}, err
	}

	u.logger.Info("updating transaction", zap.String("transaction_id", id))
	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		u.logger.Error("update transaction failed", zap.String("transaction_id", id), zap.Error(err))
		return entities.Transaction{}, wrapStore("update financeiro", err)
	}
	if updated.ID == "" {
		return entities.Transaction{}, &EmptyResultError{Op: "update financeiro"}
	}
	return updated, nil
}

func (u *TransactionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	u.logger.Info("deleting transaction", zap.String("transaction_id", id))
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.Error("delete transaction failed", zap.String("transaction_id", id), zap.Error(err))
		return wrapStore("delete financeiro", err)
	}
	return nil
}

func (u *TransactionUseCase) normalize(f entities.TransactionFields) (entities.TransactionFields, error) {
	f.Description = strings.TrimSpace(f.Description)
	if missing := missingFields("descricao", f.Description); len(missing) > 0 {
		return f, newValidationError(entityTransaction, "descrição é obrigatória", missing...)
	}
	if !f.Type.Valid() {
		return f, newValidationError(entityTransaction, "tipo deve ser receita ou despesa", "tipo")
	}
	if f.Date.IsZero() {
		f.Date = u.now()
	}
	f.Category = nonEmpty(f.Category)
	return f, nil
}

func normalizeUpdate(upd entities.TransactionUpdate) (entities.TransactionUpdate, error) {
	if upd.Description != nil {
		description := strings.TrimSpace(*upd.Description)
		if description == "" {
			return upd, newValidationError(entityTransaction, "descrição é obrigatória", "descricao")
		}
		upd.Description = &description
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return upd, newValidationError(entityTransaction, "tipo deve ser receita ou despesa", "tipo")
	}
	if upd.Date != nil && upd.Date.IsZero() {
		return upd, newValidationError(entityTransaction, "data inválida", "data")
	}
	upd.Category = nonEmpty(upd.Category)
	if upd.Empty() {
		return upd, newValidationError(entityTransaction, "nenhum campo para atualizar")
	}
	return upd, nil
}

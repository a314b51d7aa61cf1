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

const entitySavedEmail = "email salvo"

// ISavedEmailUseCase exposes the e-mail capture list. Orders create entries
// on their own; this use case serves listing and manual maintenance.

type ISavedEmailUseCase interface {
	List(ctx context.Context) ([]entities.SavedEmail, error)
	Save(ctx context.Context, f entities.SavedEmailFields) (entities.SavedEmail, error)
	Update(ctx context.Context, id string, f entities.SavedEmailFields) (entities.SavedEmail, error)
	Delete(ctx context.Context, id string) error
}

type SavedEmailUseCase struct {
	repo       interfaces.ISavedEmailRepository
	logger     *zap.Logger
	now        func() time.Time
	generateID func() string
}

var _ ISavedEmailUseCase = (*SavedEmailUseCase)(nil)

func NewSavedEmailUseCase(repo interfaces.ISavedEmailRepository, logger *zap.Logger) *SavedEmailUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SavedEmailUseCase{
		repo:       repo,
		logger:     logger.Named("saved_email"),
		now:        func() time.Time { return time.Now().UTC() },
		generateID: uuid.NewString,
	}
}

func (u *SavedEmailUseCase) List(ctx context.Context) ([]entities.SavedEmail, error) {
	emails, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("list saved e-mails failed", zap.Error(err))
		return nil, wrapStore("list emails_salvos", err)
	}
	return emails, nil
}

func (u *SavedEmailUseCase) Save(ctx context.Context, f entities.SavedEmailFields) (entities.SavedEmail, error) {
	f, err := normalizeSavedEmail(f)
	if err != nil {
		return entities.SavedEmail{}, err
	}
	e := entities.SavedEmail{
		ID:        u.generateID(),
		CreatedAt: u.now(),
		Email:     f.Email,
		Name:      f.Name,
		Origin:    f.Origin,
		OrderID:   f.OrderID,
		ContactID: f.ContactID,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.logger.Error("save e-mail failed", zap.String("email", e.Email), zap.Error(err))
		return entities.SavedEmail{}, wrapStore("create emails_salvos", err)
	}
	if created.ID == "" {
		return entities.SavedEmail{}, &EmptyResultError{Op: "create emails_salvos"}
	}
	return created, nil
}

func (u *SavedEmailUseCase) Update(ctx context.Context, id string, f entities.SavedEmailFields) (entities.SavedEmail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SavedEmail{}, ErrInvalidID
	}
	f, err := normalizeSavedEmail(f)
	if err != nil {
		return entities.SavedEmail{}, err
	}
	updated, err := u.repo.Update(ctx, id, f)
	if err != nil {
		u.logger.Error("update saved e-mail failed", zap.String("saved_email_id", id), zap.Error(err))
		return entities.SavedEmail{}, wrapStore("update emails_salvos", err)
	}
	if updated.ID == "" {
		return entities.SavedEmail{}, &EmptyResultError{Op: "update emails_salvos"}
	}
	return updated, nil
}

func (u *SavedEmailUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.Error("delete saved e-mail failed", zap.String("saved_email_id", id), zap.Error(err))
		return wrapStore("delete emails_salvos", err)
	}
	return nil
}

func normalizeSavedEmail(f entities.SavedEmailFields) (entities.SavedEmailFields, error) {
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
	if missing := missingFields("email", f.Email); len(missing) > 0 {
		return f, newValidationError(entitySavedEmail, "email é obrigatório", missing...)
	}
	if !f.Origin.Valid() {
		return f, newValidationError(entitySavedEmail, "origem deve ser pedido ou contato", "origem")
	}
	f.OrderID = nonEmpty(f.OrderID)
	f.ContactID = nonEmpty(f.ContactID)
	return f, nil
}

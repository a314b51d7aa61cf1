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

const entityContact = "contato"

type IContactUseCase interface {
	List(ctx context.Context) ([]entities.Contact, error)
	Create(ctx context.Context, f entities.ContactFields) (entities.Contact, error)
	Update(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error)
	Delete(ctx context.Context, id string) error
}

type ContactUseCase struct {
	repo       interfaces.IContactRepository
	logger     *zap.Logger
	now        func() time.Time
	generateID func() string
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository, logger *zap.Logger) *ContactUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactUseCase{
		repo:       repo,
		logger:     logger.Named("contact"),
		now:        func() time.Time { return time.Now().UTC() },
		generateID: uuid.NewString,
	}
}

func (u *ContactUseCase) List(ctx context.Context) ([]entities.Contact, error) {
	contacts, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("list contacts failed", zap.Error(err))
		return nil, wrapStore("list contatos", err)
	}
	return contacts, nil
}

func (u *ContactUseCase) Create(ctx context.Context, f entities.ContactFields) (entities.Contact, error) {
	f, err := normalizeContact(f)
	if err != nil {
		return entities.Contact{}, err
	}
	c := entities.Contact{
		ID:        u.generateID(),
		CreatedAt: u.now(),
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Message:   f.Message,
	}
	u.logger.Info("creating contact", zap.String("contact_id", c.ID), zap.String("email", c.Email))

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.logger.Error("create contact failed", zap.String("contact_id", c.ID), zap.Error(err))
		return entities.Contact{}, wrapStore("create contato", err)
	}
	if created.ID == "" {
		return entities.Contact{}, &EmptyResultError{Op: "create contato"}
	}
	return created, nil
}

func (u *ContactUseCase) Update(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contact{}, ErrInvalidID
	}
	f, err := normalizeContact(f)
	if err != nil {
		return entities.Contact{}, err
	}

	u.logger.Info("updating contact", zap.String("contact_id", id))
	updated, err := u.repo.Update(ctx, id, f)
	if err != nil {
		u.logger.Error("update contact failed", zap.String("contact_id", id), zap.Error(err))
		return entities.Contact{}, wrapStore("update contato", err)
	}
	if updated.ID == "" {
		return entities.Contact{}, &EmptyResultError{Op: "update contato"}
	}
	return updated, nil
}

func (u *ContactUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	u.logger.Info("deleting contact", zap.String("contact_id", id))
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.Error("delete contact failed", zap.String("contact_id", id), zap.Error(err))
		return wrapStore("delete contato", err)
	}
	return nil
}

func normalizeContact(f entities.ContactFields) (entities.ContactFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	if missing := missingFields("nome", f.Name, "email", f.Email); len(missing) > 0 {
		return f, newValidationError(entityContact, "nome e email são obrigatórios", missing...)
	}
	return f, nil
}

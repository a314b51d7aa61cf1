package dashboard

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase"

	"go.uber.org/zap"
)

// ContactLinker makes sure every order e-mail has a contact. Only the
// contacts already loaded are checked.
type ContactLinker struct {
	contacts usecase.IContactUseCase
	logger   *zap.Logger
}

func NewContactLinker(contacts usecase.IContactUseCase, logger *zap.Logger) *ContactLinker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactLinker{contacts: contacts, logger: logger.Named("linker")}
}

// Ensure creates a contact for the order e-mail when none of known matches
// it exactly. created is false when nothing was created, including on
// failure, which is only logged.
func (l *ContactLinker) Ensure(ctx context.Context, known []entities.Contact, o entities.Order) (contact entities.Contact, created bool) {
	if o.Email == "" {
		return entities.Contact{}, false
	}
	for _, c := range known {
		if c.Email == o.Email {
			return entities.Contact{}, false
		}
	}

	contact, err := l.contacts.Create(ctx, entities.ContactFields{
		Name:    o.Name,
		Email:   o.Email,
		Phone:   o.Phone,
		Message: entities.DefaultContactMessage,
	})
	if err != nil {
		l.logger.Warn("auto contact creation failed",
			zap.String("order_id", o.ID),
			zap.String("email", o.Email),
			zap.Error(err),
		)
		return entities.Contact{}, false
	}
	l.logger.Info("contact created from order", zap.String("order_id", o.ID), zap.String("contact_id", contact.ID))
	return contact, true
}

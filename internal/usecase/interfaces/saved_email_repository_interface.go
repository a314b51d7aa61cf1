package interfaces

import (
	"context"
	"painel_pedidos/internal/domain/entities"
)

// ISavedEmailRepository abstracts persistence of the emails_salvos table.

type ISavedEmailRepository interface {
	List(ctx context.Context) ([]entities.SavedEmail, error)
	Create(ctx context.Context, e entities.SavedEmail) (entities.SavedEmail, error)
	Update(ctx context.Context, id string, f entities.SavedEmailFields) (entities.SavedEmail, error)
	Delete(ctx context.Context, id string) error
	DeleteByOrderID(ctx context.Context, orderID string) error
}

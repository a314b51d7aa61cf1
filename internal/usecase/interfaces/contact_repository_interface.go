package interfaces

import (
	"context"
	"painel_pedidos/internal/domain/entities"
)

// IContactRepository abstracts persistence of the contatos table.

type IContactRepository interface {
	List(ctx context.Context) ([]entities.Contact, error)
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	Update(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error)
	Delete(ctx context.Context, id string) error
}

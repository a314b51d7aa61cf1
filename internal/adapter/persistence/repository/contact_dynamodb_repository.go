package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"
)

const defaultContactsTableName = "contatos"

type contactItem struct {
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email"`
	Telefone  string `dynamodbav:"telefone"`
	Mensagem  string `dynamodbav:"mensagem"`
}

type ContactDynamoRepository struct {
	table dynamoTable[contactItem]
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb DynamoAPI, tableName string) *ContactDynamoRepository {
	if tableName == "" {
		tableName = defaultContactsTableName
	}
	return &ContactDynamoRepository{table: dynamoTable[contactItem]{
		ddb:       ddb,
		tableName: tableName,
		createdAt: func(it contactItem) string { return it.CreatedAt },
	}}
}

func (r *ContactDynamoRepository) List(ctx context.Context) ([]entities.Contact, error) {
	items, err := r.table.scan(ctx, nil)
	if err != nil {
		return nil, err
	}
	contacts := make([]entities.Contact, 0, len(items))
	for _, it := range items {
		contacts = append(contacts, fromContactItem(it))
	}
	return contacts, nil
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	if err := r.table.put(ctx, toContactItem(c)); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) Update(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error) {
	b := newUpdateBuilder().
		set("nome", f.Name).
		set("email", f.Email).
		set("telefone", f.Phone).
		set("mensagem", f.Message)
	it, found, err := r.table.update(ctx, id, b)
	if err != nil || !found {
		return entities.Contact{}, err
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		ID:        c.ID,
		CreatedAt: formatTime(c.CreatedAt),
		Nome:      c.Name,
		Email:     c.Email,
		Telefone:  c.Phone,
		Mensagem:  c.Message,
	}
}

func fromContactItem(it contactItem) entities.Contact {
	return entities.Contact{
		ID:        it.ID,
		CreatedAt: parseTime(it.CreatedAt),
		Name:      it.Nome,
		Email:     it.Email,
		Phone:     it.Telefone,
		Message:   it.Mensagem,
	}
}

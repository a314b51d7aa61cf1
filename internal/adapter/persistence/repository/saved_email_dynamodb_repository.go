package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"
)

const defaultSavedEmailsTableName = "emails_salvos"

type savedEmailItem struct {
	ID        string  `dynamodbav:"id"`
	CreatedAt string  `dynamodbav:"created_at"`
	Email     string  `dynamodbav:"email"`
	Nome      string  `dynamodbav:"nome"`
	Origem    string  `dynamodbav:"origem"`
	PedidoID  *string `dynamodbav:"pedido_id,omitempty"`
	ContatoID *string `dynamodbav:"contato_id,omitempty"`
}

type SavedEmailDynamoRepository struct {
	table dynamoTable[savedEmailItem]
}

var _ interfaces.ISavedEmailRepository = (*SavedEmailDynamoRepository)(nil)

func NewSavedEmailDynamoRepository(ddb DynamoAPI, tableName string) *SavedEmailDynamoRepository {
	if tableName == "" {
		tableName = defaultSavedEmailsTableName
	}
	return &SavedEmailDynamoRepository{table: dynamoTable[savedEmailItem]{
		ddb:       ddb,
		tableName: tableName,
		createdAt: func(it savedEmailItem) string { return it.CreatedAt },
	}}
}

func (r *SavedEmailDynamoRepository) List(ctx context.Context) ([]entities.SavedEmail, error) {
	items, err := r.table.scan(ctx, nil)
	if err != nil {
		return nil, err
	}
	emails := make([]entities.SavedEmail, 0, len(items))
	for _, it := range items {
		emails = append(emails, fromSavedEmailItem(it))
	}
	return emails, nil
}

func (r *SavedEmailDynamoRepository) Create(ctx context.Context, e entities.SavedEmail) (entities.SavedEmail, error) {
	if err := r.table.put(ctx, toSavedEmailItem(e)); err != nil {
		return entities.SavedEmail{}, err
	}
	return e, nil
}

func (r *SavedEmailDynamoRepository) Update(ctx context.Context, id string, f entities.SavedEmailFields) (entities.SavedEmail, error) {
	b := newUpdateBuilder().
		set("email", f.Email).
		set("nome", f.Name).
		set("origem", string(f.Origin)).
		setOptional("pedido_id", f.OrderID).
		setOptional("contato_id", f.ContactID)
	it, found, err := r.table.update(ctx, id, b)
	if err != nil || !found {
		return entities.SavedEmail{}, err
	}
	return fromSavedEmailItem(it), nil
}

func (r *SavedEmailDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *SavedEmailDynamoRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	return r.table.deleteWhere(ctx, "pedido_id", orderID, func(it savedEmailItem) string { return it.ID })
}

func toSavedEmailItem(e entities.SavedEmail) savedEmailItem {
	return savedEmailItem{
		ID:        e.ID,
		CreatedAt: formatTime(e.CreatedAt),
		Email:     e.Email,
		Nome:      e.Name,
		Origem:    string(e.Origin),
		PedidoID:  e.OrderID,
		ContatoID: e.ContactID,
	}
}

func fromSavedEmailItem(it savedEmailItem) entities.SavedEmail {
	return entities.SavedEmail{
		ID:        it.ID,
		CreatedAt: parseTime(it.CreatedAt),
		Email:     it.Email,
		Name:      it.Nome,
		Origin:    entities.SavedEmailOrigin(it.Origem),
		OrderID:   it.PedidoID,
		ContactID: it.ContatoID,
	}
}

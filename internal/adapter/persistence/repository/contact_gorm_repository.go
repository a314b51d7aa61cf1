package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ContactGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IContactRepository = (*ContactGormRepository)(nil)

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) List(ctx context.Context) ([]entities.Contact, error) {
	rows, err := listNewestFirst[contactModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	contacts := make([]entities.Contact, 0, len(rows))
	for _, m := range rows {
		contacts = append(contacts, fromContactModel(m))
	}
	return contacts, nil
}

func (r *ContactGormRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	m := toContactModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Contact{}, err
	}
	return fromContactModel(m), nil
}

func (r *ContactGormRepository) Update(ctx context.Context, id string, f entities.ContactFields) (entities.Contact, error) {
	m, found, err := updateAndReload[contactModel](ctx, r.db, id, map[string]any{
		"nome":     f.Name,
		"email":    f.Email,
		"telefone": f.Phone,
		"mensagem": f.Message,
	})
	if err != nil || !found {
		return entities.Contact{}, err
	}
	return fromContactModel(m), nil
}

func (r *ContactGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&contactModel{}).Error
}

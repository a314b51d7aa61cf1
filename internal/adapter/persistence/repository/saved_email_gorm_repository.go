package repository

import (
	"context"

	"painel_pedidos/internal/domain/entities"
	"painel_pedidos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SavedEmailGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISavedEmailRepository = (*SavedEmailGormRepository)(nil)

func NewSavedEmailGormRepository(db *gorm.DB) *SavedEmailGormRepository {
	return &SavedEmailGormRepository{db: db}
}

func (r *SavedEmailGormRepository) List(ctx context.Context) ([]entities.SavedEmail, error) {
	rows, err := listNewestFirst[savedEmailModel](ctx, r.db)
	if err != nil {
		return nil, err
	}
	emails := make([]entities.SavedEmail, 0, len(rows))
	for _, m := range rows {
		emails = append(emails, fromSavedEmailModel(m))
	}
	return emails, nil
}

func (r *SavedEmailGormRepository) Create(ctx context.Context, e entities.SavedEmail) (entities.SavedEmail, error) {
	m := toSavedEmailModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.SavedEmail{}, err
	}
	return fromSavedEmailModel(m), nil
}

func (r *SavedEmailGormRepository) Update(ctx context.Context, id string, f entities.SavedEmailFields) (entities.SavedEmail, error) {
	m, found, err := updateAndReload[savedEmailModel](ctx, r.db, id, map[string]any{
		"email":      f.Email,
		"nome":       f.Name,
		"origem":     string(f.Origin),
		"pedido_id":  f.OrderID,
		"contato_id": f.ContactID,
	})
	if err != nil || !found {
		return entities.SavedEmail{}, err
	}
	return fromSavedEmailModel(m), nil
}

func (r *SavedEmailGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&savedEmailModel{}).Error
}

func (r *SavedEmailGormRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Where("pedido_id = ?", orderID).Delete(&savedEmailModel{}).Error
}

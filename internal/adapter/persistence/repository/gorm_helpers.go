package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// findByID loads one row by primary key. A missing row is reported as
// found=false with a nil error.
func findByID[M any](ctx context.Context, db *gorm.DB, id string) (M, bool, error) {
	var m M
	err := db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, false, nil
		}
		return m, false, err
	}
	return m, true, nil
}

// updateAndReload writes the given columns and reads the row back, so the
// caller always gets the full persisted row. found=false means no row
// matched the id.
func updateAndReload[M any](ctx context.Context, db *gorm.DB, id string, values map[string]any) (M, bool, error) {
	var zero M
	res := db.WithContext(ctx).Model(&zero).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return zero, false, res.Error
	}
	if res.RowsAffected == 0 {
		return zero, false, nil
	}
	return findByID[M](ctx, db, id)
}

func listNewestFirst[M any](ctx context.Context, db *gorm.DB) ([]M, error) {
	var rows []M
	if err := db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

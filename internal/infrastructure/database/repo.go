package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindByID loads one row by primary key. Malformed ids report gorm.ErrRecordNotFound.
func FindByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var out T
	if err := db.WithContext(ctx).Where("id = ?", uid).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteByID removes one row by primary key; gorm.ErrRecordNotFound when nothing matched.
func DeleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	res := db.WithContext(ctx).Where("id = ?", uid).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package database

import (
	"fmt"

	"nvp-welfare-backend/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextValue atomically increments the named counter and returns the new value.
// Must run inside tx so the increment and the read see the same row version.
func NextValue(tx *gorm.DB, name string) (int64, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Counter{Name: name, Value: 0}).Error; err != nil {
		return 0, fmt.Errorf("counter %s: init: %w", name, err)
	}
	res := tx.Model(&domain.Counter{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, fmt.Errorf("counter %s: increment: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("counter %s: no row updated", name)
	}
	var c domain.Counter
	if err := tx.Where("name = ?", name).First(&c).Error; err != nil {
		return 0, fmt.Errorf("counter %s: read: %w", name, err)
	}
	return c.Value, nil
}

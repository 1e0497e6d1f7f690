package database

import (
	"nvp-welfare-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens a GORM DB from DSN (Postgres or pooler URL).
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") behind PgBouncer-style poolers.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
}

// Models lists every persisted type, in migration order.
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Member{},
		&domain.Counter{},
		&domain.Donation{},
		&domain.PaymentEvent{},
		&domain.Certificate{},
		&domain.Receipt{},
		&domain.News{},
		&domain.Activity{},
		&domain.Campaign{},
		&domain.Event{},
		&domain.Project{},
		&domain.Internship{},
		&domain.Designation{},
		&domain.Enquiry{},
		&domain.Beneficiary{},
	}
}

// AutoMigrate creates or updates tables for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

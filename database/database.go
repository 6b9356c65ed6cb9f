package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

// Connect opens the Postgres connection and tunes the pool.
func Connect(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	// Default transaction wrapping stays on: every create must be a
	// single atomic insert-and-commit, association rows included.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)

	logger.Info("database connected")
	return db, nil
}

// Migrate creates the four tables plus the teachers_goals join table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Goal{},
		&models.Teacher{},
		&models.Booking{},
		&models.Request{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

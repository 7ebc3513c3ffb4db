package database

import (
	"fmt"

	"github.com/yashkabra143/TimeTrakr/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Project{},
		&models.TimeEntry{},
		&models.Withdrawal{},
		&models.DeductionConfig{},
		&models.CurrencyConfig{},
		&models.AuditLog{},
		&models.Backup{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

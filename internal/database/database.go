package database

import (
	"fmt"

	"github.com/pagelift/core/internal/config"
	"github.com/pagelift/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

// Migrate runs GORM auto-migration for all models. The unique indexes it
// creates, tenants.subdomain and pages (tenant_id, slug), are the actual
// enforcement of the uniqueness invariants; service-level pre-checks are
// advisory.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TenantModel{},
		&models.UserModel{},
		&models.PageModel{},
	)
}

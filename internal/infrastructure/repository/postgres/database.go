package postgres

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snackhub/catalog-api/internal/domain"
	"github.com/snackhub/catalog-api/internal/infrastructure/config"
)

// NewDatabase opens a PostgreSQL connection and migrates the catalog
// schema. TranslateError is required so unique-index violations come
// back as gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewDatabase(cfg *config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Connected to PostgreSQL")
	return db, nil
}

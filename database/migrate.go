package database

import (
	"fmt"

	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect открывает пул gorm и проверяет соединение
func Connect(dsn string, verbose bool) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
	if verbose {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	return db, nil
}

// Не больше одной основной категории и одного основного языка на юриста
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_lawyer_categories_primary
		ON lawyer_categories (lawyer_id) WHERE is_primary`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_lawyer_languages_primary
		ON lawyer_languages (lawyer_id) WHERE is_primary`,
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.Category{},
		&models.Subcategory{},
		&models.LawyerProfile{},
		&models.LawyerCategory{},
		&models.LawyerLanguage{},
		&models.Document{},
		&models.Consultation{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create partial index: %w", err)
		}
	}

	logger.Info("AutoMigrate completed")
	return nil
}

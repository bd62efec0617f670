package database

import (
	"fmt"

	"clinic-records/config"
	"clinic-records/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey so usecases can surface them as a distinct
	// error kind.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// EnsureSchema creates the five relations if absent. Idempotent; called once
// per process start before any other operation.
func EnsureSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Patient{},
		&entity.Visit{},
		&entity.Diagnosis{},
		&entity.ICD10Code{},
		&entity.Template{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

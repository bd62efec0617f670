package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, query string) ([]entity.Patient, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

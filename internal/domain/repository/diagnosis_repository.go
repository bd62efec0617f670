package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	CreateAll(ctx context.Context, db *gorm.DB, diagnoses []entity.Diagnosis) error
	// FindByVisitID returns the visit's diagnoses ordered primary-first,
	// then code ascending.
	FindByVisitID(ctx context.Context, db *gorm.DB, visitID uint) ([]entity.Diagnosis, error)
	DeleteByVisitID(ctx context.Context, db *gorm.DB, visitID uint) error
}

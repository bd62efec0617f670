package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Visit, error)
	// FindDetailByID loads the visit together with its patient row.
	FindDetailByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Visit, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Visit, error)
	// UpdateClinicalFields overwrites the four clinical text columns and
	// nothing else; the visit date is never touched.
	UpdateClinicalFields(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	Search(ctx context.Context, db *gorm.DB, filter *entity.VisitFilter) ([]entity.VisitSummary, error)
	FindByDay(ctx context.Context, db *gorm.DB, day string) ([]entity.VisitSummary, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) CreateAll(ctx context.Context, db *gorm.DB, diagnoses []entity.Diagnosis) error {
	if len(diagnoses) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&diagnoses).Error
}

func (r *diagnosisRepository) FindByVisitID(ctx context.Context, db *gorm.DB, visitID uint) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.WithContext(ctx).
		Where("visit_id = ?", visitID).
		Order("is_primary DESC, code").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) DeleteByVisitID(ctx context.Context, db *gorm.DB, visitID uint) error {
	return db.WithContext(ctx).Where("visit_id = ?", visitID).Delete(&entity.Diagnosis{}).Error
}

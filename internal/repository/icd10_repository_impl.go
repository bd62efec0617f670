package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type icd10Repository struct{}

func NewICD10Repository() domainRepo.ICD10Repository {
	return &icd10Repository{}
}

func (r *icd10Repository) Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]entity.ICD10Code, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + query + "%"
	var codes []entity.ICD10Code
	err := db.WithContext(ctx).
		Where("code ILIKE ? OR name ILIKE ?", like, like).
		Order("code").
		Limit(limit).
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *icd10Repository) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.ICD10Code{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *icd10Repository) Upsert(ctx context.Context, db *gorm.DB, code *entity.ICD10Code) error {
	// Duplicate codes are skipped silently.
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(code).Error
}

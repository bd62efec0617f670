package repository

import (
	"context"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type templateRepository struct{}

func NewTemplateRepository() domainRepo.TemplateRepository {
	return &templateRepository{}
}

func (r *templateRepository) Create(ctx context.Context, db *gorm.DB, template *entity.Template) error {
	return db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) FindAll(ctx context.Context, db *gorm.DB, templateType entity.TemplateType) ([]entity.Template, error) {
	var templates []entity.Template
	tx := db.WithContext(ctx)
	if templateType != "" {
		tx = tx.Where("type = ?", templateType)
	}
	err := tx.Order("type, name").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(ctx context.Context, db *gorm.DB, template *entity.Template) error
	FindAll(ctx context.Context, db *gorm.DB, templateType entity.TemplateType) ([]entity.Template, error)
}

package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"gorm.io/gorm"
)

type ICD10Repository interface {
	// Search performs a case-insensitive substring match against code or
	// name, ordered by code ascending, capped at limit rows.
	Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]entity.ICD10Code, error)
	ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error)
	// Upsert inserts a reference row, silently skipping duplicate codes.
	Upsert(ctx context.Context, db *gorm.DB, code *entity.ICD10Code) error
}

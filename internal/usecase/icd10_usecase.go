package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/repository"
	"clinic-records/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// searchResultCap bounds reference searches; no ranking, pure substring
// filter ordered by code.
const searchResultCap = 20

type ICD10Usecase interface {
	Search(ctx context.Context, query string) (*dto.ICD10SearchResponse, error)
}

type icd10Usecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	icdRepo repository.ICD10Repository
	cache   *service.ICDCacheService
}

func NewICD10Usecase(
	db *gorm.DB,
	log *logrus.Logger,
	icdRepo repository.ICD10Repository,
	cache *service.ICDCacheService,
) ICD10Usecase {
	return &icd10Usecase{
		db:      db,
		log:     log,
		icdRepo: icdRepo,
		cache:   cache,
	}
}

// Search returns reference entries whose code or name contains the query.
// Trimmed input shorter than 2 characters returns an empty result without
// touching the store.
func (u *icd10Usecase) Search(ctx context.Context, query string) (*dto.ICD10SearchResponse, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return converter.ICD10CodesToSearchResponse(nil), nil
	}

	if u.cache != nil {
		if codes, ok := u.cache.GetSearch(ctx, query); ok {
			return converter.ICD10CodesToSearchResponse(codes), nil
		}
	}

	codes, err := u.icdRepo.Search(ctx, u.db, query, searchResultCap)
	if err != nil {
		u.log.Warnf("Failed to search ICD-10 codes: %+v", err)
		return nil, err
	}

	if u.cache != nil {
		u.cache.StoreSearch(ctx, query, codes)
	}
	return converter.ICD10CodesToSearchResponse(codes), nil
}

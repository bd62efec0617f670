package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"clinic-records/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const icdSearchKeyPrefix = "icd10:search:"

// ICDCacheService is a read-through cache for ICD-10 reference searches.
// Reference rows are immutable, so cached results cannot go stale beyond a
// missed bulk import; a short TTL covers that. The cache fails open: any
// redis error is logged and treated as a miss, and a nil client disables
// caching entirely.
type ICDCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewICDCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *ICDCacheService {
	return &ICDCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// SearchKey normalizes a query into its cache key.
func SearchKey(query string) string {
	return icdSearchKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}

// GetSearch returns cached results for the query, or (nil, false) on a miss.
func (s *ICDCacheService) GetSearch(ctx context.Context, query string) ([]entity.ICD10Code, bool) {
	if s.redisClient == nil {
		return nil, false
	}

	payload, err := s.redisClient.Get(ctx, SearchKey(query)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("ICD cache read failed: %+v", err)
		}
		return nil, false
	}

	var codes []entity.ICD10Code
	if err := json.Unmarshal(payload, &codes); err != nil {
		s.log.Warnf("ICD cache payload corrupt, ignoring: %+v", err)
		return nil, false
	}
	return codes, true
}

// StoreSearch caches results for the query.
func (s *ICDCacheService) StoreSearch(ctx context.Context, query string, codes []entity.ICD10Code) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(codes)
	if err != nil {
		s.log.Warnf("Failed to marshal ICD cache payload: %+v", err)
		return
	}
	if err := s.redisClient.Set(ctx, SearchKey(query), payload, s.ttl).Err(); err != nil {
		s.log.Warnf("ICD cache write failed: %+v", err)
	}
}

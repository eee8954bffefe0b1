package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"powerfed/internal/cache"
	"powerfed/internal/repository"
)

const performanceCacheTTL = 5 * time.Minute

// PerformanceService serves an athlete's chronological performance history.
type PerformanceService interface {
	History(ctx context.Context, athleteID uint) ([]repository.PerformanceRow, error)
}

type performanceService struct {
	resultRepo repository.ResultRepository
	cache      *cache.Client
}

// NewPerformanceService creates a new performance service.
func NewPerformanceService(resultRepo repository.ResultRepository, cache *cache.Client) PerformanceService {
	return &performanceService{
		resultRepo: resultRepo,
		cache:      cache,
	}
}

func performanceCacheKey(athleteID uint) string {
	return fmt.Sprintf("rendimiento:%d", athleteID)
}

// History retrieves the athlete's history with caching. Result writes
// invalidate the key.
func (s *performanceService) History(ctx context.Context, athleteID uint) ([]repository.PerformanceRow, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, performanceCacheKey(athleteID)); data != nil {
		var cached []repository.PerformanceRow
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.resultRepo.PerformanceHistory(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	// Cache the result
	if payload, err := json.Marshal(rows); err == nil {
		_ = s.cache.Set(ctx, performanceCacheKey(athleteID), payload, performanceCacheTTL)
	}

	return rows, nil
}

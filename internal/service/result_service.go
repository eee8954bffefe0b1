package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"powerfed/internal/cache"
	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// ResultService handles competition results. Total and Wilks score are
// recomputed from the lifts on every write; client-supplied values for the
// derived fields are ignored.
type ResultService interface {
	List(ctx context.Context) ([]model.Result, error)
	Get(ctx context.Context, id uint) (*model.Result, error)
	Create(ctx context.Context, result *model.Result) error
	Update(ctx context.Context, id uint, result *model.Result) (*model.Result, error)
	Delete(ctx context.Context, id uint) error
}

type resultService struct {
	repo        repository.ResultRepository
	athleteRepo repository.AthleteRepository
	cache       *cache.Client
}

// NewResultService creates a new result service.
func NewResultService(repo repository.ResultRepository, athleteRepo repository.AthleteRepository, cache *cache.Client) ResultService {
	return &resultService{
		repo:        repo,
		athleteRepo: athleteRepo,
		cache:       cache,
	}
}

func (s *resultService) List(ctx context.Context) ([]model.Result, error) {
	return s.repo.List(ctx)
}

func (s *resultService) Get(ctx context.Context, id uint) (*model.Result, error) {
	result, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *resultService) Create(ctx context.Context, result *model.Result) error {
	if err := s.score(ctx, result); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, result); err != nil {
		return err
	}
	s.invalidateHistory(ctx, result.AthleteID)
	return nil
}

func (s *resultService) Update(ctx context.Context, id uint, in *model.Result) (*model.Result, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.score(ctx, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return nil, err
	}
	s.invalidateHistory(ctx, in.AthleteID)
	if existing.AthleteID != in.AthleteID {
		s.invalidateHistory(ctx, existing.AthleteID)
	}
	return in, nil
}

func (s *resultService) Delete(ctx context.Context, id uint) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	s.invalidateHistory(ctx, existing.AthleteID)
	return nil
}

// score fills the derived Total and WilksScore fields. The athlete must exist
// because the gender selects the coefficient set.
func (s *resultService) score(ctx context.Context, result *model.Result) error {
	athlete, err := s.athleteRepo.FindByID(ctx, result.AthleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("load athlete %d: %w", result.AthleteID, err)
	}

	result.Total = result.Squat + result.BenchPress + result.Deadlift
	result.WilksScore = WilksScore(result.Total, result.WeightCategory, athlete.Gender == model.GenderFemale)
	return nil
}

func (s *resultService) invalidateHistory(ctx context.Context, athleteID uint) {
	_ = s.cache.Delete(ctx, performanceCacheKey(athleteID))
}

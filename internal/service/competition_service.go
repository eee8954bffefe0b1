package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// CompetitionService handles competition CRUD.
type CompetitionService interface {
	List(ctx context.Context) ([]model.Competition, error)
	Get(ctx context.Context, id uint) (*model.Competition, error)
	Create(ctx context.Context, competition *model.Competition) error
	Update(ctx context.Context, id uint, competition *model.Competition) (*model.Competition, error)
	Delete(ctx context.Context, id uint) error
}

type competitionService struct {
	repo repository.CompetitionRepository
}

// NewCompetitionService creates a new competition service.
func NewCompetitionService(repo repository.CompetitionRepository) CompetitionService {
	return &competitionService{repo: repo}
}

func (s *competitionService) List(ctx context.Context) ([]model.Competition, error) {
	return s.repo.List(ctx)
}

func (s *competitionService) Get(ctx context.Context, id uint) (*model.Competition, error) {
	competition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return competition, nil
}

func (s *competitionService) Create(ctx context.Context, competition *model.Competition) error {
	return s.repo.Create(ctx, competition)
}

func (s *competitionService) Update(ctx context.Context, id uint, in *model.Competition) (*model.Competition, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *competitionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// AthleteService handles athlete CRUD.
type AthleteService interface {
	List(ctx context.Context) ([]model.Athlete, error)
	Get(ctx context.Context, id uint) (*model.Athlete, error)
	Create(ctx context.Context, athlete *model.Athlete) error
	Update(ctx context.Context, id uint, athlete *model.Athlete) (*model.Athlete, error)
	Delete(ctx context.Context, id uint) error
}

type athleteService struct {
	repo repository.AthleteRepository
}

// NewAthleteService creates a new athlete service.
func NewAthleteService(repo repository.AthleteRepository) AthleteService {
	return &athleteService{repo: repo}
}

func (s *athleteService) List(ctx context.Context) ([]model.Athlete, error) {
	return s.repo.List(ctx)
}

func (s *athleteService) Get(ctx context.Context, id uint) (*model.Athlete, error) {
	athlete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return athlete, nil
}

func (s *athleteService) Create(ctx context.Context, athlete *model.Athlete) error {
	return s.repo.Create(ctx, athlete)
}

func (s *athleteService) Update(ctx context.Context, id uint, in *model.Athlete) (*model.Athlete, error) {
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

func (s *athleteService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

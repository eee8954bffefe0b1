package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// CoachService handles coach CRUD.
type CoachService interface {
	List(ctx context.Context) ([]model.Coach, error)
	Get(ctx context.Context, id uint) (*model.Coach, error)
	Create(ctx context.Context, coach *model.Coach) error
	Update(ctx context.Context, id uint, coach *model.Coach) (*model.Coach, error)
	Delete(ctx context.Context, id uint) error
}

type coachService struct {
	repo repository.CoachRepository
}

// NewCoachService creates a new coach service.
func NewCoachService(repo repository.CoachRepository) CoachService {
	return &coachService{repo: repo}
}

func (s *coachService) List(ctx context.Context) ([]model.Coach, error) {
	return s.repo.List(ctx)
}

func (s *coachService) Get(ctx context.Context, id uint) (*model.Coach, error) {
	coach, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return coach, nil
}

func (s *coachService) Create(ctx context.Context, coach *model.Coach) error {
	return s.repo.Create(ctx, coach)
}

func (s *coachService) Update(ctx context.Context, id uint, in *model.Coach) (*model.Coach, error) {
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

func (s *coachService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// TrainingService handles training session CRUD.
type TrainingService interface {
	List(ctx context.Context) ([]model.Training, error)
	ListByAthlete(ctx context.Context, athleteID uint) ([]model.Training, error)
	Get(ctx context.Context, id uint) (*model.Training, error)
	Create(ctx context.Context, training *model.Training) error
	Update(ctx context.Context, id uint, training *model.Training) (*model.Training, error)
	Delete(ctx context.Context, id uint) error
}

type trainingService struct {
	repo repository.TrainingRepository
}

// NewTrainingService creates a new training service.
func NewTrainingService(repo repository.TrainingRepository) TrainingService {
	return &trainingService{repo: repo}
}

func (s *trainingService) List(ctx context.Context) ([]model.Training, error) {
	return s.repo.List(ctx)
}

func (s *trainingService) ListByAthlete(ctx context.Context, athleteID uint) ([]model.Training, error) {
	return s.repo.ListByAthlete(ctx, athleteID)
}

func (s *trainingService) Get(ctx context.Context, id uint) (*model.Training, error) {
	training, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return training, nil
}

func (s *trainingService) Create(ctx context.Context, training *model.Training) error {
	return s.repo.Create(ctx, training)
}

func (s *trainingService) Update(ctx context.Context, id uint, in *model.Training) (*model.Training, error) {
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

func (s *trainingService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

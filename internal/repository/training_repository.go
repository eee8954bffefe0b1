package repository

import (
	"context"

	"gorm.io/gorm"

	"powerfed/internal/model"
)

// TrainingRepository defines persistence operations for entrenamientos.
type TrainingRepository interface {
	Create(ctx context.Context, training *model.Training) error
	Update(ctx context.Context, training *model.Training) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Training, error)
	List(ctx context.Context) ([]model.Training, error)
	ListByAthlete(ctx context.Context, athleteID uint) ([]model.Training, error)
}

type trainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository builds a GORM-backed repository.
func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

func (r *trainingRepository) Create(ctx context.Context, training *model.Training) error {
	return r.db.WithContext(ctx).Create(training).Error
}

func (r *trainingRepository) Update(ctx context.Context, training *model.Training) error {
	return r.db.WithContext(ctx).Save(training).Error
}

func (r *trainingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Training{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *trainingRepository) FindByID(ctx context.Context, id uint) (*model.Training, error) {
	var training model.Training
	if err := r.db.WithContext(ctx).First(&training, id).Error; err != nil {
		return nil, err
	}
	return &training, nil
}

func (r *trainingRepository) List(ctx context.Context) ([]model.Training, error) {
	var trainings []model.Training
	if err := r.db.WithContext(ctx).Order("fecha asc").Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *trainingRepository) ListByAthlete(ctx context.Context, athleteID uint) ([]model.Training, error) {
	var trainings []model.Training
	if err := r.db.WithContext(ctx).Where("atleta_id = ?", athleteID).Order("fecha asc").Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

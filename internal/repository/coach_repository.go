package repository

import (
	"context"

	"gorm.io/gorm"

	"powerfed/internal/model"
)

// CoachRepository defines persistence operations for entrenadores.
type CoachRepository interface {
	Create(ctx context.Context, coach *model.Coach) error
	Update(ctx context.Context, coach *model.Coach) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Coach, error)
	List(ctx context.Context) ([]model.Coach, error)
}

type coachRepository struct {
	db *gorm.DB
}

// NewCoachRepository builds a GORM-backed repository.
func NewCoachRepository(db *gorm.DB) CoachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *model.Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *coachRepository) Update(ctx context.Context, coach *model.Coach) error {
	return r.db.WithContext(ctx).Save(coach).Error
}

func (r *coachRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Coach{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *coachRepository) FindByID(ctx context.Context, id uint) (*model.Coach, error) {
	var coach model.Coach
	if err := r.db.WithContext(ctx).First(&coach, id).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) List(ctx context.Context) ([]model.Coach, error) {
	var coaches []model.Coach
	if err := r.db.WithContext(ctx).Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

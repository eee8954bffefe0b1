package repository

import (
	"context"

	"gorm.io/gorm"

	"powerfed/internal/model"
)

// AthleteRepository defines persistence operations for atletas.
type AthleteRepository interface {
	Create(ctx context.Context, athlete *model.Athlete) error
	Update(ctx context.Context, athlete *model.Athlete) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Athlete, error)
	List(ctx context.Context) ([]model.Athlete, error)
}

type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository builds a GORM-backed repository.
func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(ctx context.Context, athlete *model.Athlete) error {
	return r.db.WithContext(ctx).Create(athlete).Error
}

func (r *athleteRepository) Update(ctx context.Context, athlete *model.Athlete) error {
	return r.db.WithContext(ctx).Save(athlete).Error
}

func (r *athleteRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Athlete{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *athleteRepository) FindByID(ctx context.Context, id uint) (*model.Athlete, error) {
	var athlete model.Athlete
	if err := r.db.WithContext(ctx).First(&athlete, id).Error; err != nil {
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) List(ctx context.Context) ([]model.Athlete, error) {
	var athletes []model.Athlete
	if err := r.db.WithContext(ctx).Find(&athletes).Error; err != nil {
		return nil, err
	}
	return athletes, nil
}

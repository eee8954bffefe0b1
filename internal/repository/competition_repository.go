package repository

import (
	"context"

	"gorm.io/gorm"

	"powerfed/internal/model"
)

// CompetitionRepository defines persistence operations for competencias.
type CompetitionRepository interface {
	Create(ctx context.Context, competition *model.Competition) error
	Update(ctx context.Context, competition *model.Competition) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Competition, error)
	List(ctx context.Context) ([]model.Competition, error)
}

type competitionRepository struct {
	db *gorm.DB
}

// NewCompetitionRepository builds a GORM-backed repository.
func NewCompetitionRepository(db *gorm.DB) CompetitionRepository {
	return &competitionRepository{db: db}
}

func (r *competitionRepository) Create(ctx context.Context, competition *model.Competition) error {
	return r.db.WithContext(ctx).Create(competition).Error
}

func (r *competitionRepository) Update(ctx context.Context, competition *model.Competition) error {
	return r.db.WithContext(ctx).Save(competition).Error
}

func (r *competitionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Competition{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *competitionRepository) FindByID(ctx context.Context, id uint) (*model.Competition, error) {
	var competition model.Competition
	if err := r.db.WithContext(ctx).First(&competition, id).Error; err != nil {
		return nil, err
	}
	return &competition, nil
}

func (r *competitionRepository) List(ctx context.Context) ([]model.Competition, error) {
	var competitions []model.Competition
	if err := r.db.WithContext(ctx).Order("fecha asc").Find(&competitions).Error; err != nil {
		return nil, err
	}
	return competitions, nil
}

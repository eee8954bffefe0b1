package repository

import (
	"context"

	"gorm.io/gorm"

	"powerfed/internal/model"
)

// PlanRepository defines persistence operations for generated plans.
type PlanRepository interface {
	CreateNutritionPlan(ctx context.Context, plan *model.NutritionPlan) error
	NutritionPlansByAthlete(ctx context.Context, athleteID uint) ([]model.NutritionPlan, error)
	CreateTrainingPlan(ctx context.Context, plan *model.TrainingPlan) error
	TrainingPlansByAthlete(ctx context.Context, athleteID uint) ([]model.TrainingPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository builds a GORM-backed repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) CreateNutritionPlan(ctx context.Context, plan *model.NutritionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) NutritionPlansByAthlete(ctx context.Context, athleteID uint) ([]model.NutritionPlan, error) {
	var plans []model.NutritionPlan
	if err := r.db.WithContext(ctx).Where("atleta_id = ?", athleteID).Order("created_at desc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) CreateTrainingPlan(ctx context.Context, plan *model.TrainingPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) TrainingPlansByAthlete(ctx context.Context, athleteID uint) ([]model.TrainingPlan, error) {
	var plans []model.TrainingPlan
	if err := r.db.WithContext(ctx).Where("atleta_id = ?", athleteID).Order("created_at desc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

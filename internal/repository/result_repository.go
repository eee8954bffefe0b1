package repository

import (
	"context"

	"gorm.io/gorm"

	"powerfed/internal/model"
)

// PerformanceRow is one point of an athlete's performance history, derived
// from resultados joined with the competition date.
type PerformanceRow struct {
	Date       string  `json:"fecha" gorm:"column:fecha"`
	Squat      float64 `json:"sentadilla" gorm:"column:sentadilla"`
	BenchPress float64 `json:"press_banca" gorm:"column:press_banca"`
	Deadlift   float64 `json:"peso_muerto" gorm:"column:peso_muerto"`
	Total      float64 `json:"total" gorm:"column:total"`
	Bodyweight float64 `json:"peso_corporal" gorm:"column:peso_corporal"`
	Wilks      float64 `json:"wilks" gorm:"column:wilks"`
}

// ResultRepository defines persistence operations for resultados.
type ResultRepository interface {
	Create(ctx context.Context, result *model.Result) error
	Update(ctx context.Context, result *model.Result) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Result, error)
	List(ctx context.Context) ([]model.Result, error)
	ListByAthlete(ctx context.Context, athleteID uint) ([]model.Result, error)
	PerformanceHistory(ctx context.Context, athleteID uint) ([]PerformanceRow, error)
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository builds a GORM-backed repository.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *resultRepository) Update(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Save(result).Error
}

func (r *resultRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Result{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resultRepository) FindByID(ctx context.Context, id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) List(ctx context.Context) ([]model.Result, error) {
	var results []model.Result
	if err := r.db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) ListByAthlete(ctx context.Context, athleteID uint) ([]model.Result, error) {
	var results []model.Result
	if err := r.db.WithContext(ctx).Where("atleta_id = ?", athleteID).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// PerformanceHistory returns the athlete's results in competition-date order.
func (r *resultRepository) PerformanceHistory(ctx context.Context, athleteID uint) ([]PerformanceRow, error) {
	var rows []PerformanceRow
	err := r.db.WithContext(ctx).
		Table("resultados").
		Select("competencias.fecha as fecha, resultados.sentadilla, resultados.press_banca, resultados.peso_muerto, resultados.total, resultados.categoria_peso as peso_corporal, resultados.wilks_score as wilks").
		Joins("join competencias on competencias.id = resultados.competencia_id").
		Where("resultados.atleta_id = ?", athleteID).
		Order("competencias.fecha asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

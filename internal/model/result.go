package model

import "time"

// Result represents an athlete's lifts at one competition. Total and
// WilksScore are derived from the lifts and bodyweight, never client-supplied.
type Result struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CompetitionID  uint      `json:"competencia_id" gorm:"column:competencia_id;not null;index"`
	AthleteID      uint      `json:"atleta_id" gorm:"column:atleta_id;not null;index"`
	Squat          float64   `json:"sentadilla" gorm:"column:sentadilla"`
	BenchPress     float64   `json:"press_banca" gorm:"column:press_banca"`
	Deadlift       float64   `json:"peso_muerto" gorm:"column:peso_muerto"`
	WeightCategory float64   `json:"categoria_peso" gorm:"column:categoria_peso"`
	Total          float64   `json:"total" gorm:"column:total"`
	WilksScore     float64   `json:"wilks_score" gorm:"column:wilks_score"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName keeps the original schema name.
func (Result) TableName() string { return "resultados" }

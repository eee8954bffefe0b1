package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionPlan stores one generated nutrition plan for an athlete. The
// generated payload (meals, macros, free text) is kept as JSON text because
// its shape is owned by the generator, not the schema.
type NutritionPlan struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	AthleteID     uint      `json:"atleta_id" gorm:"column:atleta_id;not null;index"`
	Goal          string    `json:"objetivo" gorm:"column:objetivo;size:100"`
	CurrentWeight float64   `json:"peso_actual" gorm:"column:peso_actual"`
	TargetWeight  float64   `json:"peso_objetivo" gorm:"column:peso_objetivo"`
	ActivityLevel string    `json:"actividad_nivel" gorm:"column:actividad_nivel;size:20"`
	Restrictions  string    `json:"restricciones" gorm:"column:restricciones;type:text"`
	DurationWeeks int       `json:"duracion_semanas" gorm:"column:duracion_semanas"`
	Payload       string    `json:"plan" gorm:"column:plan;type:text"`
	CreatedAt     time.Time `json:"fecha_creacion"`
}

// TableName keeps the original schema name.
func (NutritionPlan) TableName() string { return "planes_alimentacion" }

// BeforeCreate sets UUID before creating the record.
func (p *NutritionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TrainingPlan stores one generated training plan for an athlete.
type TrainingPlan struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	AthleteID     uint      `json:"atleta_id" gorm:"column:atleta_id;not null;index"`
	Goal          string    `json:"objetivo" gorm:"column:objetivo;size:100"`
	Level         string    `json:"nivel" gorm:"column:nivel;size:20"`
	DaysPerWeek   int       `json:"dias_por_semana" gorm:"column:dias_por_semana"`
	DurationWeeks int       `json:"duracion_semanas" gorm:"column:duracion_semanas"`
	Payload       string    `json:"plan" gorm:"column:plan;type:text"`
	CreatedAt     time.Time `json:"fecha_creacion"`
}

// TableName keeps the original schema name.
func (TrainingPlan) TableName() string { return "planes_entrenamiento" }

// BeforeCreate sets UUID before creating the record.
func (p *TrainingPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package model

import "time"

// Training represents a logged training session for an athlete.
type Training struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AthleteID   uint      `json:"atleta_id" gorm:"column:atleta_id;not null;index"`
	Date        string    `json:"fecha" gorm:"column:fecha;size:10"`
	Description string    `json:"descripcion" gorm:"column:descripcion;type:text"`
	Duration    int       `json:"duracion" gorm:"column:duracion"` // minutes
	Intensity   string    `json:"intensidad" gorm:"column:intensidad;size:20"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the original schema name.
func (Training) TableName() string { return "entrenamientos" }

package model

import "time"

// Coach represents a federation coach.
type Coach struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FirstName  string    `json:"nombre" gorm:"column:nombre;size:100;not null"`
	LastName   string    `json:"apellido" gorm:"column:apellido;size:100;not null"`
	Experience string    `json:"experiencia" gorm:"column:experiencia;type:text"`
	Email      string    `json:"email" gorm:"size:255"`
	Phone      string    `json:"telefono" gorm:"column:telefono;size:50"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName keeps the original schema name.
func (Coach) TableName() string { return "entrenadores" }

package model

import "time"

// Athlete represents a registered competitor.
type Athlete struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"nombre" gorm:"column:nombre;size:100;not null"`
	LastName  string    `json:"apellido" gorm:"column:apellido;size:100;not null"`
	BirthDate string    `json:"fecha_nacimiento" gorm:"column:fecha_nacimiento;size:10"`
	Gender    string    `json:"genero" gorm:"column:genero;size:20"`
	Country   string    `json:"pais" gorm:"column:pais;size:100"`
	City      string    `json:"ciudad" gorm:"column:ciudad;size:100"`
	Email     string    `json:"email" gorm:"size:255"`
	Phone     string    `json:"telefono" gorm:"column:telefono;size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the original schema name.
func (Athlete) TableName() string { return "atletas" }

// Gender values used for Wilks coefficient selection.
const (
	GenderMale   = "Masculino"
	GenderFemale = "Femenino"
)

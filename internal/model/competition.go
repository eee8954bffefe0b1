package model

import "time"

// Competition represents a scheduled meet.
type Competition struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nombre" gorm:"column:nombre;size:255;not null"`
	Date      string    `json:"fecha" gorm:"column:fecha;size:10"`
	Location  string    `json:"ubicacion" gorm:"column:ubicacion;size:255"`
	Type      string    `json:"tipo" gorm:"column:tipo;size:50"`
	Organizer string    `json:"organizador" gorm:"column:organizador;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the original schema name.
func (Competition) TableName() string { return "competencias" }

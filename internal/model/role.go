package model

// Role is a named permission bucket referenced by users.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;uniqueIndex;size:50;not null"`
	// Permisos carries optional free-form permission data as JSON text.
	Permisos string `json:"permisos,omitempty" gorm:"column:permisos;type:text"`
}

// TableName keeps the original schema name.
func (Role) TableName() string { return "roles" }

// Canonical role names seeded by cmd/seed.
const (
	RoleAdmin     = "Administrador"
	RoleCoach     = "Entrenador"
	RoleOrganizer = "Organizador"
)

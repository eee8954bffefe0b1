package model

import "time"

// User represents a system operator stored in the usuarios table.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"nombre_usuario" gorm:"column:nombre_usuario;uniqueIndex;size:50;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"column:contrasena_hash;size:255;not null"` // Never expose in JSON
	RoleID       *uint      `json:"rol_id" gorm:"column:rol_id"`
	Active       bool       `json:"activo" gorm:"column:activo;default:true"`
	LastLogin    *time.Time `json:"ultimo_login,omitempty" gorm:"column:ultimo_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Role *Role `json:"rol,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName keeps the original schema name.
func (User) TableName() string { return "usuarios" }

// RoleName returns the joined role name or "" for unassigned users.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

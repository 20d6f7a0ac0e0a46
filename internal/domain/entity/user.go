package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User usuario del sistema (tienda única).
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | vendedor
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

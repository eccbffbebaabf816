package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
)

// User dueño (tenant) de todos los registros de inventario.
// El email es único; el password se guarda como hash bcrypt.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

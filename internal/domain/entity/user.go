package entity

import "time"

// User representa un usuario del sistema.
// Username es único (comparación exacta, sensible a mayúsculas).
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// User representa un usuario del sistema escolar (administrador, funcionario o estudiante).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff, student
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

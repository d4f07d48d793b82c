package entity

import "time"

// AuditLog registra la actividad de los usuarios (login, creación, aprobación...).
// Append-only.
type AuditLog struct {
	ID        string
	UserID    string
	Action    string // ej: "login", "item.create", "request.approve"
	Detail    string
	CreatedAt time.Time
}

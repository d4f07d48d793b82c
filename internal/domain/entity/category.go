package entity

import "time"

// Category representa una categoría de artículos del inventario (ej: útiles, deportes, laboratorio).
type Category struct {
	ID          string
	Name        string // único
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

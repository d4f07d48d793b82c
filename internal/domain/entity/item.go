package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario escolar.
//
// Reglas de stock (aplicadas por filtros de consulta, no por constraints):
//   - "stock bajo":  Active y Quantity <= Minimum
//   - "agotado":     Quantity == 0
type Item struct {
	ID         string
	Code       string // código único del artículo
	Name       string
	CategoryID string
	Quantity   int // existencias actuales
	Minimum    int // umbral mínimo antes de alerta
	UnitPrice  decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

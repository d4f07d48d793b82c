package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn     = "in"     // entrada (compra, donación)
	MovementTypeOut    = "out"    // salida (entrega a estudiante)
	MovementTypeAdjust = "adjust" // ajuste manual de inventario
)

// StockMovement es el registro de auditoría de cada cambio de existencias.
// Append-only: nunca se actualiza ni se elimina.
type StockMovement struct {
	ID          string
	ItemID      string
	Type        string // in, out, adjust
	Quantity    int    // siempre positivo; Type indica la dirección
	StockBefore int
	StockAfter  int
	Reason      string
	CreatedBy   string // UserID
	CreatedAt   time.Time
}

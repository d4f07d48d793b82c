package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distribution representa la entrega física de un artículo a un estudiante.
// Se crea una sola vez por solicitud aprobada y es inmutable después.
type Distribution struct {
	ID            string
	RequestID     string
	StudentID     string // receptor
	ItemID        string
	Quantity      int
	DistributedBy string          // UserID del funcionario que entrega
	TotalValue    decimal.Decimal // Quantity * Item.UnitPrice al momento de la entrega
	CreatedAt     time.Time
}

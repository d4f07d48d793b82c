package repository

import "github.com/tu-usuario/inventario-escolar/internal/domain/entity"

// StockMovementRepository define el puerto para el historial de movimientos (append-only).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
}

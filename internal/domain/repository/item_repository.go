package repository

import "github.com/tu-usuario/inventario-escolar/internal/domain/entity"

// ItemFilters filtros opcionales para listar artículos. Campos vacíos no filtran.
type ItemFilters struct {
	CategoryID string
	LowStock   bool // solo artículos con Quantity <= Minimum
	Active     *bool
}

// ItemRepository define el puerto de persistencia para Item.
// El stock NO se modifica con Update: se ajusta vía UpdateStock dentro de una
// transacción junto con el StockMovement correspondiente.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateStock(itemID string, quantity int) error
	List(f ItemFilters, limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}

package repository

import "github.com/tu-usuario/inventario-escolar/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(activeOnly bool) ([]*entity.Category, error)
	Delete(id string) error
}

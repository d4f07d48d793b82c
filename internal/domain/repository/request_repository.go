package repository

import "github.com/tu-usuario/inventario-escolar/internal/domain/entity"

// RequestRepository define el puerto de persistencia para Request.
type RequestRepository interface {
	Create(request *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	Update(request *entity.Request) error
	ListByRequester(requesterID string, limit, offset int) ([]*entity.Request, error)
	List(status string, limit, offset int) ([]*entity.Request, error)
}

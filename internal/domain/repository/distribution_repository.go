package repository

import "github.com/tu-usuario/inventario-escolar/internal/domain/entity"

// DistributionRepository define el puerto de persistencia para Distribution.
// Las entregas son inmutables: no hay Update ni Delete.
type DistributionRepository interface {
	Create(distribution *entity.Distribution) error
	GetByID(id string) (*entity.Distribution, error)
	GetByRequestID(requestID string) (*entity.Distribution, error)
	List(limit, offset int) ([]*entity.Distribution, error)
}

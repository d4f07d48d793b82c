package repository

import "github.com/tu-usuario/inventario-escolar/internal/domain/entity"

// AuditLogRepository define el puerto para la bitácora de actividad (append-only).
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

// AuditRecorder registra acciones en la bitácora. Un fallo al escribir la
// bitácora no tumba la operación de negocio: se loguea y se sigue.
type AuditRecorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewAuditRecorder construye el recorder.
func NewAuditRecorder(repo repository.AuditLogRepository, log *logger.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, log: log}
}

// Record escribe una entrada en la bitácora con el actor explícito.
func (a *AuditRecorder) Record(userID, action, detail string) {
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := a.repo.Create(entry); err != nil {
		a.log.Warn().Err(err).
			Str("action", action).
			Str("user_id", userID).
			Msg("no se pudo registrar auditoría")
	}
}

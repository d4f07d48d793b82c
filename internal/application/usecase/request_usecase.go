package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

// RequestUseCase ciclo de vida de solicitudes: creación, aprobación, rechazo
// y cancelación. La entrega (distributed) la maneja DistributionUseCase.
//
// El actor llega siempre como parámetro explícito; nunca se infiere de
// estado compartido.
type RequestUseCase struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	audit       *AuditRecorder
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(requestRepo repository.RequestRepository, itemRepo repository.ItemRepository, audit *AuditRecorder) *RequestUseCase {
	return &RequestUseCase{requestRepo: requestRepo, itemRepo: itemRepo, audit: audit}
}

// Create registra una solicitud en estado pending. El artículo debe existir
// y estar activo; la cantidad debe ser positiva.
func (uc *RequestUseCase) Create(actorID string, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Active {
		return nil, domain.ErrNotFound
	}
	request := &entity.Request{
		ID:                uuid.New().String(),
		RequesterID:       actorID,
		ItemID:            in.ItemID,
		QuantityRequested: in.Quantity,
		Status:            entity.RequestPending,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "request.create", item.Code)
	return toRequestResponse(request), nil
}

// Get obtiene una solicitud. Los estudiantes solo pueden ver las propias.
func (uc *RequestUseCase) Get(actorID, actorRole, id string) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if actorRole == entity.RoleStudent && request.RequesterID != actorID {
		return nil, domain.ErrForbidden
	}
	return toRequestResponse(request), nil
}

// Approve aprueba una solicitud pendiente. Si in.QuantityApproved es 0 se
// aprueba la cantidad solicitada completa; nunca se aprueba más de lo pedido.
func (uc *RequestUseCase) Approve(actorID, id string, in dto.ApproveRequestRequest) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if !request.CanTransitionTo(entity.RequestApproved) {
		return nil, domain.ErrConflict
	}
	approved := in.QuantityApproved
	if approved == 0 {
		approved = request.QuantityRequested
	}
	if approved < 0 || approved > request.QuantityRequested {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	request.Status = entity.RequestApproved
	request.QuantityApproved = approved
	request.ApprovedBy = actorID
	request.ApprovedAt = &now
	if err := uc.requestRepo.Update(request); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "request.approve", request.ID)
	return toRequestResponse(request), nil
}

// Reject rechaza una solicitud pendiente.
func (uc *RequestUseCase) Reject(actorID, id string) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if !request.CanTransitionTo(entity.RequestRejected) {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	request.Status = entity.RequestRejected
	request.ApprovedBy = actorID
	request.ApprovedAt = &now
	if err := uc.requestRepo.Update(request); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "request.reject", request.ID)
	return toRequestResponse(request), nil
}

// Cancel cancela una solicitud pendiente o aprobada. Solo el solicitante o
// un admin pueden cancelar.
func (uc *RequestUseCase) Cancel(actorID, actorRole, id string) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if request.RequesterID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !request.CanTransitionTo(entity.RequestCancelled) {
		return nil, domain.ErrConflict
	}
	request.Status = entity.RequestCancelled
	if err := uc.requestRepo.Update(request); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "request.cancel", request.ID)
	return toRequestResponse(request), nil
}

// List lista solicitudes. Los estudiantes solo ven las propias; staff y
// admin pueden filtrar por estado.
func (uc *RequestUseCase) List(actorID, actorRole, status string, page dto.PageRequest) (*dto.RequestListResponse, error) {
	page.DefaultPage()

	var (
		requests []*entity.Request
		err      error
	)
	if actorRole == entity.RoleStudent {
		requests, err = uc.requestRepo.ListByRequester(actorID, page.Limit, page.Offset)
	} else {
		requests, err = uc.requestRepo.List(status, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, *toRequestResponse(r))
	}
	return &dto.RequestListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	}, nil
}

func toRequestResponse(r *entity.Request) *dto.RequestResponse {
	return &dto.RequestResponse{
		ID:                r.ID,
		RequesterID:       r.RequesterID,
		ItemID:            r.ItemID,
		QuantityRequested: r.QuantityRequested,
		QuantityApproved:  r.QuantityApproved,
		Status:            r.Status,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		ApprovedAt:        r.ApprovedAt,
		ApprovedBy:        r.ApprovedBy,
		FulfilledAt:       r.FulfilledAt,
	}
}

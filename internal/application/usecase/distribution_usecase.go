package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

// DistributionUseCase despacho de solicitudes aprobadas. La entrega, el
// descuento de stock, el movimiento y la transición a distributed confirman
// en una sola transacción: o pasa todo o no pasa nada.
type DistributionUseCase struct {
	distributionRepo repository.DistributionRepository
	tx               repository.TxRunner
	audit            *AuditRecorder
}

// NewDistributionUseCase construye el caso de uso.
func NewDistributionUseCase(distributionRepo repository.DistributionRepository, tx repository.TxRunner, audit *AuditRecorder) *DistributionUseCase {
	return &DistributionUseCase{distributionRepo: distributionRepo, tx: tx, audit: audit}
}

// Distribute entrega una solicitud aprobada. Dentro de la transacción:
// valida estado y stock, crea la entrega con el valor al precio vigente,
// descuenta existencias, registra el movimiento "out" y marca la solicitud
// como distributed.
func (uc *DistributionUseCase) Distribute(ctx context.Context, actorID string, in dto.DistributeRequest) (*dto.DistributionResponse, error) {
	var created *entity.Distribution

	err := uc.tx.WithinTransaction(ctx, func(repos repository.TxRepos) error {
		request, err := repos.Requests.GetByID(in.RequestID)
		if err != nil {
			return err
		}
		if request == nil {
			return domain.ErrNotFound
		}
		if !request.CanTransitionTo(entity.RequestDistributed) {
			return domain.ErrConflict
		}
		existing, err := repos.Distributions.GetByRequestID(request.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrConflict
		}

		item, err := repos.Items.GetByID(request.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		quantity := request.QuantityApproved
		if item.Quantity < quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		distribution := &entity.Distribution{
			ID:            uuid.New().String(),
			RequestID:     request.ID,
			StudentID:     request.RequesterID,
			ItemID:        item.ID,
			Quantity:      quantity,
			DistributedBy: actorID,
			TotalValue:    item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
			CreatedAt:     now,
		}
		if err := repos.Distributions.Create(distribution); err != nil {
			return err
		}

		after := item.Quantity - quantity
		if err := repos.Items.UpdateStock(item.ID, after); err != nil {
			return err
		}
		if err := repos.Movements.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        entity.MovementTypeOut,
			Quantity:    quantity,
			StockBefore: item.Quantity,
			StockAfter:  after,
			Reason:      "entrega de solicitud " + request.ID,
			CreatedBy:   actorID,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		request.Status = entity.RequestDistributed
		request.FulfilledAt = &now
		if err := repos.Requests.Update(request); err != nil {
			return err
		}

		created = distribution
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(actorID, "distribution.create", created.RequestID)
	return toDistributionResponse(created), nil
}

// Get obtiene una entrega por ID.
func (uc *DistributionUseCase) Get(id string) (*dto.DistributionResponse, error) {
	distribution, err := uc.distributionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if distribution == nil {
		return nil, domain.ErrNotFound
	}
	return toDistributionResponse(distribution), nil
}

// List lista entregas paginadas, más recientes primero.
func (uc *DistributionUseCase) List(page dto.PageRequest) (*dto.DistributionListResponse, error) {
	page.DefaultPage()
	distributions, err := uc.distributionRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DistributionResponse, 0, len(distributions))
	for _, d := range distributions {
		out = append(out, *toDistributionResponse(d))
	}
	return &dto.DistributionListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	}, nil
}

func toDistributionResponse(d *entity.Distribution) *dto.DistributionResponse {
	return &dto.DistributionResponse{
		ID:            d.ID,
		RequestID:     d.RequestID,
		StudentID:     d.StudentID,
		ItemID:        d.ItemID,
		Quantity:      d.Quantity,
		DistributedBy: d.DistributedBy,
		TotalValue:    d.TotalValue,
		CreatedAt:     d.CreatedAt,
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

// ItemUseCase CRUD de artículos y ajustes de stock. El stock nunca se edita
// directamente: todo cambio pasa por un movimiento transaccional con snapshot
// antes/después.
type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
	tx           repository.TxRunner
	audit        *AuditRecorder
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.StockMovementRepository,
	tx repository.TxRunner,
	audit *AuditRecorder,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
		tx:           tx,
		audit:        audit,
	}
}

// Create crea un artículo. El código es único y la categoría debe existir.
// El stock inicial queda registrado como movimiento "in"; artículo y
// movimiento confirman en la misma transacción para que el historial nunca
// pierda el primer movimiento.
func (uc *ItemUseCase) Create(ctx context.Context, actorID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" || strings.TrimSpace(in.Name) == "" || in.Quantity < 0 || in.Minimum < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.Item{
		ID:         uuid.New().String(),
		Code:       code,
		Name:       strings.TrimSpace(in.Name),
		CategoryID: in.CategoryID,
		Quantity:   in.Quantity,
		Minimum:    in.Minimum,
		UnitPrice:  in.UnitPrice,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.tx.WithinTransaction(ctx, func(repos repository.TxRepos) error {
		if err := repos.Items.Create(item); err != nil {
			return err
		}
		if in.Quantity == 0 {
			return nil
		}
		return repos.Movements.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        entity.MovementTypeIn,
			Quantity:    in.Quantity,
			StockBefore: 0,
			StockAfter:  in.Quantity,
			Reason:      "stock inicial",
			CreatedBy:   actorID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "item.create", code)
	return toItemResponse(item), nil
}

// Get obtiene un artículo por ID.
func (uc *ItemUseCase) Get(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update modifica los campos presentes (no nil). El stock no se toca aquí.
func (uc *ItemUseCase) Update(actorID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		item.CategoryID = *in.CategoryID
	}
	if in.Minimum != nil {
		if *in.Minimum < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Minimum = *in.Minimum
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "item.update", item.Code)
	return toItemResponse(item), nil
}

// List lista artículos con filtros opcionales y paginación.
func (uc *ItemUseCase) List(f repository.ItemFilters, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	}, nil
}

// AdjustStock aplica un movimiento sobre el artículo dentro de una
// transacción: relee el item, calcula el nuevo stock según el tipo y persiste
// existencias + movimiento juntos.
//
//   - in:     suma Quantity
//   - out:    resta Quantity (ErrInsufficientStock si no alcanza)
//   - adjust: fija las existencias exactamente en Quantity
func (uc *ItemUseCase) AdjustStock(ctx context.Context, actorID, itemID string, in dto.AdjustStockRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut && in.Type != entity.MovementTypeAdjust {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeAdjust && in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Item
	err := uc.tx.WithinTransaction(ctx, func(repos repository.TxRepos) error {
		item, err := repos.Items.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		before := item.Quantity
		after := before
		switch in.Type {
		case entity.MovementTypeIn:
			after = before + in.Quantity
		case entity.MovementTypeOut:
			if before < in.Quantity {
				return domain.ErrInsufficientStock
			}
			after = before - in.Quantity
		case entity.MovementTypeAdjust:
			after = in.Quantity
		}

		if err := repos.Items.UpdateStock(item.ID, after); err != nil {
			return err
		}
		moved := in.Quantity
		if in.Type == entity.MovementTypeAdjust {
			moved = abs(after - before)
		}
		if err := repos.Movements.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        in.Type,
			Quantity:    moved,
			StockBefore: before,
			StockAfter:  after,
			Reason:      in.Reason,
			CreatedBy:   actorID,
			CreatedAt:   time.Now(),
		}); err != nil {
			return err
		}
		item.Quantity = after
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "item.adjust", fmt.Sprintf("%s %s %d", updated.Code, in.Type, in.Quantity))
	return toItemResponse(updated), nil
}

// Movements lista el historial de movimientos de un artículo.
func (uc *ItemUseCase) Movements(itemID string, page dto.PageRequest) ([]*entity.StockMovement, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	return uc.movementRepo.ListByItem(itemID, page.Limit, page.Offset)
}

// Delete desactiva o elimina un artículo. Con historial de movimientos se
// desactiva en lugar de borrarse para no romper los reportes.
func (uc *ItemUseCase) Delete(actorID, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByItem(id, 1, 0)
	if err != nil {
		return err
	}
	if len(movements) > 0 {
		item.Active = false
		item.UpdatedAt = time.Now()
		if err := uc.itemRepo.Update(item); err != nil {
			return err
		}
		uc.audit.Record(actorID, "item.deactivate", item.Code)
		return nil
	}
	if err := uc.itemRepo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actorID, "item.delete", item.Code)
	return nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:         it.ID,
		Code:       it.Code,
		Name:       it.Name,
		CategoryID: it.CategoryID,
		Quantity:   it.Quantity,
		Minimum:    it.Minimum,
		UnitPrice:  it.UnitPrice,
		Active:     it.Active,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

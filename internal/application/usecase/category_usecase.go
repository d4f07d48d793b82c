package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. Solo admin escribe; todos leen.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	audit        *AuditRecorder
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, itemRepo repository.ItemRepository, audit *AuditRecorder) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, itemRepo: itemRepo, audit: audit}
}

// Create crea una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(actorID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "category.create", name)
	return toCategoryResponse(category), nil
}

// Get obtiene una categoría por ID.
func (uc *CategoryUseCase) Get(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update modifica los campos presentes (no nil) de la categoría.
func (uc *CategoryUseCase) Update(actorID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, "category.update", category.Name)
	return toCategoryResponse(category), nil
}

// List lista categorías; con activeOnly solo las activas.
func (uc *CategoryUseCase) List(activeOnly bool) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Delete elimina una categoría sin artículos asociados. Con artículos
// devuelve ErrConflict: primero hay que reasignarlos o desactivarlos.
func (uc *CategoryUseCase) Delete(actorID, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	items, err := uc.itemRepo.List(repository.ItemFilters{CategoryID: id}, 1, 0)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return domain.ErrConflict
	}
	if err := uc.categoryRepo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actorID, "category.delete", category.Name)
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

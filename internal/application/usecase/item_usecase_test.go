package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	created []*entity.Item
	byCode  map[string]*entity.Item
}

func (m *memItemRepo) Create(item *entity.Item) error {
	m.created = append(m.created, item)
	return nil
}
func (m *memItemRepo) GetByID(string) (*entity.Item, error) { return nil, nil }
func (m *memItemRepo) GetByCode(code string) (*entity.Item, error) {
	return m.byCode[code], nil
}
func (m *memItemRepo) Update(*entity.Item) error          { return nil }
func (m *memItemRepo) UpdateStock(string, int) error      { return nil }
func (m *memItemRepo) Delete(string) error                { return nil }
func (m *memItemRepo) List(repository.ItemFilters, int, int) ([]*entity.Item, error) {
	return nil, nil
}

type memCategoryRepo struct{}

func (memCategoryRepo) Create(*entity.Category) error { return nil }
func (memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return &entity.Category{ID: id, Name: "Útiles", Active: true}, nil
}
func (memCategoryRepo) GetByName(string) (*entity.Category, error)    { return nil, nil }
func (memCategoryRepo) Update(*entity.Category) error                 { return nil }
func (memCategoryRepo) List(bool) ([]*entity.Category, error)         { return nil, nil }
func (memCategoryRepo) Delete(string) error                           { return nil }

type memMovementRepo struct {
	createErr error
	created   []*entity.StockMovement
}

func (m *memMovementRepo) Create(mv *entity.StockMovement) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, mv)
	return nil
}
func (m *memMovementRepo) ListByItem(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type memAuditRepo struct{}

func (memAuditRepo) Create(*entity.AuditLog) error             { return nil }
func (memAuditRepo) List(int, int) ([]*entity.AuditLog, error) { return nil, nil }

// memTxRunner ejecuta fn directamente sobre los repos dados.
type memTxRunner struct {
	repos repository.TxRepos
}

func (m *memTxRunner) WithinTransaction(_ context.Context, fn func(repository.TxRepos) error) error {
	return fn(m.repos)
}

func buildItemUseCase(items *memItemRepo, movements *memMovementRepo) *ItemUseCase {
	audit := NewAuditRecorder(memAuditRepo{}, logger.New(logger.Config{Env: "production", Level: "error"}))
	tx := &memTxRunner{repos: repository.TxRepos{Items: items, Movements: movements}}
	return NewItemUseCase(items, memCategoryRepo{}, movements, tx, audit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — stock inicial
// ──────────────────────────────────────────────────────────────────────────────

// El stock inicial queda registrado como movimiento "in" con snapshot 0 -> q.
func TestItemCreate_RegistraMovimientoInicial(t *testing.T) {
	items := &memItemRepo{byCode: map[string]*entity.Item{}}
	movements := &memMovementRepo{}
	uc := buildItemUseCase(items, movements)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		Code:      "CUAD-01",
		Name:      "Cuaderno",
		Quantity:  25,
		Minimum:   10,
		UnitPrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, movements.created, 1)
	mv := movements.created[0]
	assert.Equal(t, entity.MovementTypeIn, mv.Type)
	assert.Equal(t, 0, mv.StockBefore)
	assert.Equal(t, 25, mv.StockAfter)
	assert.Equal(t, "stock inicial", mv.Reason)
	assert.Equal(t, "user-1", mv.CreatedBy)
	assert.Equal(t, out.ID, mv.ItemID)
}

// Si el movimiento inicial no se puede insertar, la creación completa falla:
// nunca queda un artículo con stock sin su primer movimiento.
func TestItemCreate_FalloDelMovimientoAbortaLaCreacion(t *testing.T) {
	items := &memItemRepo{byCode: map[string]*entity.Item{}}
	movements := &memMovementRepo{createErr: errors.New("insert falló")}
	uc := buildItemUseCase(items, movements)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		Code:      "LAP-02",
		Name:      "Lápiz",
		Quantity:  10,
		UnitPrice: decimal.NewFromInt(1),
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Empty(t, movements.created)
}

// Sin stock inicial no hay movimiento que registrar.
func TestItemCreate_SinStockInicialNoHayMovimiento(t *testing.T) {
	items := &memItemRepo{byCode: map[string]*entity.Item{}}
	movements := &memMovementRepo{}
	uc := buildItemUseCase(items, movements)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		Code:      "REG-03",
		Name:      "Regla",
		Quantity:  0,
		UnitPrice: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Empty(t, movements.created)
	require.Len(t, items.created, 1)
}

// Código duplicado se detecta antes de abrir la transacción.
func TestItemCreate_CodigoDuplicado(t *testing.T) {
	items := &memItemRepo{byCode: map[string]*entity.Item{
		"CUAD-01": {ID: "existing", Code: "CUAD-01"},
	}}
	uc := buildItemUseCase(items, &memMovementRepo{})

	_, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		Code:      "CUAD-01",
		Name:      "Cuaderno",
		Quantity:  5,
		UnitPrice: decimal.NewFromInt(2),
	})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, items.created)
}

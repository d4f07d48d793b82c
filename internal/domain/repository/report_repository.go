package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilters filtros opcionales compartidos por las consultas de reportes.
// Campos vacíos no aportan condición; no se valida el contenido (un valor
// malformado llega a la DB y falla allí).
type ReportFilters struct {
	StartDate    string // YYYY-MM-DD inclusive
	EndDate      string // YYYY-MM-DD inclusive
	CategoryID   string
	ItemID       string
	StudentID    string
	UserID       string
	Status       string
	Role         string
	MovementType string
	Action       string
}

// ── Resultados crudos (los produce la DB; el use case los convierte en DTO) ───

// InventoryTotals contadores globales del inventario.
type InventoryTotals struct {
	TotalItems int
	TotalStock int64
	TotalValue decimal.Decimal
	LowStock   int // Quantity <= Minimum
	OutOfStock int // Quantity == 0
}

// CategoryRollup agregado de artículos por categoría.
type CategoryRollup struct {
	Category   string
	ItemCount  int
	TotalStock int64
	TotalValue decimal.Decimal
}

// TopItemValue artículo del ranking por valor de inventario.
type TopItemValue struct {
	Code       string
	Name       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalValue decimal.Decimal
}

// MovementTypeTotals agregado de movimientos por tipo.
type MovementTypeTotals struct {
	Type          string
	Count         int
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// MovementRecord movimiento individual con joins de artículo y usuario.
type MovementRecord struct {
	ID          string
	ItemCode    string
	ItemName    string
	Type        string
	Quantity    int
	StockBefore int
	StockAfter  int
	Reason      string
	UserName    string
	CreatedAt   time.Time
}

// RequestStatusTotals contadores por estado más tiempos medios.
// Los promedios son nil cuando no hay solicitudes aprobadas/entregadas.
type RequestStatusTotals struct {
	Pending             int
	Approved            int
	Rejected            int
	Distributed         int
	Cancelled           int
	AvgDaysToApproval   *float64
	AvgDaysToFulfilment *float64
}

// RoleCount conteo agrupado por rol del usuario.
type RoleCount struct {
	Role  string
	Count int
}

// TopItemQuantity artículo del ranking por cantidad (solicitada o entregada).
type TopItemQuantity struct {
	Code          string
	Name          string
	TotalQuantity int64
}

// DistributionTotals agregado global de entregas.
type DistributionTotals struct {
	TotalDistributions int
	TotalValue         decimal.Decimal
	AverageValue       decimal.Decimal
	UniqueStudents     int
}

// RoleDistribution conteo y valor de entregas agrupado por rol del receptor.
type RoleDistribution struct {
	Role       string
	Count      int
	TotalValue decimal.Decimal
}

// LowStockItem artículo en o bajo el umbral mínimo. La DB lo ordena por
// severidad y ratio stock/mínimo; la etiqueta del nivel la asigna el use case.
type LowStockItem struct {
	Code          string
	Name          string
	Category      string
	Quantity      int
	Minimum       int
	UnitPrice     decimal.Decimal
	ShortageValue decimal.Decimal
}

// AlertLevelTotals resumen de faltante agrupado por severidad de alerta
// (0 = agotado, 1 = crítico, 2 = bajo; misma regla que reports.Severity).
type AlertLevelTotals struct {
	Severity      int
	Count         int
	ShortageValue decimal.Decimal
}

// ActivityTotals agregado global de la bitácora.
type ActivityTotals struct {
	TotalActions int
	ActiveUsers  int
	ActiveDays   int
}

// ActionCount conteo agrupado por tipo de acción.
type ActionCount struct {
	Action string
	Count  int
}

// ActiveUser usuario del ranking de actividad.
type ActiveUser struct {
	Name  string
	Role  string
	Count int
}

// ReportRepository define las consultas de lectura del subsistema de reportes.
// Las implementaciones son read-only; cada método ejecuta exactamente una
// consulta y los use cases las encadenan secuencialmente (sin transacción:
// los reportes son informativos, no un libro mayor autoritativo).
type ReportRepository interface {
	// ── Reporte de inventario ────────────────────────────────────────────────
	InventoryTotals(ctx context.Context, f ReportFilters) (InventoryTotals, error)
	CategoryBreakdown(ctx context.Context, f ReportFilters) ([]CategoryRollup, error)
	TopItemsByValue(ctx context.Context, f ReportFilters, limit int) ([]TopItemValue, error)

	// ── Reporte de movimientos de stock ──────────────────────────────────────
	MovementTotals(ctx context.Context, f ReportFilters) ([]MovementTypeTotals, error)
	RecentMovements(ctx context.Context, f ReportFilters, limit int) ([]MovementRecord, error)

	// ── Análisis de solicitudes ──────────────────────────────────────────────
	RequestStatusTotals(ctx context.Context, f ReportFilters) (RequestStatusTotals, error)
	RequestsByRole(ctx context.Context, f ReportFilters) ([]RoleCount, error)
	TopRequestedItems(ctx context.Context, f ReportFilters, limit int) ([]TopItemQuantity, error)

	// ── Reporte de entregas ──────────────────────────────────────────────────
	DistributionTotals(ctx context.Context, f ReportFilters) (DistributionTotals, error)
	DistributionsByRole(ctx context.Context, f ReportFilters) ([]RoleDistribution, error)
	TopDistributedItems(ctx context.Context, f ReportFilters, limit int) ([]TopItemQuantity, error)

	// ── Alerta de stock bajo ─────────────────────────────────────────────────
	LowStockItems(ctx context.Context, f ReportFilters) ([]LowStockItem, error)
	LowStockByLevel(ctx context.Context, f ReportFilters) ([]AlertLevelTotals, error)

	// ── Actividad de usuarios ────────────────────────────────────────────────
	ActivityTotals(ctx context.Context, f ReportFilters) (ActivityTotals, error)
	ActivityByAction(ctx context.Context, f ReportFilters) ([]ActionCount, error)
	TopActiveUsers(ctx context.Context, f ReportFilters, limit int) ([]ActiveUser, error)
}

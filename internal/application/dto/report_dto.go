package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportQuery parámetros opcionales comunes a los endpoints de reportes.
// Todo campo vacío se ignora al construir el WHERE.
type ReportQuery struct {
	StartDate    string `query:"startDate"` // YYYY-MM-DD
	EndDate      string `query:"endDate"`   // YYYY-MM-DD
	CategoryID   string `query:"categoryId"`
	ItemID       string `query:"itemId"`
	StudentID    string `query:"studentId"`
	UserID       string `query:"userId"`
	Status       string `query:"status"`
	Role         string `query:"role"`
	MovementType string `query:"type"`
	Action       string `query:"action"`
}

// ── Reporte de inventario ─────────────────────────────────────────────────────

// InventorySummaryDTO contadores globales del inventario.
type InventorySummaryDTO struct {
	TotalItems int             `json:"total_items"`
	TotalStock int64           `json:"total_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
}

// CategoryBreakdownDTO agregado por categoría, ordenado por valor descendente.
type CategoryBreakdownDTO struct {
	Category   string          `json:"category"`
	ItemCount  int             `json:"item_count"`
	TotalStock int64           `json:"total_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// TopItemDTO artículo del top 10 por valor de inventario.
type TopItemDTO struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// InventoryReportDTO respuesta de GET /api/reports/inventory.
type InventoryReportDTO struct {
	Summary           InventorySummaryDTO    `json:"summary"`
	CategoryBreakdown []CategoryBreakdownDTO `json:"categoryBreakdown"`
	TopItems          []TopItemDTO           `json:"topItems"`
}

// ── Reporte de movimientos ────────────────────────────────────────────────────

// MovementTypeDTO agregado por tipo de movimiento.
type MovementTypeDTO struct {
	Type          string          `json:"type"`
	Count         int             `json:"count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// MovementRecordDTO movimiento individual (join con artículo y usuario).
type MovementRecordDTO struct {
	ID          string    `json:"id"`
	ItemCode    string    `json:"item_code"`
	ItemName    string    `json:"item_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	Reason      string    `json:"reason"`
	UserName    string    `json:"user_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementReportDTO respuesta de GET /api/reports/movements.
type MovementReportDTO struct {
	ByType    []MovementTypeDTO   `json:"byType"`
	Movements []MovementRecordDTO `json:"movements"` // máx. 100, más recientes primero
}

// ── Análisis de solicitudes ───────────────────────────────────────────────────

// RequestSummaryDTO contadores por estado y tiempos medios.
type RequestSummaryDTO struct {
	Pending             int      `json:"pending"`
	Approved            int      `json:"approved"`
	Rejected            int      `json:"rejected"`
	Distributed         int      `json:"distributed"`
	Cancelled           int      `json:"cancelled"`
	AvgDaysToApproval   *float64 `json:"avg_days_to_approval"`
	AvgDaysToFulfilment *float64 `json:"avg_days_to_fulfilment"`
}

// RoleCountDTO conteo agrupado por rol.
type RoleCountDTO struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// TopItemQuantityDTO artículo del top 10 por cantidad.
type TopItemQuantityDTO struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// RequestReportDTO respuesta de GET /api/reports/requests.
type RequestReportDTO struct {
	Summary  RequestSummaryDTO    `json:"summary"`
	ByRole   []RoleCountDTO       `json:"byRole"`
	TopItems []TopItemQuantityDTO `json:"topItems"`
}

// ── Reporte de entregas ───────────────────────────────────────────────────────

// DistributionSummaryDTO agregado global de entregas.
type DistributionSummaryDTO struct {
	TotalDistributions int             `json:"total_distributions"`
	TotalValue         decimal.Decimal `json:"total_value"`
	AverageValue       decimal.Decimal `json:"average_value"`
	UniqueStudents     int             `json:"unique_students"`
}

// RoleDistributionDTO conteo y valor por rol del receptor.
type RoleDistributionDTO struct {
	Role       string          `json:"role"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// DistributionReportDTO respuesta de GET /api/reports/distributions.
type DistributionReportDTO struct {
	Summary  DistributionSummaryDTO `json:"summary"`
	ByRole   []RoleDistributionDTO  `json:"byRole"`
	TopItems []TopItemQuantityDTO   `json:"topItems"`
}

// ── Alerta de stock bajo ──────────────────────────────────────────────────────

// LowStockAlertDTO artículo en alerta, ordenado por severidad y ratio stock/mínimo.
type LowStockAlertDTO struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Minimum       int             `json:"minimum"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	AlertLevel    string          `json:"alert_level"` // Out of Stock | Critical | Low
	ShortageValue decimal.Decimal `json:"shortage_value"`
}

// AlertLevelSummaryDTO faltante agrupado por nivel de alerta.
type AlertLevelSummaryDTO struct {
	AlertLevel    string          `json:"alert_level"`
	Count         int             `json:"count"`
	ShortageValue decimal.Decimal `json:"shortage_value"`
}

// LowStockReportDTO respuesta de GET /api/reports/low-stock.
type LowStockReportDTO struct {
	Alerts  []LowStockAlertDTO     `json:"alerts"`
	ByLevel []AlertLevelSummaryDTO `json:"byLevel"`
}

// ── Actividad de usuarios ─────────────────────────────────────────────────────

// ActivitySummaryDTO agregado global de la bitácora.
type ActivitySummaryDTO struct {
	TotalActions int `json:"total_actions"`
	ActiveUsers  int `json:"active_users"`
	ActiveDays   int `json:"active_days"`
}

// ActionCountDTO conteo por tipo de acción, descendente.
type ActionCountDTO struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// ActiveUserDTO usuario del top 10 de actividad.
type ActiveUserDTO struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// ActivityReportDTO respuesta de GET /api/reports/activity.
type ActivityReportDTO struct {
	Summary  ActivitySummaryDTO `json:"summary"`
	ByAction []ActionCountDTO   `json:"byAction"`
	TopUsers []ActiveUserDTO    `json:"topUsers"`
}

// ── Export ────────────────────────────────────────────────────────────────────

// ReportExportDTO respuesta de GET /api/reports/:kind/export.
type ReportExportDTO struct {
	Kind string `json:"kind"`
	Path string `json:"path"` // ruta del PDF generado bajo REPORTS_DIR/YYYY/MM
}

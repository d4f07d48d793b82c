package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todos los contadores se recalculan desde las consultas de reportes;
// ninguno es un placeholder fijo.
type DashboardSummaryDTO struct {
	TotalItems       int             `json:"total_items"`
	TotalStock       int64           `json:"total_stock"`
	TotalValue       decimal.Decimal `json:"total_value"`
	LowStock         int             `json:"low_stock"`
	OutOfStock       int             `json:"out_of_stock"`
	PendingRequests  int             `json:"pending_requests"`
	ApprovedRequests int             `json:"approved_requests"`
	Distributions    int             `json:"distributions"`
	DistributedValue decimal.Decimal `json:"distributed_value"`
	TopItems         []TopItemDTO    `json:"top_items"` // top 5 por valor de inventario
}

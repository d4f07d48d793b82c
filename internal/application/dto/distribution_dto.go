package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DistributeRequest cuerpo de POST /api/distributions (entrega de una solicitud aprobada).
type DistributeRequest struct {
	RequestID string `json:"request_id"`
}

// DistributionResponse representación pública de una entrega (inmutable).
type DistributionResponse struct {
	ID            string          `json:"id"`
	RequestID     string          `json:"request_id"`
	StudentID     string          `json:"student_id"`
	ItemID        string          `json:"item_id"`
	Quantity      int             `json:"quantity"`
	DistributedBy string          `json:"distributed_by"`
	TotalValue    decimal.Decimal `json:"total_value"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DistributionListResponse listado paginado de entregas.
type DistributionListResponse struct {
	Items []DistributionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest cuerpo de POST /api/items.
type CreateItemRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Quantity   int             `json:"quantity"`
	Minimum    int             `json:"minimum"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// UpdateItemRequest cuerpo de PUT /api/items/:id. Campos nil no se tocan.
// El stock no se modifica por aquí: usar movimientos de ajuste.
type UpdateItemRequest struct {
	Name       *string          `json:"name"`
	CategoryID *string          `json:"category_id"`
	Minimum    *int             `json:"minimum"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	Active     *bool            `json:"active"`
}

// AdjustStockRequest cuerpo de POST /api/items/:id/adjust.
type AdjustStockRequest struct {
	Type     string `json:"type"`     // in, out, adjust
	Quantity int    `json:"quantity"` // positivo
	Reason   string `json:"reason"`
}

// ItemResponse representación pública de un artículo.
type ItemResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Quantity   int             `json:"quantity"`
	Minimum    int             `json:"minimum"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

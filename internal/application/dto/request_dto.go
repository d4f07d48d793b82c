package dto

import "time"

// CreateRequestRequest cuerpo de POST /api/requests (la hace el solicitante).
type CreateRequestRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// ApproveRequestRequest cuerpo de POST /api/requests/:id/approve.
// Si QuantityApproved es 0 se aprueba la cantidad solicitada completa.
type ApproveRequestRequest struct {
	QuantityApproved int `json:"quantity_approved"`
}

// RequestResponse representación pública de una solicitud.
type RequestResponse struct {
	ID                string     `json:"id"`
	RequesterID       string     `json:"requester_id"`
	ItemID            string     `json:"item_id"`
	QuantityRequested int        `json:"quantity_requested"`
	QuantityApproved  int        `json:"quantity_approved"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	FulfilledAt       *time.Time `json:"fulfilled_at,omitempty"`
}

// RequestListResponse listado paginado de solicitudes.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

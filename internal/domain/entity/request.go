package entity

import "time"

// Estados válidos de una solicitud. "distributed" es terminal: existe una
// entrega (Distribution) asociada y la solicitud no puede volver atrás.
const (
	RequestPending     = "pending"
	RequestApproved    = "approved"
	RequestRejected    = "rejected"
	RequestDistributed = "distributed"
	RequestCancelled   = "cancelled"
)

// Request representa la solicitud de un artículo hecha por un usuario (normalmente un estudiante).
type Request struct {
	ID                string
	RequesterID       string
	ItemID            string
	QuantityRequested int
	QuantityApproved  int // 0 hasta que se aprueba
	Status            string
	Notes             string
	CreatedAt         time.Time
	ApprovedAt        *time.Time
	ApprovedBy        string // UserID del aprobador, vacío si pendiente
	FulfilledAt       *time.Time
}

// CanTransitionTo valida la máquina de estados de la solicitud.
func (r *Request) CanTransitionTo(status string) bool {
	switch r.Status {
	case RequestPending:
		return status == RequestApproved || status == RequestRejected || status == RequestCancelled
	case RequestApproved:
		return status == RequestDistributed || status == RequestCancelled
	default:
		// rejected, distributed y cancelled son terminales
		return false
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación del puerto RequestRepository sobre PostgreSQL (usable con pool o tx).
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

const requestColumns = `id, requester_id, item_id, quantity_requested, quantity_approved,
	status, notes, approved_by, approved_at, fulfilled_at, created_at`

// Create persiste una nueva solicitud (estado inicial pending).
func (r *RequestRepo) Create(request *entity.Request) error {
	query := `
		INSERT INTO requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.RequesterID, request.ItemID,
		request.QuantityRequested, request.QuantityApproved,
		request.Status, request.Notes, request.ApprovedBy,
		request.ApprovedAt, request.FulfilledAt, request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)

	var req entity.Request
	err := row.Scan(&req.ID, &req.RequesterID, &req.ItemID,
		&req.QuantityRequested, &req.QuantityApproved,
		&req.Status, &req.Notes, &req.ApprovedBy,
		&req.ApprovedAt, &req.FulfilledAt, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &req, nil
}

// Update persiste la transición de estado y los campos de aprobación.
func (r *RequestRepo) Update(request *entity.Request) error {
	query := `
		UPDATE requests SET quantity_approved = $2, status = $3, approved_by = $4,
			approved_at = $5, fulfilled_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.QuantityApproved, request.Status,
		request.ApprovedBy, request.ApprovedAt, request.FulfilledAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

// ListByRequester lista las solicitudes de un solicitante (los estudiantes solo ven las suyas).
func (r *RequestRepo) ListByRequester(requesterID string, limit, offset int) ([]*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE requester_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, requesterID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	return scanRequests(rows)
}

// List lista solicitudes, opcionalmente filtradas por estado.
func (r *RequestRepo) List(status string, limit, offset int) ([]*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]*entity.Request, error) {
	defer rows.Close()

	var list []*entity.Request
	for rows.Next() {
		var req entity.Request
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.ItemID,
			&req.QuantityRequested, &req.QuantityApproved,
			&req.Status, &req.Notes, &req.ApprovedBy,
			&req.ApprovedAt, &req.FulfilledAt, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

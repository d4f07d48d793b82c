package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

var _ repository.DistributionRepository = (*DistributionRepo)(nil)

// DistributionRepo implementación del puerto DistributionRepository sobre
// PostgreSQL. Las entregas son inmutables: solo INSERT y SELECT.
type DistributionRepo struct {
	q Querier
}

// NewDistributionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistributionRepository(q Querier) *DistributionRepo {
	return &DistributionRepo{q: q}
}

const distributionColumns = `id, request_id, student_id, item_id, quantity, distributed_by, total_value, created_at`

// Create persiste una entrega dentro de la transacción de despacho.
func (r *DistributionRepo) Create(distribution *entity.Distribution) error {
	query := `
		INSERT INTO distributions (` + distributionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		distribution.ID, distribution.RequestID, distribution.StudentID,
		distribution.ItemID, distribution.Quantity, distribution.DistributedBy,
		distribution.TotalValue, distribution.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert distribution: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID.
func (r *DistributionRepo) GetByID(id string) (*entity.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get distribution")
}

// GetByRequestID obtiene la entrega asociada a una solicitud (máximo una).
func (r *DistributionRepo) GetByRequestID(requestID string) (*entity.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions WHERE request_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, requestID), "get distribution by request")
}

// List lista entregas paginadas, más recientes primero.
func (r *DistributionRepo) List(limit, offset int) ([]*entity.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Distribution
	for rows.Next() {
		var d entity.Distribution
		if err := rows.Scan(&d.ID, &d.RequestID, &d.StudentID, &d.ItemID,
			&d.Quantity, &d.DistributedBy, &d.TotalValue, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DistributionRepo) scanOne(row pgx.Row, op string) (*entity.Distribution, error) {
	var d entity.Distribution
	err := row.Scan(&d.ID, &d.RequestID, &d.StudentID, &d.ItemID,
		&d.Quantity, &d.DistributedBy, &d.TotalValue, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta unidades de trabajo transaccionales sobre el pool.
// Los repositorios entregados a fn comparten la misma pgx.Tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner de transacciones.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// WithinTransaction abre una transacción, liga los repositorios a ella y
// ejecuta fn. Cualquier error revierte todo; sin error, commit.
func (t *TxRunner) WithinTransaction(ctx context.Context, fn func(repository.TxRepos) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback tras commit es un no-op

	repos := repository.TxRepos{
		Items:         NewItemRepository(tx),
		Requests:      NewRequestRepository(tx),
		Distributions: NewDistributionRepository(tx),
		Movements:     NewStockMovementRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

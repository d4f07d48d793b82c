package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación read-only del puerto ReportRepository.
// Cada método ejecuta exactamente una consulta agregada; los use cases
// las encadenan en secuencia, sin transacción.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool (read-only).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// alertSeverityCase clasifica la severidad de alerta en SQL con la misma
// regla que reports.Severity: 0 agotado, 1 crítico (quantity*2 <= minimum),
// 2 bajo. Única expresión de clasificación del lado de la DB.
const alertSeverityCase = `CASE WHEN i.quantity = 0 THEN 0 WHEN i.quantity * 2 <= i.minimum THEN 1 ELSE 2 END`

// ── Reporte de inventario ────────────────────────────────────────────────────

func (r *ReportRepo) InventoryTotals(ctx context.Context, f repository.ReportFilters) (repository.InventoryTotals, error) {
	query, args := whereClause(`
		SELECT COUNT(*),
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(i.quantity * i.unit_price), 0),
			COUNT(*) FILTER (WHERE i.quantity <= i.minimum),
			COUNT(*) FILTER (WHERE i.quantity = 0)
		FROM items i
		WHERE i.active`, 1, []cond{
		{"i.category_id", "=", f.CategoryID},
	})

	var t repository.InventoryTotals
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&t.TotalItems, &t.TotalStock, &t.TotalValue, &t.LowStock, &t.OutOfStock)
	if err != nil {
		return t, fmt.Errorf("inventory totals: %w", err)
	}
	return t, nil
}

func (r *ReportRepo) CategoryBreakdown(ctx context.Context, f repository.ReportFilters) ([]repository.CategoryRollup, error) {
	query, args := whereClause(`
		SELECT c.name, COUNT(i.id),
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(i.quantity * i.unit_price), 0)
		FROM items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.active`, 1, []cond{
		{"i.category_id", "=", f.CategoryID},
	})
	query += ` GROUP BY c.name ORDER BY SUM(i.quantity * i.unit_price) DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryRollup
	for rows.Next() {
		var c repository.CategoryRollup
		if err := rows.Scan(&c.Category, &c.ItemCount, &c.TotalStock, &c.TotalValue); err != nil {
			return nil, fmt.Errorf("scan category rollup: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ReportRepo) TopItemsByValue(ctx context.Context, f repository.ReportFilters, limit int) ([]repository.TopItemValue, error) {
	query, args := whereClause(`
		SELECT i.code, i.name, i.quantity, i.unit_price, i.quantity * i.unit_price
		FROM items i
		WHERE i.active`, 1, []cond{
		{"i.category_id", "=", f.CategoryID},
	})
	query += fmt.Sprintf(` ORDER BY i.quantity * i.unit_price DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top items by value: %w", err)
	}
	defer rows.Close()

	var list []repository.TopItemValue
	for rows.Next() {
		var it repository.TopItemValue
		if err := rows.Scan(&it.Code, &it.Name, &it.Quantity, &it.UnitPrice, &it.TotalValue); err != nil {
			return nil, fmt.Errorf("scan top item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ── Reporte de movimientos de stock ──────────────────────────────────────────

func movementConds(f repository.ReportFilters) []cond {
	return []cond{
		{"m.created_at::date", ">=", f.StartDate},
		{"m.created_at::date", "<=", f.EndDate},
		{"m.item_id", "=", f.ItemID},
		{"i.category_id", "=", f.CategoryID},
		{"m.type", "=", f.MovementType},
		{"m.created_by", "=", f.UserID},
	}
}

func (r *ReportRepo) MovementTotals(ctx context.Context, f repository.ReportFilters) ([]repository.MovementTypeTotals, error) {
	query, args := whereClause(`
		SELECT m.type, COUNT(*),
			COALESCE(SUM(m.quantity), 0),
			COALESCE(SUM(m.quantity * i.unit_price), 0)
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		WHERE TRUE`, 1, movementConds(f))
	query += ` GROUP BY m.type ORDER BY m.type`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movement totals: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementTypeTotals
	for rows.Next() {
		var t repository.MovementTypeTotals
		if err := rows.Scan(&t.Type, &t.Count, &t.TotalQuantity, &t.TotalValue); err != nil {
			return nil, fmt.Errorf("scan movement totals: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *ReportRepo) RecentMovements(ctx context.Context, f repository.ReportFilters, limit int) ([]repository.MovementRecord, error) {
	query, args := whereClause(`
		SELECT m.id, i.code, i.name, m.type, m.quantity,
			m.stock_before, m.stock_after, m.reason, u.name, m.created_at
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		JOIN users u ON u.id = m.created_by
		WHERE TRUE`, 1, movementConds(f))
	query += fmt.Sprintf(` ORDER BY m.created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementRecord
	for rows.Next() {
		var m repository.MovementRecord
		if err := rows.Scan(&m.ID, &m.ItemCode, &m.ItemName, &m.Type, &m.Quantity,
			&m.StockBefore, &m.StockAfter, &m.Reason, &m.UserName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ── Análisis de solicitudes ──────────────────────────────────────────────────

func requestConds(f repository.ReportFilters) []cond {
	return []cond{
		{"r.created_at::date", ">=", f.StartDate},
		{"r.created_at::date", "<=", f.EndDate},
		{"r.item_id", "=", f.ItemID},
		{"r.status", "=", f.Status},
		{"u.role", "=", f.Role},
	}
}

func (r *ReportRepo) RequestStatusTotals(ctx context.Context, f repository.ReportFilters) (repository.RequestStatusTotals, error) {
	query, args := whereClause(`
		SELECT
			COUNT(*) FILTER (WHERE r.status = 'pending'),
			COUNT(*) FILTER (WHERE r.status = 'approved'),
			COUNT(*) FILTER (WHERE r.status = 'rejected'),
			COUNT(*) FILTER (WHERE r.status = 'distributed'),
			COUNT(*) FILTER (WHERE r.status = 'cancelled'),
			AVG(EXTRACT(EPOCH FROM (r.approved_at - r.created_at)) / 86400),
			AVG(EXTRACT(EPOCH FROM (r.fulfilled_at - r.created_at)) / 86400)
		FROM requests r
		JOIN users u ON u.id = r.requester_id
		WHERE TRUE`, 1, requestConds(f))

	var t repository.RequestStatusTotals
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&t.Pending, &t.Approved, &t.Rejected, &t.Distributed, &t.Cancelled,
		&t.AvgDaysToApproval, &t.AvgDaysToFulfilment)
	if err != nil {
		return t, fmt.Errorf("request status totals: %w", err)
	}
	return t, nil
}

func (r *ReportRepo) RequestsByRole(ctx context.Context, f repository.ReportFilters) ([]repository.RoleCount, error) {
	query, args := whereClause(`
		SELECT u.role, COUNT(*)
		FROM requests r
		JOIN users u ON u.id = r.requester_id
		WHERE TRUE`, 1, requestConds(f))
	query += ` GROUP BY u.role ORDER BY COUNT(*) DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("requests by role: %w", err)
	}
	defer rows.Close()

	var list []repository.RoleCount
	for rows.Next() {
		var c repository.RoleCount
		if err := rows.Scan(&c.Role, &c.Count); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ReportRepo) TopRequestedItems(ctx context.Context, f repository.ReportFilters, limit int) ([]repository.TopItemQuantity, error) {
	query, args := whereClause(`
		SELECT i.code, i.name, COALESCE(SUM(r.quantity_requested), 0)
		FROM requests r
		JOIN items i ON i.id = r.item_id
		JOIN users u ON u.id = r.requester_id
		WHERE TRUE`, 1, requestConds(f))
	query += fmt.Sprintf(` GROUP BY i.code, i.name ORDER BY SUM(r.quantity_requested) DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	return r.scanTopQuantities(ctx, query, args, "top requested items")
}

// ── Reporte de entregas ──────────────────────────────────────────────────────

func distributionConds(f repository.ReportFilters) []cond {
	return []cond{
		{"d.created_at::date", ">=", f.StartDate},
		{"d.created_at::date", "<=", f.EndDate},
		{"d.item_id", "=", f.ItemID},
		{"d.student_id", "=", f.StudentID},
		{"i.category_id", "=", f.CategoryID},
	}
}

func (r *ReportRepo) DistributionTotals(ctx context.Context, f repository.ReportFilters) (repository.DistributionTotals, error) {
	query, args := whereClause(`
		SELECT COUNT(*),
			COALESCE(SUM(d.total_value), 0),
			COALESCE(AVG(d.total_value), 0),
			COUNT(DISTINCT d.student_id)
		FROM distributions d
		JOIN items i ON i.id = d.item_id
		WHERE TRUE`, 1, distributionConds(f))

	var t repository.DistributionTotals
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&t.TotalDistributions, &t.TotalValue, &t.AverageValue, &t.UniqueStudents)
	if err != nil {
		return t, fmt.Errorf("distribution totals: %w", err)
	}
	return t, nil
}

func (r *ReportRepo) DistributionsByRole(ctx context.Context, f repository.ReportFilters) ([]repository.RoleDistribution, error) {
	query, args := whereClause(`
		SELECT u.role, COUNT(*), COALESCE(SUM(d.total_value), 0)
		FROM distributions d
		JOIN items i ON i.id = d.item_id
		JOIN users u ON u.id = d.student_id
		WHERE TRUE`, 1, distributionConds(f))
	query += ` GROUP BY u.role ORDER BY COUNT(*) DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("distributions by role: %w", err)
	}
	defer rows.Close()

	var list []repository.RoleDistribution
	for rows.Next() {
		var d repository.RoleDistribution
		if err := rows.Scan(&d.Role, &d.Count, &d.TotalValue); err != nil {
			return nil, fmt.Errorf("scan role distribution: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *ReportRepo) TopDistributedItems(ctx context.Context, f repository.ReportFilters, limit int) ([]repository.TopItemQuantity, error) {
	query, args := whereClause(`
		SELECT i.code, i.name, COALESCE(SUM(d.quantity), 0)
		FROM distributions d
		JOIN items i ON i.id = d.item_id
		WHERE TRUE`, 1, distributionConds(f))
	query += fmt.Sprintf(` GROUP BY i.code, i.name ORDER BY SUM(d.quantity) DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	return r.scanTopQuantities(ctx, query, args, "top distributed items")
}

// ── Alerta de stock bajo ─────────────────────────────────────────────────────

func (r *ReportRepo) LowStockItems(ctx context.Context, f repository.ReportFilters) ([]repository.LowStockItem, error) {
	query, args := whereClause(`
		SELECT i.code, i.name, c.name, i.quantity, i.minimum, i.unit_price,
			GREATEST(i.minimum - i.quantity, 0) * i.unit_price
		FROM items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.active AND i.quantity <= i.minimum`, 1, []cond{
		{"i.category_id", "=", f.CategoryID},
	})
	// Agotados primero, luego críticos, luego bajos; dentro de cada nivel
	// el artículo con peor proporción stock/mínimo va antes.
	query += ` ORDER BY ` + alertSeverityCase + `,
		CASE WHEN i.minimum > 0 THEN i.quantity::numeric / i.minimum END ASC NULLS LAST`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()

	var list []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.Code, &it.Name, &it.Category, &it.Quantity,
			&it.Minimum, &it.UnitPrice, &it.ShortageValue); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *ReportRepo) LowStockByLevel(ctx context.Context, f repository.ReportFilters) ([]repository.AlertLevelTotals, error) {
	query, args := whereClause(`
		SELECT `+alertSeverityCase+` AS severity, COUNT(*),
			COALESCE(SUM(GREATEST(i.minimum - i.quantity, 0) * i.unit_price), 0)
		FROM items i
		WHERE i.active AND i.quantity <= i.minimum`, 1, []cond{
		{"i.category_id", "=", f.CategoryID},
	})
	query += ` GROUP BY severity ORDER BY severity`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("low stock by level: %w", err)
	}
	defer rows.Close()

	var list []repository.AlertLevelTotals
	for rows.Next() {
		var t repository.AlertLevelTotals
		if err := rows.Scan(&t.Severity, &t.Count, &t.ShortageValue); err != nil {
			return nil, fmt.Errorf("scan alert level: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ── Actividad de usuarios ────────────────────────────────────────────────────

func activityConds(f repository.ReportFilters) []cond {
	return []cond{
		{"a.created_at::date", ">=", f.StartDate},
		{"a.created_at::date", "<=", f.EndDate},
		{"a.user_id", "=", f.UserID},
		{"a.action", "=", f.Action},
		{"u.role", "=", f.Role},
	}
}

func (r *ReportRepo) ActivityTotals(ctx context.Context, f repository.ReportFilters) (repository.ActivityTotals, error) {
	query, args := whereClause(`
		SELECT COUNT(*), COUNT(DISTINCT a.user_id), COUNT(DISTINCT a.created_at::date)
		FROM audit_logs a
		JOIN users u ON u.id = a.user_id
		WHERE TRUE`, 1, activityConds(f))

	var t repository.ActivityTotals
	err := r.q.QueryRow(ctx, query, args...).Scan(&t.TotalActions, &t.ActiveUsers, &t.ActiveDays)
	if err != nil {
		return t, fmt.Errorf("activity totals: %w", err)
	}
	return t, nil
}

func (r *ReportRepo) ActivityByAction(ctx context.Context, f repository.ReportFilters) ([]repository.ActionCount, error) {
	query, args := whereClause(`
		SELECT a.action, COUNT(*)
		FROM audit_logs a
		JOIN users u ON u.id = a.user_id
		WHERE TRUE`, 1, activityConds(f))
	query += ` GROUP BY a.action ORDER BY COUNT(*) DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("activity by action: %w", err)
	}
	defer rows.Close()

	var list []repository.ActionCount
	for rows.Next() {
		var c repository.ActionCount
		if err := rows.Scan(&c.Action, &c.Count); err != nil {
			return nil, fmt.Errorf("scan action count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ReportRepo) TopActiveUsers(ctx context.Context, f repository.ReportFilters, limit int) ([]repository.ActiveUser, error) {
	query, args := whereClause(`
		SELECT u.name, u.role, COUNT(*)
		FROM audit_logs a
		JOIN users u ON u.id = a.user_id
		WHERE TRUE`, 1, activityConds(f))
	query += fmt.Sprintf(` GROUP BY u.name, u.role ORDER BY COUNT(*) DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top active users: %w", err)
	}
	defer rows.Close()

	var list []repository.ActiveUser
	for rows.Next() {
		var u repository.ActiveUser
		if err := rows.Scan(&u.Name, &u.Role, &u.Count); err != nil {
			return nil, fmt.Errorf("scan active user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (r *ReportRepo) scanTopQuantities(ctx context.Context, query string, args []any, op string) ([]repository.TopItemQuantity, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []repository.TopItemQuantity
	for rows.Next() {
		var it repository.TopItemQuantity
		if err := rows.Scan(&it.Code, &it.Name, &it.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan %s: %w", op, err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

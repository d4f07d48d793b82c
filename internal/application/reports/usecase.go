package reports

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

// Tipos de reporte expuestos por la API.
const (
	KindInventory     = "inventory"
	KindMovements     = "movements"
	KindRequests      = "requests"
	KindDistributions = "distributions"
	KindLowStock      = "low-stock"
	KindActivity      = "activity"
)

const (
	topN            = 10  // ranking de artículos/usuarios
	maxMovementRows = 100 // movimientos recientes por reporte
)

// UseCase orquesta los reportes de agregación. Cada reporte ejecuta sus
// consultas en secuencia (sin fan-out paralelo ni transacción): bajo
// escrituras concurrentes los sub-resultados pueden reflejar instantes
// ligeramente distintos, aceptable para reportes informativos.
//
// Cualquier fallo de consulta aborta el reporte completo; nunca se devuelven
// resultados parciales.
type UseCase struct {
	repo repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(repo repository.ReportRepository) *UseCase {
	return &UseCase{repo: repo}
}

// toFilters traduce los query params al filtro compartido del repositorio.
func toFilters(q dto.ReportQuery) repository.ReportFilters {
	return repository.ReportFilters{
		StartDate:    q.StartDate,
		EndDate:      q.EndDate,
		CategoryID:   q.CategoryID,
		ItemID:       q.ItemID,
		StudentID:    q.StudentID,
		UserID:       q.UserID,
		Status:       q.Status,
		Role:         q.Role,
		MovementType: q.MovementType,
		Action:       q.Action,
	}
}

// Inventory genera el resumen de inventario: contadores globales, desglose
// por categoría (por valor descendente) y top 10 artículos por valor.
func (uc *UseCase) Inventory(ctx context.Context, q dto.ReportQuery) (*dto.InventoryReportDTO, error) {
	f := toFilters(q)

	totals, err := uc.repo.InventoryTotals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: totales: %w", err)
	}
	breakdown, err := uc.repo.CategoryBreakdown(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: categorías: %w", err)
	}
	top, err := uc.repo.TopItemsByValue(ctx, f, topN)
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: top artículos: %w", err)
	}

	out := &dto.InventoryReportDTO{
		Summary: dto.InventorySummaryDTO{
			TotalItems: totals.TotalItems,
			TotalStock: totals.TotalStock,
			TotalValue: totals.TotalValue,
			LowStock:   totals.LowStock,
			OutOfStock: totals.OutOfStock,
		},
		CategoryBreakdown: make([]dto.CategoryBreakdownDTO, 0, len(breakdown)),
		TopItems:          make([]dto.TopItemDTO, 0, len(top)),
	}
	for _, c := range breakdown {
		out.CategoryBreakdown = append(out.CategoryBreakdown, dto.CategoryBreakdownDTO{
			Category:   c.Category,
			ItemCount:  c.ItemCount,
			TotalStock: c.TotalStock,
			TotalValue: c.TotalValue,
		})
	}
	for _, t := range top {
		out.TopItems = append(out.TopItems, dto.TopItemDTO{
			Code:       t.Code,
			Name:       t.Name,
			Quantity:   t.Quantity,
			UnitPrice:  t.UnitPrice,
			TotalValue: t.TotalValue,
		})
	}
	return out, nil
}

// Movements genera el reporte de movimientos: totales por tipo y hasta 100
// movimientos recientes (más nuevos primero) con join de artículo y usuario.
func (uc *UseCase) Movements(ctx context.Context, q dto.ReportQuery) (*dto.MovementReportDTO, error) {
	f := toFilters(q)

	byType, err := uc.repo.MovementTotals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte movimientos: totales: %w", err)
	}
	records, err := uc.repo.RecentMovements(ctx, f, maxMovementRows)
	if err != nil {
		return nil, fmt.Errorf("reporte movimientos: recientes: %w", err)
	}

	out := &dto.MovementReportDTO{
		ByType:    make([]dto.MovementTypeDTO, 0, len(byType)),
		Movements: make([]dto.MovementRecordDTO, 0, len(records)),
	}
	for _, t := range byType {
		out.ByType = append(out.ByType, dto.MovementTypeDTO{
			Type:          t.Type,
			Count:         t.Count,
			TotalQuantity: t.TotalQuantity,
			TotalValue:    t.TotalValue,
		})
	}
	for _, m := range records {
		out.Movements = append(out.Movements, dto.MovementRecordDTO{
			ID:          m.ID,
			ItemCode:    m.ItemCode,
			ItemName:    m.ItemName,
			Type:        m.Type,
			Quantity:    m.Quantity,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			Reason:      m.Reason,
			UserName:    m.UserName,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// Requests genera el análisis de solicitudes: contadores por estado con
// tiempos medios, desglose por rol del solicitante y top 10 artículos por
// cantidad solicitada.
func (uc *UseCase) Requests(ctx context.Context, q dto.ReportQuery) (*dto.RequestReportDTO, error) {
	f := toFilters(q)

	totals, err := uc.repo.RequestStatusTotals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte solicitudes: estados: %w", err)
	}
	byRole, err := uc.repo.RequestsByRole(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte solicitudes: roles: %w", err)
	}
	top, err := uc.repo.TopRequestedItems(ctx, f, topN)
	if err != nil {
		return nil, fmt.Errorf("reporte solicitudes: top artículos: %w", err)
	}

	out := &dto.RequestReportDTO{
		Summary: dto.RequestSummaryDTO{
			Pending:             totals.Pending,
			Approved:            totals.Approved,
			Rejected:            totals.Rejected,
			Distributed:         totals.Distributed,
			Cancelled:           totals.Cancelled,
			AvgDaysToApproval:   totals.AvgDaysToApproval,
			AvgDaysToFulfilment: totals.AvgDaysToFulfilment,
		},
		ByRole:   make([]dto.RoleCountDTO, 0, len(byRole)),
		TopItems: make([]dto.TopItemQuantityDTO, 0, len(top)),
	}
	for _, r := range byRole {
		out.ByRole = append(out.ByRole, dto.RoleCountDTO{Role: r.Role, Count: r.Count})
	}
	for _, t := range top {
		out.TopItems = append(out.TopItems, dto.TopItemQuantityDTO{
			Code: t.Code, Name: t.Name, TotalQuantity: t.TotalQuantity,
		})
	}
	return out, nil
}

// Distributions genera el reporte de entregas: totales globales, desglose por
// rol del receptor y top 10 artículos por cantidad entregada.
func (uc *UseCase) Distributions(ctx context.Context, q dto.ReportQuery) (*dto.DistributionReportDTO, error) {
	f := toFilters(q)

	totals, err := uc.repo.DistributionTotals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte entregas: totales: %w", err)
	}
	byRole, err := uc.repo.DistributionsByRole(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte entregas: roles: %w", err)
	}
	top, err := uc.repo.TopDistributedItems(ctx, f, topN)
	if err != nil {
		return nil, fmt.Errorf("reporte entregas: top artículos: %w", err)
	}

	out := &dto.DistributionReportDTO{
		Summary: dto.DistributionSummaryDTO{
			TotalDistributions: totals.TotalDistributions,
			TotalValue:         totals.TotalValue,
			AverageValue:       totals.AverageValue,
			UniqueStudents:     totals.UniqueStudents,
		},
		ByRole:   make([]dto.RoleDistributionDTO, 0, len(byRole)),
		TopItems: make([]dto.TopItemQuantityDTO, 0, len(top)),
	}
	for _, r := range byRole {
		out.ByRole = append(out.ByRole, dto.RoleDistributionDTO{
			Role: r.Role, Count: r.Count, TotalValue: r.TotalValue,
		})
	}
	for _, t := range top {
		out.TopItems = append(out.TopItems, dto.TopItemQuantityDTO{
			Code: t.Code, Name: t.Name, TotalQuantity: t.TotalQuantity,
		})
	}
	return out, nil
}

// LowStock genera la alerta de stock bajo: artículos en o bajo el mínimo,
// etiquetados por nivel y ordenados por severidad y ratio stock/mínimo, más
// el resumen de faltante agrupado por nivel. Ambas consultas comparten el
// mismo CASE de severidad en el repositorio; la etiqueta se asigna aquí con
// LevelName para que la regla de clasificación exista en un solo sitio.
func (uc *UseCase) LowStock(ctx context.Context, q dto.ReportQuery) (*dto.LowStockReportDTO, error) {
	f := toFilters(q)

	items, err := uc.repo.LowStockItems(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("alerta stock bajo: artículos: %w", err)
	}
	byLevel, err := uc.repo.LowStockByLevel(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("alerta stock bajo: resumen: %w", err)
	}

	out := &dto.LowStockReportDTO{
		Alerts:  make([]dto.LowStockAlertDTO, 0, len(items)),
		ByLevel: make([]dto.AlertLevelSummaryDTO, 0, len(byLevel)),
	}
	for _, it := range items {
		out.Alerts = append(out.Alerts, dto.LowStockAlertDTO{
			Code:          it.Code,
			Name:          it.Name,
			Category:      it.Category,
			Quantity:      it.Quantity,
			Minimum:       it.Minimum,
			UnitPrice:     it.UnitPrice,
			AlertLevel:    Level(it.Quantity, it.Minimum),
			ShortageValue: it.ShortageValue,
		})
	}
	for _, l := range byLevel {
		out.ByLevel = append(out.ByLevel, dto.AlertLevelSummaryDTO{
			AlertLevel:    LevelName(l.Severity),
			Count:         l.Count,
			ShortageValue: l.ShortageValue,
		})
	}
	return out, nil
}

// Activity genera el reporte de actividad de usuarios: agregado global,
// conteo por acción descendente y top 10 usuarios más activos.
func (uc *UseCase) Activity(ctx context.Context, q dto.ReportQuery) (*dto.ActivityReportDTO, error) {
	f := toFilters(q)

	totals, err := uc.repo.ActivityTotals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte actividad: totales: %w", err)
	}
	byAction, err := uc.repo.ActivityByAction(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte actividad: acciones: %w", err)
	}
	topUsers, err := uc.repo.TopActiveUsers(ctx, f, topN)
	if err != nil {
		return nil, fmt.Errorf("reporte actividad: top usuarios: %w", err)
	}

	out := &dto.ActivityReportDTO{
		Summary: dto.ActivitySummaryDTO{
			TotalActions: totals.TotalActions,
			ActiveUsers:  totals.ActiveUsers,
			ActiveDays:   totals.ActiveDays,
		},
		ByAction: make([]dto.ActionCountDTO, 0, len(byAction)),
		TopUsers: make([]dto.ActiveUserDTO, 0, len(topUsers)),
	}
	for _, a := range byAction {
		out.ByAction = append(out.ByAction, dto.ActionCountDTO{Action: a.Action, Count: a.Count})
	}
	for _, u := range topUsers {
		out.TopUsers = append(out.TopUsers, dto.ActiveUserDTO{Name: u.Name, Role: u.Role, Count: u.Count})
	}
	return out, nil
}

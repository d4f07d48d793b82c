package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

const dashboardTopN = 5

// DashboardUseCase arma el resumen del panel principal. Todos los contadores
// se recalculan con las mismas consultas que alimentan los reportes.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// Summary consulta inventario, solicitudes y entregas en paralelo (llamadas
// independientes) y compone el resumen.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	none := repository.ReportFilters{}

	type inventoryResult struct {
		totals repository.InventoryTotals
		err    error
	}
	type requestResult struct {
		totals repository.RequestStatusTotals
		err    error
	}
	type distributionResult struct {
		totals repository.DistributionTotals
		err    error
	}
	type topResult struct {
		items []repository.TopItemValue
		err   error
	}

	invChan := make(chan inventoryResult, 1)
	reqChan := make(chan requestResult, 1)
	distChan := make(chan distributionResult, 1)
	topChan := make(chan topResult, 1)

	go func() {
		totals, err := uc.reportRepo.InventoryTotals(ctx, none)
		invChan <- inventoryResult{totals, err}
	}()
	go func() {
		totals, err := uc.reportRepo.RequestStatusTotals(ctx, none)
		reqChan <- requestResult{totals, err}
	}()
	go func() {
		totals, err := uc.reportRepo.DistributionTotals(ctx, none)
		distChan <- distributionResult{totals, err}
	}()
	go func() {
		items, err := uc.reportRepo.TopItemsByValue(ctx, none, dashboardTopN)
		topChan <- topResult{items, err}
	}()

	inv := <-invChan
	req := <-reqChan
	dist := <-distChan
	top := <-topChan

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", inv.err)
	}
	if req.err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes: %w", req.err)
	}
	if dist.err != nil {
		return nil, fmt.Errorf("dashboard: entregas: %w", dist.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top artículos: %w", top.err)
	}

	topItems := make([]dto.TopItemDTO, 0, len(top.items))
	for _, it := range top.items {
		topItems = append(topItems, dto.TopItemDTO{
			Code:       it.Code,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalValue: it.TotalValue,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalItems:       inv.totals.TotalItems,
		TotalStock:       inv.totals.TotalStock,
		TotalValue:       inv.totals.TotalValue,
		LowStock:         inv.totals.LowStock,
		OutOfStock:       inv.totals.OutOfStock,
		PendingRequests:  req.totals.Pending,
		ApprovedRequests: req.totals.Approved,
		Distributions:    dist.totals.TotalDistributions,
		DistributedValue: dist.totals.TotalValue,
		TopItems:         topItems,
	}, nil
}

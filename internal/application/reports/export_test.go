package reports

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
)

// stubReportRepo devuelve agregados fijos: totales mayores que lo que cabe en
// la tabla de detalle top-N, para distinguir resumen de detalle.
type stubReportRepo struct{}

func (stubReportRepo) InventoryTotals(context.Context, repository.ReportFilters) (repository.InventoryTotals, error) {
	return repository.InventoryTotals{
		TotalItems: 42,
		TotalStock: 900,
		TotalValue: decimal.NewFromInt(5000),
		LowStock:   7,
		OutOfStock: 2,
	}, nil
}
func (stubReportRepo) CategoryBreakdown(context.Context, repository.ReportFilters) ([]repository.CategoryRollup, error) {
	return nil, nil
}
func (stubReportRepo) TopItemsByValue(context.Context, repository.ReportFilters, int) ([]repository.TopItemValue, error) {
	return []repository.TopItemValue{
		{Code: "CUAD-01", Name: "Cuaderno", Quantity: 100, UnitPrice: decimal.NewFromInt(2), TotalValue: decimal.NewFromInt(200)},
	}, nil
}
func (stubReportRepo) MovementTotals(context.Context, repository.ReportFilters) ([]repository.MovementTypeTotals, error) {
	return nil, nil
}
func (stubReportRepo) RecentMovements(context.Context, repository.ReportFilters, int) ([]repository.MovementRecord, error) {
	return nil, nil
}
func (stubReportRepo) RequestStatusTotals(context.Context, repository.ReportFilters) (repository.RequestStatusTotals, error) {
	return repository.RequestStatusTotals{}, nil
}
func (stubReportRepo) RequestsByRole(context.Context, repository.ReportFilters) ([]repository.RoleCount, error) {
	return nil, nil
}
func (stubReportRepo) TopRequestedItems(context.Context, repository.ReportFilters, int) ([]repository.TopItemQuantity, error) {
	return nil, nil
}
func (stubReportRepo) DistributionTotals(context.Context, repository.ReportFilters) (repository.DistributionTotals, error) {
	return repository.DistributionTotals{
		TotalDistributions: 3,
		TotalValue:         decimal.NewFromInt(30),
		AverageValue:       decimal.NewFromInt(10),
		UniqueStudents:     2,
	}, nil
}
func (stubReportRepo) DistributionsByRole(context.Context, repository.ReportFilters) ([]repository.RoleDistribution, error) {
	return nil, nil
}
func (stubReportRepo) TopDistributedItems(context.Context, repository.ReportFilters, int) ([]repository.TopItemQuantity, error) {
	return []repository.TopItemQuantity{{Code: "LAP-02", Name: "Lápiz", TotalQuantity: 6}}, nil
}
func (stubReportRepo) LowStockItems(context.Context, repository.ReportFilters) ([]repository.LowStockItem, error) {
	return nil, nil
}
func (stubReportRepo) LowStockByLevel(context.Context, repository.ReportFilters) ([]repository.AlertLevelTotals, error) {
	return nil, nil
}
func (stubReportRepo) ActivityTotals(context.Context, repository.ReportFilters) (repository.ActivityTotals, error) {
	return repository.ActivityTotals{}, nil
}
func (stubReportRepo) ActivityByAction(context.Context, repository.ReportFilters) ([]repository.ActionCount, error) {
	return nil, nil
}
func (stubReportRepo) TopActiveUsers(context.Context, repository.ReportFilters, int) ([]repository.ActiveUser, error) {
	return nil, nil
}

var _ repository.ReportRepository = stubReportRepo{}

// captureRenderer guarda lo que recibe para inspeccionarlo en el test.
type captureRenderer struct {
	title   string
	headers []string
	rows    [][]string
	summary map[string]interface{}
}

func (r *captureRenderer) Render(title string, headers []string, rows [][]string, summary map[string]interface{}) ([]byte, error) {
	r.title, r.headers, r.rows, r.summary = title, headers, rows, summary
	return []byte("%PDF"), nil
}

// El resumen del PDF sale de los agregados del reporte completo, no de las
// filas top-N de la tabla de detalle.
func TestExport_ResumenUsaAgregadosDelReporte(t *testing.T) {
	renderer := &captureRenderer{}
	e := NewExporter(NewUseCase(stubReportRepo{}), renderer, t.TempDir())

	out, err := e.Export(context.Background(), KindDistributions, dto.ReportQuery{})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 3, renderer.summary["Total Distributions"],
		"el total viene del agregado, no del largo de la tabla")
	assert.Equal(t, 2, renderer.summary["Unique Students Served"])
	assert.Contains(t, renderer.summary["Total Value"], "30")
	require.Len(t, renderer.rows, 1, "la tabla sigue siendo el detalle top-N")
	assert.Contains(t, renderer.rows[0], "LAP-02")
}

// Mismo contraste para inventario: 42 artículos en total, 1 en la tabla.
func TestExport_ResumenInventario(t *testing.T) {
	renderer := &captureRenderer{}
	e := NewExporter(NewUseCase(stubReportRepo{}), renderer, t.TempDir())

	_, err := e.Export(context.Background(), KindInventory, dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 42, renderer.summary["Total Items"])
	assert.Equal(t, 7, renderer.summary["Low Stock Items"])
	assert.Equal(t, 2, renderer.summary["Out of Stock"])
	assert.Contains(t, renderer.summary["Total Value"], "5")
	require.Len(t, renderer.rows, 1)
}

// El PDF queda escrito bajo dir/YYYY/MM y la ruta devuelta existe.
func TestExport_EscribeArchivo(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(NewUseCase(stubReportRepo{}), &captureRenderer{}, dir)

	out, err := e.Export(context.Background(), KindInventory, dto.ReportQuery{})
	require.NoError(t, err)

	info, err := os.Stat(out.Path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

// Tipos exportables conocidos.
func TestKnownKind(t *testing.T) {
	for _, kind := range []string{
		KindInventory, KindMovements, KindRequests,
		KindDistributions, KindLowStock, KindActivity,
	} {
		assert.True(t, KnownKind(kind), kind)
	}
	assert.False(t, KnownKind("ventas"))
	assert.False(t, KnownKind(""))
}

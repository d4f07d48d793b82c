package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-escolar/internal/application/reports"
	"github.com/tu-usuario/inventario-escolar/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventario-escolar/internal/interfaces/http"
	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

// fakeReportRepo implementación de prueba: con err != nil toda consulta
// falla; si no, devuelve resultados vacíos.
type fakeReportRepo struct {
	err error
}

func (f *fakeReportRepo) InventoryTotals(context.Context, repository.ReportFilters) (repository.InventoryTotals, error) {
	return repository.InventoryTotals{}, f.err
}
func (f *fakeReportRepo) CategoryBreakdown(context.Context, repository.ReportFilters) ([]repository.CategoryRollup, error) {
	return nil, f.err
}
func (f *fakeReportRepo) TopItemsByValue(context.Context, repository.ReportFilters, int) ([]repository.TopItemValue, error) {
	return nil, f.err
}
func (f *fakeReportRepo) MovementTotals(context.Context, repository.ReportFilters) ([]repository.MovementTypeTotals, error) {
	return nil, f.err
}
func (f *fakeReportRepo) RecentMovements(context.Context, repository.ReportFilters, int) ([]repository.MovementRecord, error) {
	return nil, f.err
}
func (f *fakeReportRepo) RequestStatusTotals(context.Context, repository.ReportFilters) (repository.RequestStatusTotals, error) {
	return repository.RequestStatusTotals{}, f.err
}
func (f *fakeReportRepo) RequestsByRole(context.Context, repository.ReportFilters) ([]repository.RoleCount, error) {
	return nil, f.err
}
func (f *fakeReportRepo) TopRequestedItems(context.Context, repository.ReportFilters, int) ([]repository.TopItemQuantity, error) {
	return nil, f.err
}
func (f *fakeReportRepo) DistributionTotals(context.Context, repository.ReportFilters) (repository.DistributionTotals, error) {
	return repository.DistributionTotals{}, f.err
}
func (f *fakeReportRepo) DistributionsByRole(context.Context, repository.ReportFilters) ([]repository.RoleDistribution, error) {
	return nil, f.err
}
func (f *fakeReportRepo) TopDistributedItems(context.Context, repository.ReportFilters, int) ([]repository.TopItemQuantity, error) {
	return nil, f.err
}
func (f *fakeReportRepo) LowStockItems(context.Context, repository.ReportFilters) ([]repository.LowStockItem, error) {
	return nil, f.err
}
func (f *fakeReportRepo) LowStockByLevel(context.Context, repository.ReportFilters) ([]repository.AlertLevelTotals, error) {
	return nil, f.err
}
func (f *fakeReportRepo) ActivityTotals(context.Context, repository.ReportFilters) (repository.ActivityTotals, error) {
	return repository.ActivityTotals{}, f.err
}
func (f *fakeReportRepo) ActivityByAction(context.Context, repository.ReportFilters) ([]repository.ActionCount, error) {
	return nil, f.err
}
func (f *fakeReportRepo) TopActiveUsers(context.Context, repository.ReportFilters, int) ([]repository.ActiveUser, error) {
	return nil, f.err
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func buildReportApp(repo repository.ReportRepository) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := reports.NewUseCase(repo)
	handler := apphttp.NewReportHandler(uc, nil, log)

	app := fiber.New()
	app.Get("/api/reports/inventory", handler.Inventory)
	app.Get("/api/reports/movements", handler.Movements)
	app.Get("/api/reports/requests", handler.Requests)
	app.Get("/api/reports/distributions", handler.Distributions)
	app.Get("/api/reports/low-stock", handler.LowStock)
	app.Get("/api/reports/activity", handler.Activity)
	return app
}

// Un fallo de la DB produce 500 con el envoltorio de fallo y mensaje
// genérico: ni datos parciales ni detalle del error interno.
func TestReportHandler_FalloDeConsulta_Retorna500SinDatos(t *testing.T) {
	app := buildReportApp(&fakeReportRepo{err: errors.New("conexión rechazada a la DB")})

	paths := []string{
		"/api/reports/inventory",
		"/api/reports/movements",
		"/api/reports/requests",
		"/api/reports/distributions",
		"/api/reports/low-stock",
		"/api/reports/activity",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, false, body["success"])
			assert.Nil(t, body["data"], "nunca se devuelven resultados parciales")
			assert.NotContains(t, body["message"], "conexión",
				"el detalle del error interno no se filtra al cliente")
		})
	}
}

// Con la DB sana cada reporte responde 200 con el envoltorio de éxito.
func TestReportHandler_ReporteVacio_Retorna200(t *testing.T) {
	app := buildReportApp(&fakeReportRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])

	data := body["data"].(map[string]interface{})
	assert.Contains(t, data, "summary")
	assert.Contains(t, data, "categoryBreakdown")
	assert.Contains(t, data, "topItems")
}

// Los filtros de query llegan al repositorio tal cual (sin validación previa).
func TestReportHandler_FiltrosPasanAlRepositorio(t *testing.T) {
	repo := &capturingReportRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	handler := apphttp.NewReportHandler(reports.NewUseCase(repo), nil, log)

	app := fiber.New()
	app.Get("/api/reports/movements", handler.Movements)

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/movements?startDate=2026-01-01&endDate=2026-06-30&type=out", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2026-01-01", repo.got.StartDate)
	assert.Equal(t, "2026-06-30", repo.got.EndDate)
	assert.Equal(t, "out", repo.got.MovementType)
}

// stubRenderer produce un PDF mínimo sin inspeccionar el contenido.
type stubRenderer struct{}

func (stubRenderer) Render(string, []string, [][]string, map[string]interface{}) ([]byte, error) {
	return []byte("%PDF"), nil
}

// Un :kind desconocido en el export es error del cliente: 404 sin tocar el
// exportador.
func TestReportHandler_ExportTipoDesconocido_Retorna404(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	handler := apphttp.NewReportHandler(reports.NewUseCase(&fakeReportRepo{}), nil, log)

	app := fiber.New()
	app.Post("/api/reports/:kind/export", handler.Export)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/ventas/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

// Un tipo conocido genera el PDF y devuelve su ruta.
func TestReportHandler_ExportTipoConocido_Retorna200(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := reports.NewUseCase(&fakeReportRepo{})
	exporter := reports.NewExporter(uc, stubRenderer{}, t.TempDir())
	handler := apphttp.NewReportHandler(uc, exporter, log)

	app := fiber.New()
	app.Post("/api/reports/:kind/export", handler.Export)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/inventory/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "inventory", data["kind"])
	assert.NotEmpty(t, data["path"])
}

// capturingReportRepo guarda los filtros recibidos por la última consulta.
type capturingReportRepo struct {
	fakeReportRepo
	got repository.ReportFilters
}

func (c *capturingReportRepo) MovementTotals(_ context.Context, f repository.ReportFilters) ([]repository.MovementTypeTotals, error) {
	c.got = f
	return nil, nil
}

func (c *capturingReportRepo) RecentMovements(_ context.Context, f repository.ReportFilters, _ int) ([]repository.MovementRecord, error) {
	c.got = f
	return nil, nil
}

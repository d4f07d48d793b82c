package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
	"github.com/tu-usuario/inventario-escolar/internal/application/reports"
	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

// ReportHandler expone los seis reportes y la exportación a PDF (solo admin
// y staff). Un fallo de reporte nunca filtra el error de la DB al cliente:
// la causa real va al log y el cliente recibe un mensaje genérico.
type ReportHandler struct {
	reports  *reports.UseCase
	exporter *reports.Exporter
	log      *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, exporter *reports.Exporter, log *logger.Logger) *ReportHandler {
	return &ReportHandler{reports: uc, exporter: exporter, log: log}
}

func (h *ReportHandler) fail(c *fiber.Ctx, kind string, err error) error {
	h.log.Error().Err(err).Str("report", kind).Msg("fallo generando reporte")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("no se pudo generar el reporte"))
}

func parseReportQuery(c *fiber.Ctx) (dto.ReportQuery, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, nil
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.Response
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.reports.Inventory(c.Context(), q)
	if err != nil {
		return h.fail(c, reports.KindInventory, err)
	}
	return c.JSON(dto.OK(out))
}

// Movements godoc
// @Summary      Reporte de movimientos de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.Response
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.reports.Movements(c.Context(), q)
	if err != nil {
		return h.fail(c, reports.KindMovements, err)
	}
	return c.JSON(dto.OK(out))
}

// Requests godoc
// @Summary      Análisis de solicitudes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/reports/requests [get]
func (h *ReportHandler) Requests(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.reports.Requests(c.Context(), q)
	if err != nil {
		return h.fail(c, reports.KindRequests, err)
	}
	return c.JSON(dto.OK(out))
}

// Distributions godoc
// @Summary      Reporte de entregas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/reports/distributions [get]
func (h *ReportHandler) Distributions(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.reports.Distributions(c.Context(), q)
	if err != nil {
		return h.fail(c, reports.KindDistributions, err)
	}
	return c.JSON(dto.OK(out))
}

// LowStock godoc
// @Summary      Alerta de stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.reports.LowStock(c.Context(), q)
	if err != nil {
		return h.fail(c, reports.KindLowStock, err)
	}
	return c.JSON(dto.OK(out))
}

// Activity godoc
// @Summary      Actividad de usuarios
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/reports/activity [get]
func (h *ReportHandler) Activity(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.reports.Activity(c.Context(), q)
	if err != nil {
		return h.fail(c, reports.KindActivity, err)
	}
	return c.JSON(dto.OK(out))
}

// Export godoc
// @Summary      Exportar un reporte a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "inventory|movements|requests|distributions|low-stock|activity"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/reports/{kind}/export [post]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !reports.KnownKind(kind) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("tipo de reporte desconocido"))
	}
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.exporter.Export(c.Context(), kind, q)
	if err != nil {
		return h.fail(c, kind, err)
	}
	return c.JSON(dto.OK(out))
}

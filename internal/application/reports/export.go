package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-escolar/internal/application/dto"
)

// Renderer genera el documento PDF de un reporte ya formateado.
// Lo implementa la infraestructura (Maroto).
type Renderer interface {
	Render(title string, headers []string, rows [][]string, summary map[string]interface{}) ([]byte, error)
}

// Títulos de los PDF por tipo de reporte.
var exportTitles = map[string]string{
	KindInventory:     "Reporte de Inventario",
	KindMovements:     "Reporte de Movimientos de Stock",
	KindRequests:      "Análisis de Solicitudes",
	KindDistributions: "Reporte de Entregas",
	KindLowStock:      "Alerta de Stock Bajo",
	KindActivity:      "Actividad de Usuarios",
}

// KnownKind indica si kind corresponde a un reporte exportable.
func KnownKind(kind string) bool {
	_, ok := exportTitles[kind]
	return ok
}

// Exporter genera el PDF de un reporte y lo guarda bajo dir/YYYY/MM
// (subcarpetas creadas bajo demanda). Los archivos quedan sujetos al
// barrido de retención.
type Exporter struct {
	reports  *UseCase
	renderer Renderer
	dir      string
}

// NewExporter construye el exportador.
func NewExporter(reports *UseCase, renderer Renderer, dir string) *Exporter {
	return &Exporter{reports: reports, renderer: renderer, dir: dir}
}

// Export ejecuta el reporte indicado, formatea su detalle tabular y escribe
// el PDF. Devuelve la ruta del archivo.
//
// El bloque de resumen sale de los agregados del reporte (totales sobre el
// conjunto completo), no de las filas de la tabla: la tabla es el detalle
// top-N o acotado y sus totales no representan el reporte.
func (e *Exporter) Export(ctx context.Context, kind string, q dto.ReportQuery) (*dto.ReportExportDTO, error) {
	rows, summary, err := e.buildFor(ctx, kind, q)
	if err != nil {
		return nil, err
	}

	formatted := FormatRows(kind, rows)

	fields := labelsByKind[kind]
	headers := make([]string, 0, len(fields))
	for _, f := range fields {
		headers = append(headers, f.Label)
	}
	table := make([][]string, 0, len(formatted))
	for _, row := range formatted {
		line := make([]string, 0, len(fields))
		for _, f := range fields {
			line = append(line, fmt.Sprintf("%v", row[f.Label]))
		}
		table = append(table, line)
	}

	doc, err := e.renderer.Render(exportTitles[kind], headers, table, summary)
	if err != nil {
		return nil, fmt.Errorf("export %s: render: %w", kind, err)
	}

	now := time.Now()
	outDir := filepath.Join(e.dir, now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("export %s: crear directorio: %w", kind, err)
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s-%s.pdf", kind, now.Format("20060102-150405")))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return nil, fmt.Errorf("export %s: escribir archivo: %w", kind, err)
	}

	return &dto.ReportExportDTO{Kind: kind, Path: path}, nil
}

// buildFor ejecuta el reporte y devuelve las filas crudas de la tabla de
// detalle junto al resumen derivado de los agregados del propio reporte.
func (e *Exporter) buildFor(ctx context.Context, kind string, q dto.ReportQuery) ([]map[string]interface{}, map[string]interface{}, error) {
	switch kind {
	case KindInventory:
		report, err := e.reports.Inventory(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]map[string]interface{}, 0, len(report.TopItems))
		for _, it := range report.TopItems {
			rows = append(rows, map[string]interface{}{
				"item_code":   it.Code,
				"item_name":   it.Name,
				"quantity":    it.Quantity,
				"unit_price":  it.UnitPrice,
				"total_value": it.TotalValue,
			})
		}
		summary := map[string]interface{}{
			"Total Items":     report.Summary.TotalItems,
			"Total Stock":     report.Summary.TotalStock,
			"Low Stock Items": report.Summary.LowStock,
			"Out of Stock":    report.Summary.OutOfStock,
			"Total Value":     formatCurrency(report.Summary.TotalValue.InexactFloat64()),
		}
		return rows, summary, nil

	case KindMovements:
		report, err := e.reports.Movements(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]map[string]interface{}, 0, len(report.Movements))
		for _, m := range report.Movements {
			rows = append(rows, map[string]interface{}{
				"item_code":    m.ItemCode,
				"item_name":    m.ItemName,
				"type":         m.Type,
				"quantity":     m.Quantity,
				"stock_before": m.StockBefore,
				"stock_after":  m.StockAfter,
				"reason":       m.Reason,
				"user_name":    m.UserName,
				"created_at":   m.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		var total int
		var stockIn, stockOut int64
		for _, t := range report.ByType {
			total += t.Count
			switch t.Type {
			case "in":
				stockIn += t.TotalQuantity
			case "out":
				stockOut += t.TotalQuantity
			}
		}
		summary := map[string]interface{}{
			"Total Movements": total,
			"Stock In":        stockIn,
			"Stock Out":       stockOut,
		}
		return rows, summary, nil

	case KindRequests:
		report, err := e.reports.Requests(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]map[string]interface{}, 0, len(report.TopItems))
		for _, it := range report.TopItems {
			rows = append(rows, map[string]interface{}{
				"item_code":          it.Code,
				"item_name":          it.Name,
				"quantity_requested": it.TotalQuantity,
			})
		}
		s := report.Summary
		summary := map[string]interface{}{
			"Total Requests": s.Pending + s.Approved + s.Rejected + s.Distributed + s.Cancelled,
			"Pending":        s.Pending,
			"Approved":       s.Approved,
			"Rejected":       s.Rejected,
			"Distributed":    s.Distributed,
			"Cancelled":      s.Cancelled,
		}
		return rows, summary, nil

	case KindDistributions:
		report, err := e.reports.Distributions(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]map[string]interface{}, 0, len(report.TopItems))
		for _, it := range report.TopItems {
			rows = append(rows, map[string]interface{}{
				"item_code": it.Code,
				"item_name": it.Name,
				"quantity":  it.TotalQuantity,
			})
		}
		s := report.Summary
		summary := map[string]interface{}{
			"Total Distributions":    s.TotalDistributions,
			"Unique Students Served": s.UniqueStudents,
			"Total Value":            formatCurrency(s.TotalValue.InexactFloat64()),
			"Average Value":          formatCurrency(s.AverageValue.InexactFloat64()),
		}
		return rows, summary, nil

	case KindLowStock:
		report, err := e.reports.LowStock(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]map[string]interface{}, 0, len(report.Alerts))
		for _, a := range report.Alerts {
			rows = append(rows, map[string]interface{}{
				"item_code":      a.Code,
				"item_name":      a.Name,
				"category":       a.Category,
				"quantity":       a.Quantity,
				"minimum":        a.Minimum,
				"alert_level":    a.AlertLevel,
				"shortage_value": a.ShortageValue,
			})
		}
		summary := map[string]interface{}{"Total Alerts": len(report.Alerts)}
		shortage := decimal.Zero
		for _, l := range report.ByLevel {
			summary[l.AlertLevel] = l.Count
			shortage = shortage.Add(l.ShortageValue)
		}
		summary["Total Shortage Value"] = formatCurrency(shortage.InexactFloat64())
		return rows, summary, nil

	case KindActivity:
		report, err := e.reports.Activity(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]map[string]interface{}, 0, len(report.TopUsers))
		for _, u := range report.TopUsers {
			rows = append(rows, map[string]interface{}{
				"user_name": u.Name,
				"role":      u.Role,
				"count":     u.Count,
			})
		}
		summary := map[string]interface{}{
			"Total Actions": report.Summary.TotalActions,
			"Active Users":  report.Summary.ActiveUsers,
			"Active Days":   report.Summary.ActiveDays,
		}
		return rows, summary, nil

	default:
		return nil, nil, fmt.Errorf("export: tipo de reporte desconocido: %s", kind)
	}
}

// Package pdf genera los documentos PDF de los reportes del inventario
// escolar usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: estadísticas del reporte (clave: valor)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabeceras + filas formateadas                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/inventario-escolar/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.Renderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer implementa reports.Renderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// Render genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(title string, headers []string, rows [][]string, summary map[string]interface{}) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, r := range summaryRows(summary) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	widths := columnWidths(len(headers))
	m.AddRows(tableHeaderRow(headers, widths))
	for _, r := range rows {
		m.AddRows(tableRow(r, widths))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario Escolar", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRows: una fila clave/valor por estadística, en orden alfabético de
// clave para que el documento sea reproducible.
func summaryRows(summary map[string]interface{}) []core.Row {
	if len(summary) == 0 {
		return nil
	}
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, k := range keys {
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(k+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 2,
			})),
			col.New(7).Add(text.New(fmt.Sprintf("%v", summary[k]), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de datos.
func tableHeaderRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
			Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRow: una fila de datos ya formateados.
func tableRow(values []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		w := 1
		if i < len(widths) {
			w = widths[i]
		}
		cols = append(cols, col.New(w).Add(text.New(v, props.Text{
			Size: 8, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths reparte las 12 columnas de la grilla de Maroto entre n
// columnas de tabla; el sobrante se lo lleva la primera (suele ser el nombre).
func columnWidths(n int) []int {
	if n == 0 {
		return nil
	}
	base := 12 / n
	if base == 0 {
		base = 1
	}
	widths := make([]int, n)
	total := 0
	for i := range widths {
		widths[i] = base
		total += base
	}
	if total < 12 && n <= 12 {
		widths[0] += 12 - total
	}
	return widths
}

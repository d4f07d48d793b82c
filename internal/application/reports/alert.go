// Package reports contiene el subsistema de reportes: casos de uso de
// agregación, formateo de filas para presentación, estadísticas de resumen,
// exportación a PDF y el barrido de retención de archivos.
package reports

// Niveles de alerta de stock bajo.
const (
	AlertOutOfStock = "Out of Stock"
	AlertCritical   = "Critical"
	AlertLow        = "Low"
)

// Severidades numéricas de la alerta (0 es la más grave). La consulta SQL de
// stock bajo emite estos mismos valores; la regla vive aquí y en un único
// CASE dentro del repositorio de reportes para que nunca diverjan.
const (
	SeverityOutOfStock = 0
	SeverityCritical   = 1
	SeverityLow        = 2
)

// Severity clasifica un artículo según (quantity, minimum). Función pura:
//   - quantity == 0            -> SeverityOutOfStock
//   - 0 < quantity <= min/2    -> SeverityCritical
//   - en otro caso             -> SeverityLow
//
// Con minimum == 0 un artículo con stock nunca es crítico (2*q <= 0 es falso
// para q > 0), así que cae en SeverityLow sin dividir.
func Severity(quantity, minimum int) int {
	if quantity == 0 {
		return SeverityOutOfStock
	}
	if quantity*2 <= minimum {
		return SeverityCritical
	}
	return SeverityLow
}

// Level devuelve la etiqueta del nivel de alerta para (quantity, minimum).
func Level(quantity, minimum int) string {
	return LevelName(Severity(quantity, minimum))
}

// LevelName traduce una severidad numérica a su etiqueta de presentación.
func LevelName(severity int) string {
	switch severity {
	case SeverityOutOfStock:
		return AlertOutOfStock
	case SeverityCritical:
		return AlertCritical
	default:
		return AlertLow
	}
}

package reports

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formatea los totales monetarios con separadores de miles (es-CO).
var printer = message.NewPrinter(language.MustParse("es-CO"))

// Summarize deriva escalares de resumen de un conjunto de filas ya cargado en
// memoria, según el tipo de reporte. Función pura:
//   - entrada que no es un slice de filas: {} vacío.
//   - tipo desconocido: {"Total Records": N}.
func Summarize(kind string, rows interface{}) map[string]interface{} {
	list, ok := rows.([]map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	switch kind {
	case KindInventory, KindLowStock:
		return summarizeInventory(list)
	case KindMovements:
		return summarizeMovements(list)
	case KindRequests:
		return summarizeRequests(list)
	case KindDistributions:
		return summarizeDistributions(list)
	default:
		return map[string]interface{}{"Total Records": len(list)}
	}
}

func summarizeInventory(rows []map[string]interface{}) map[string]interface{} {
	var totalStock, totalValue float64
	var lowStock, outOfStock int
	for _, r := range rows {
		q := toFloat(r["quantity"])
		m := toFloat(r["minimum"])
		totalStock += q
		totalValue += toFloat(r["total_value"])
		if q <= m {
			lowStock++
		}
		if q == 0 {
			outOfStock++
		}
	}
	return map[string]interface{}{
		"Total Items":     len(rows),
		"Total Stock":     totalStock,
		"Low Stock Items": lowStock,
		"Out of Stock":    outOfStock,
		"Total Value":     formatCurrency(totalValue),
	}
}

func summarizeMovements(rows []map[string]interface{}) map[string]interface{} {
	var in, out float64
	for _, r := range rows {
		switch r["type"] {
		case "in":
			in += toFloat(r["quantity"])
		case "out":
			out += toFloat(r["quantity"])
		}
	}
	return map[string]interface{}{
		"Total Movements": len(rows),
		"Stock In":        in,
		"Stock Out":       out,
	}
}

func summarizeRequests(rows []map[string]interface{}) map[string]interface{} {
	counts := map[string]int{}
	for _, r := range rows {
		if s, ok := r["status"].(string); ok {
			counts[s]++
		}
	}
	return map[string]interface{}{
		"Total Requests": len(rows),
		"Pending":        counts["pending"],
		"Approved":       counts["approved"],
		"Rejected":       counts["rejected"],
		"Distributed":    counts["distributed"],
	}
}

func summarizeDistributions(rows []map[string]interface{}) map[string]interface{} {
	var items, value float64
	students := map[string]struct{}{}
	for _, r := range rows {
		items += toFloat(r["quantity"])
		value += toFloat(r["total_value"])
		if id := r["student_id"]; id != nil {
			students[stringify(id)] = struct{}{}
		}
	}
	return map[string]interface{}{
		"Total Distributions":     len(rows),
		"Total Items Distributed": items,
		"Unique Students Served":  len(students),
		"Total Value":             formatCurrency(value),
	}
}

// formatCurrency devuelve el valor como moneda con separador de miles, ej: "$1.250,50".
func formatCurrency(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// toFloat convierte los tipos numéricos habituales de una fila a float64.
// Valores ausentes o no numéricos cuentan como 0.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// stringify produce una clave estable para valores de identidad (string o numéricos).
func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

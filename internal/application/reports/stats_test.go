package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Escenario de entregas: 3 filas, 6 unidades, 2 estudiantes distintos.
func TestSummarize_Entregas(t *testing.T) {
	rows := []map[string]interface{}{
		{"quantity": 2, "total_value": 10.0, "student_id": "est-1"},
		{"quantity": 3, "total_value": 15.0, "student_id": "est-2"},
		{"quantity": 1, "total_value": 5.0, "student_id": "est-1"},
	}

	out := Summarize(KindDistributions, rows)

	assert.Equal(t, 3, out["Total Distributions"])
	assert.Equal(t, float64(6), out["Total Items Distributed"])
	assert.Equal(t, 2, out["Unique Students Served"])
	assert.Contains(t, out["Total Value"], "30", "el total va formateado como moneda")
}

// Entrada que no es un slice de filas: resumen vacío, nunca panic.
func TestSummarize_EntradaNoEsSlice(t *testing.T) {
	assert.Empty(t, Summarize(KindDistributions, "no soy filas"))
	assert.Empty(t, Summarize(KindDistributions, 42))
	assert.Empty(t, Summarize(KindDistributions, nil))
	assert.Empty(t, Summarize(KindDistributions, map[string]interface{}{"a": 1}))
}

// Tipo desconocido: solo el conteo de registros.
func TestSummarize_TipoDesconocido(t *testing.T) {
	rows := []map[string]interface{}{{"x": 1}, {"x": 2}}

	out := Summarize("otro", rows)

	require.Len(t, out, 1)
	assert.Equal(t, 2, out["Total Records"])
}

// Inventario: totales, stock bajo y agotados derivados de las filas.
func TestSummarize_Inventario(t *testing.T) {
	rows := []map[string]interface{}{
		{"quantity": 0, "minimum": 10, "total_value": 0.0},
		{"quantity": 4, "minimum": 10, "total_value": 20.0},
		{"quantity": 50, "minimum": 10, "total_value": 100.0},
	}

	out := Summarize(KindInventory, rows)

	assert.Equal(t, 3, out["Total Items"])
	assert.Equal(t, float64(54), out["Total Stock"])
	assert.Equal(t, 2, out["Low Stock Items"], "quantity <= minimum")
	assert.Equal(t, 1, out["Out of Stock"])
}

// Movimientos: entradas y salidas acumuladas por tipo.
func TestSummarize_Movimientos(t *testing.T) {
	rows := []map[string]interface{}{
		{"type": "in", "quantity": 10},
		{"type": "out", "quantity": 4},
		{"type": "out", "quantity": 2},
		{"type": "adjust", "quantity": 99},
	}

	out := Summarize(KindMovements, rows)

	assert.Equal(t, 4, out["Total Movements"])
	assert.Equal(t, float64(10), out["Stock In"])
	assert.Equal(t, float64(6), out["Stock Out"])
}

// Valores no numéricos en campos numéricos cuentan como cero.
func TestToFloat_TiposNoNumericos(t *testing.T) {
	assert.Equal(t, float64(0), toFloat("texto"))
	assert.Equal(t, float64(0), toFloat(nil))
	assert.Equal(t, float64(7), toFloat(int64(7)))
	assert.Equal(t, 2.5, toFloat(2.5))
}

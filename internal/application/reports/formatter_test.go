package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Las claves crudas deben salir con su etiqueta de presentación.
func TestFormatRows_AplicaEtiquetas(t *testing.T) {
	rows := []map[string]interface{}{
		{
			"item_code":   "CUAD-01",
			"item_name":   "Cuaderno rayado",
			"quantity":    25,
			"unit_price":  2.5,
			"total_value": 62.5,
		},
	}

	out := FormatRows(KindInventory, rows)
	require.Len(t, out, 1)

	assert.Equal(t, "CUAD-01", out[0]["Item Code"])
	assert.Equal(t, "Cuaderno rayado", out[0]["Item Name"])
	assert.Equal(t, 25, out[0]["Quantity"])
	assert.NotContains(t, out[0], "item_code", "la clave cruda no debe sobrevivir")
}

// Campos ausentes o nil: "N/A" para texto, 0 para numéricos.
func TestFormatRows_ValoresPorDefecto(t *testing.T) {
	rows := []map[string]interface{}{
		{"item_code": "LAP-02", "quantity": nil},
	}

	out := FormatRows(KindLowStock, rows)
	require.Len(t, out, 1)

	assert.Equal(t, "LAP-02", out[0]["Item Code"])
	assert.Equal(t, "N/A", out[0]["Item Name"], "texto ausente -> N/A")
	assert.Equal(t, "N/A", out[0]["Category"])
	assert.Equal(t, 0, out[0]["Quantity"], "numérico nil -> 0")
	assert.Equal(t, 0, out[0]["Shortage Value"], "numérico ausente -> 0")
}

// Tipo de reporte desconocido: las filas pasan tal cual, sin tocar.
func TestFormatRows_TipoDesconocidoPasaIgual(t *testing.T) {
	rows := []map[string]interface{}{
		{"anything": "goes", "n": 42},
	}

	out := FormatRows("algo-inexistente", rows)
	assert.Equal(t, rows, out)
}

// Una sola pasada: el resultado contiene exactamente los campos del tipo,
// ni más ni menos.
func TestFormatRows_UnaSolaPasada(t *testing.T) {
	rows := []map[string]interface{}{
		{"item_code": "X", "campo_extra": "ignorado"},
	}

	out := FormatRows(KindLowStock, rows)
	require.Len(t, out, 1)

	assert.Len(t, out[0], len(labelsByKind[KindLowStock]),
		"cada fila formateada tiene un valor por campo definido")
	assert.NotContains(t, out[0], "campo_extra")
}

func TestFormatRows_EntradaVacia(t *testing.T) {
	assert.Empty(t, FormatRows(KindMovements, nil))
	assert.Empty(t, FormatRows(KindMovements, []map[string]interface{}{}))
}

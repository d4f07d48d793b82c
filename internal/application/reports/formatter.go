package reports

// fieldLabel asocia una clave cruda de la fila con su etiqueta de presentación.
// Numeric controla el valor por defecto cuando la clave falta o es nil
// ("N/A" para texto, 0 para números).
type fieldLabel struct {
	Key     string
	Label   string
	Numeric bool
}

// labelsByKind conjunto de campos por tipo de reporte, en el orden de las
// columnas del PDF. Cada tipo lista exactamente las claves que emite su tabla
// de detalle. Un tipo desconocido no se formatea: las filas pasan tal cual.
var labelsByKind = map[string][]fieldLabel{
	KindInventory: {
		{Key: "item_code", Label: "Item Code"},
		{Key: "item_name", Label: "Item Name"},
		{Key: "quantity", Label: "Quantity", Numeric: true},
		{Key: "unit_price", Label: "Unit Price", Numeric: true},
		{Key: "total_value", Label: "Total Value", Numeric: true},
	},
	KindMovements: {
		{Key: "item_code", Label: "Item Code"},
		{Key: "item_name", Label: "Item Name"},
		{Key: "type", Label: "Type"},
		{Key: "quantity", Label: "Quantity", Numeric: true},
		{Key: "stock_before", Label: "Stock Before", Numeric: true},
		{Key: "stock_after", Label: "Stock After", Numeric: true},
		{Key: "reason", Label: "Reason"},
		{Key: "user_name", Label: "User"},
		{Key: "created_at", Label: "Date"},
	},
	KindRequests: {
		{Key: "item_code", Label: "Item Code"},
		{Key: "item_name", Label: "Item Name"},
		{Key: "quantity_requested", Label: "Requested", Numeric: true},
	},
	KindDistributions: {
		{Key: "item_code", Label: "Item Code"},
		{Key: "item_name", Label: "Item Name"},
		{Key: "quantity", Label: "Quantity", Numeric: true},
	},
	KindLowStock: {
		{Key: "item_code", Label: "Item Code"},
		{Key: "item_name", Label: "Item Name"},
		{Key: "category", Label: "Category"},
		{Key: "quantity", Label: "Quantity", Numeric: true},
		{Key: "minimum", Label: "Minimum", Numeric: true},
		{Key: "alert_level", Label: "Alert Level"},
		{Key: "shortage_value", Label: "Shortage Value", Numeric: true},
	},
	KindActivity: {
		{Key: "user_name", Label: "User"},
		{Key: "role", Label: "Role"},
		{Key: "count", Label: "Count", Numeric: true},
	},
}

// FormatRows convierte filas crudas en filas con etiquetas de presentación
// según el tipo de reporte. Función pura, sin I/O:
//   - tipo desconocido: devuelve la entrada sin tocar.
//   - campo ausente o nil: "N/A" para texto, 0 para numéricos.
//
// Formatear una fila ya formateada no está definido (las claves etiquetadas
// no coinciden con el set de claves crudas): una sola pasada.
func FormatRows(kind string, rows []map[string]interface{}) []map[string]interface{} {
	fields, ok := labelsByKind[kind]
	if !ok {
		return rows
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		formatted := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			v, present := row[f.Key]
			if !present || v == nil {
				if f.Numeric {
					formatted[f.Label] = 0
				} else {
					formatted[f.Label] = "N/A"
				}
				continue
			}
			formatted[f.Label] = v
		}
		out = append(out, formatted)
	}
	return out
}

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sin condiciones con valor: el predicado base sale intacto y sin argumentos.
func TestWhereClause_SinFiltros(t *testing.T) {
	query, args := whereClause("SELECT 1 FROM items i WHERE i.active", 1, []cond{
		{"i.category_id", "=", ""},
		{"i.created_at::date", ">=", ""},
	})

	assert.Equal(t, "SELECT 1 FROM items i WHERE i.active", query)
	assert.Empty(t, args)
}

// Cada condición con valor añade un placeholder numerado y su argumento en
// el mismo orden.
func TestWhereClause_PlaceholdersEnOrden(t *testing.T) {
	query, args := whereClause("WHERE TRUE", 1, []cond{
		{"m.created_at::date", ">=", "2026-01-01"},
		{"m.item_id", "=", ""},
		{"m.created_at::date", "<=", "2026-06-30"},
		{"m.type", "=", "out"},
	})

	assert.Equal(t,
		"WHERE TRUE AND m.created_at::date >= $1 AND m.created_at::date <= $2 AND m.type = $3",
		query)
	assert.Equal(t, []any{"2026-01-01", "2026-06-30", "out"}, args)
}

// El índice inicial respeta placeholders ya usados por el predicado base.
func TestWhereClause_IndiceInicial(t *testing.T) {
	query, args := whereClause("WHERE r.status = $1", 2, []cond{
		{"r.item_id", "=", "item-9"},
		{"r.requester_id", "=", "user-3"},
	})

	assert.Equal(t, "WHERE r.status = $1 AND r.item_id = $2 AND r.requester_id = $3", query)
	assert.Equal(t, []any{"item-9", "user-3"}, args)
}

// La cantidad de placeholders siempre coincide con la cantidad de argumentos.
func TestWhereClause_ArgsCoincidenConPlaceholders(t *testing.T) {
	conds := []cond{
		{"a", "=", "1"},
		{"b", "=", ""},
		{"c", ">=", "3"},
		{"d", "<=", ""},
		{"e", "=", "5"},
	}
	_, args := whereClause("WHERE TRUE", 1, conds)

	withValue := 0
	for _, c := range conds {
		if c.value != "" {
			withValue++
		}
	}
	assert.Len(t, args, withValue)
}

// Sin validación: un valor malformado viaja tal cual como argumento.
func TestWhereClause_NoValida(t *testing.T) {
	query, args := whereClause("WHERE TRUE", 1, []cond{
		{"x.created_at::date", ">=", "no-es-fecha"},
	})

	assert.Equal(t, "WHERE TRUE AND x.created_at::date >= $1", query)
	assert.Equal(t, []any{"no-es-fecha"}, args)
}

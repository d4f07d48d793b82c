package postgres

import (
	"fmt"
	"strings"
)

// cond una condición opcional de filtro: columna, operador y valor.
// Si Value es la cadena vacía la condición no se emite.
type cond struct {
	column string
	op     string // "=", ">=", "<="
	value  string
}

// whereClause construye el WHERE compartido por las consultas de reportes a
// partir de un predicado base y una lista ordenada de filtros opcionales.
// Devuelve el fragmento SQL y los argumentos posicionales en el mismo orden
// en que se añadieron los placeholders ($start, $start+1, ...).
//
// No valida los valores: un filtro malformado viaja a la DB y falla allí,
// donde el error se trata como cualquier otro fallo de consulta.
func whereClause(base string, start int, conds []cond) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)

	args := make([]any, 0, len(conds))
	n := start
	for _, c := range conds {
		if c.value == "" {
			continue
		}
		fmt.Fprintf(&sb, " AND %s %s $%d", c.column, c.op, n)
		args = append(args, c.value)
		n++
	}
	return sb.String(), args
}

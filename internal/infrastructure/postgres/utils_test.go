package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// Solo el SQLSTATE 23505 cuenta como violación de unicidad, incluso envuelto.
func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolationCode}

	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("crear usuario: %w", dup)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "FK no es unicidad")
	assert.False(t, isUniqueViolation(errors.New("duplicate key value violates 23505")),
		"el texto del error no basta sin el PgError")
	assert.False(t, isUniqueViolation(nil))
}

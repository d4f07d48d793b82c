package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de clasificación de severidad de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: stock cero siempre es "Out of Stock", sin importar el mínimo.
func TestSeverity_StockCeroEsAgotado(t *testing.T) {
	assert.Equal(t, SeverityOutOfStock, Severity(0, 10))
	assert.Equal(t, SeverityOutOfStock, Severity(0, 0))
	assert.Equal(t, AlertOutOfStock, Level(0, 50))
}

// Caso 2: stock en o bajo la mitad del mínimo es crítico.
func TestSeverity_MitadDelMinimoEsCritico(t *testing.T) {
	assert.Equal(t, SeverityCritical, Severity(5, 10), "5 de 10 es exactamente la mitad")
	assert.Equal(t, SeverityCritical, Severity(3, 10))
	assert.Equal(t, SeverityCritical, Severity(1, 2))
	assert.Equal(t, AlertCritical, Level(2, 8))
}

// Caso 3: por encima de la mitad del mínimo es solo "Low".
func TestSeverity_SobreLaMitadEsBajo(t *testing.T) {
	assert.Equal(t, SeverityLow, Severity(6, 10))
	assert.Equal(t, SeverityLow, Severity(10, 10))
	assert.Equal(t, AlertLow, Level(7, 10))
}

// Caso 4: mínimo cero con stock positivo nunca divide ni es crítico.
func TestSeverity_MinimoCeroNoEsCritico(t *testing.T) {
	assert.Equal(t, SeverityLow, Severity(1, 0))
	assert.Equal(t, SeverityLow, Severity(100, 0))
}

// Caso 5: escenario de tres artículos, cada uno en un nivel distinto.
func TestSeverity_EscenarioTresNiveles(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		want     string
	}{
		{"cuadernos agotados", 0, 20, AlertOutOfStock},
		{"lápices críticos", 4, 10, AlertCritical},
		{"borradores bajos", 9, 10, AlertLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Level(tc.quantity, tc.minimum))
		})
	}
}

// LevelName debe cubrir las tres severidades numéricas que emite la DB.
func TestLevelName_TraduceSeveridades(t *testing.T) {
	assert.Equal(t, AlertOutOfStock, LevelName(SeverityOutOfStock))
	assert.Equal(t, AlertCritical, LevelName(SeverityCritical))
	assert.Equal(t, AlertLow, LevelName(SeverityLow))
}

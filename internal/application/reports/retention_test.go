package reports

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// writeAged crea un archivo con la antigüedad indicada.
func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0o644))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
}

// Archivos más viejos que la retención se eliminan; los recientes quedan.
func TestSweep_EliminaViejosConservaRecientes(t *testing.T) {
	dir := t.TempDir()
	viejo := filepath.Join(dir, "2026", "07", "inventory-old.pdf")
	reciente := filepath.Join(dir, "2026", "08", "inventory-new.pdf")
	writeAged(t, viejo, 31*24*time.Hour)
	writeAged(t, reciente, 29*24*time.Hour)

	s := NewSweeper(dir, 30, testLogger())
	deleted := s.Sweep()

	assert.Equal(t, 1, deleted)
	assert.NoFileExists(t, viejo)
	assert.FileExists(t, reciente)
}

// El barrido nunca elimina directorios, ni siquiera vacíos tras el barrido.
func TestSweep_NoEliminaDirectorios(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "2025", "12")
	writeAged(t, filepath.Join(sub, "activity-old.pdf"), 60*24*time.Hour)

	s := NewSweeper(dir, 30, testLogger())
	s.Sweep()

	assert.DirExists(t, sub, "la subcarpeta debe sobrevivir aunque quede vacía")
	assert.DirExists(t, filepath.Join(dir, "2025"))
}

// Un archivo exactamente en el borde (modificado ahora) nunca se elimina.
func TestSweep_ArchivoRecienCreadoSobrevive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requests-now.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0o644))

	s := NewSweeper(dir, 30, testLogger())
	deleted := s.Sweep()

	assert.Zero(t, deleted)
	assert.FileExists(t, path)
}

// Directorio raíz inexistente: el barrido no falla, simplemente no borra nada.
func TestSweep_DirectorioInexistente(t *testing.T) {
	s := NewSweeper(filepath.Join(t.TempDir(), "no-existe"), 30, testLogger())
	assert.Zero(t, s.Sweep())
}

// Retención no positiva cae al valor por defecto de 30 días.
func TestNewSweeper_RetencionPorDefecto(t *testing.T) {
	s := NewSweeper(t.TempDir(), 0, testLogger())
	assert.Equal(t, 30*24*time.Hour, s.maxAge)

	s = NewSweeper(t.TempDir(), -5, testLogger())
	assert.Equal(t, 30*24*time.Hour, s.maxAge)
}

// Barridos concurrentes se serializan por el mutex: lanzar varios a la vez
// no debe duplicar eliminaciones del mismo archivo.
func TestSweep_ConcurrenteNoDuplicaEliminaciones(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeAged(t, filepath.Join(dir, "pdf", string(rune('a'+i))+".pdf"), 40*24*time.Hour)
	}

	s := NewSweeper(dir, 30, testLogger())
	results := make(chan int, 2)
	go func() { results <- s.Sweep() }()
	go func() { results <- s.Sweep() }()

	total := <-results + <-results
	assert.Equal(t, 5, total, "entre ambos barridos cada archivo se elimina una sola vez")
}

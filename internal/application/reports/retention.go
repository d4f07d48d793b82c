package reports

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

// Sweeper elimina del directorio de reportes los archivos más viejos que la
// ventana de retención. Recorre el árbol recursivamente (subcarpetas
// YYYY/MM) pero nunca borra directorios, solo archivos.
//
// Best-effort y tolerante a fallos parciales: un error en un directorio se
// registra y el barrido continúa con los hermanos. El mutex garantiza que dos
// barridos nunca se solapen aunque el scheduler dispare de más.
type Sweeper struct {
	dir    string
	maxAge time.Duration
	log    *logger.Logger

	mu sync.Mutex
}

// NewSweeper construye el barrido de retención sobre dir.
func NewSweeper(dir string, retentionDays int, log *logger.Logger) *Sweeper {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &Sweeper{
		dir:    dir,
		maxAge: time.Duration(retentionDays) * 24 * time.Hour,
		log:    log,
	}
}

// Sweep ejecuta un barrido completo y devuelve cuántos archivos eliminó.
func (s *Sweeper) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	deleted := s.sweepDir(s.dir, cutoff)
	s.log.Info().
		Str("dir", s.dir).
		Int("deleted", deleted).
		Msg("barrido de retención de reportes completado")
	return deleted
}

// Run ejecuta barridos periódicos hasta que el contexto se cancele.
// Un solo goroutine programado: los barridos nunca se solapan.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Sweeper) sweepDir(dir string, cutoff time.Time) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Directorio ilegible (o inexistente): registrar y seguir con los demás.
		s.log.Warn().Err(err).Str("dir", dir).Msg("barrido: no se pudo listar el directorio")
		return 0
	}

	deleted := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			deleted += s.sweepDir(path, cutoff)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("barrido: stat falló")
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("barrido: no se pudo eliminar")
			continue
		}
		deleted++
	}
	return deleted
}

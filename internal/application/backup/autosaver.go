// Package backup implementa el guardado automático periódico: la aplicación
// original disparaba un guardado completo cada cinco minutos además de los
// guardados por acción de usuario. Como aquí corre en segundo plano, el
// snapshot para serializar se toma bajo el lock del store y no corre contra
// las mutaciones interactivas.
package backup

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-erp/internal/application/inventory"
	"github.com/tu-usuario/stock-erp/internal/store"
	"github.com/tu-usuario/stock-erp/pkg/logger"
)

// DefaultInterval es el periodo de la aplicación original.
const DefaultInterval = 5 * time.Minute

// AutoSaver dispara un guardado completo a intervalo fijo.
type AutoSaver struct {
	interval time.Duration
	store    *store.Store
	saver    inventory.Saver
	log      *logger.Logger
	stop     chan struct{}
	done     chan struct{}
}

// New construye el AutoSaver; interval <= 0 usa DefaultInterval.
func New(interval time.Duration, st *store.Store, saver inventory.Saver, log *logger.Logger) *AutoSaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &AutoSaver{
		interval: interval,
		store:    st,
		saver:    saver,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start lanza la goroutine del temporizador. Llamar una sola vez.
func (a *AutoSaver) Start(ctx context.Context) {
	go a.run(ctx)
}

// Stop detiene el temporizador y espera a que termine el pase en curso.
func (a *AutoSaver) Stop() {
	close(a.stop)
	<-a.done
}

func (a *AutoSaver) run(ctx context.Context) {
	defer close(a.done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			result := a.saver.Save(ctx, a.store)
			if result.LocalOK() && result.MirrorErr == nil {
				a.log.Debug().Msg("guardado automático completado")
			} else {
				a.log.Warn().
					Int("file_errors", len(result.FileErrs)).
					Bool("mirror_failed", result.MirrorErr != nil).
					Msg("guardado automático con incidencias")
			}
		case <-a.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

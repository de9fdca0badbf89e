// stockerp arranca el núcleo headless de la gestión de stock: carga las
// colecciones desde el directorio de datos, deja corriendo el guardado
// automático periódico y persiste una última vez al recibir SIGINT/SIGTERM.
// La shell de escritorio embebe este mismo cableado.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tu-usuario/stock-erp/internal/application/backup"
	"github.com/tu-usuario/stock-erp/internal/infrastructure/jsonfile"
	"github.com/tu-usuario/stock-erp/internal/infrastructure/mirror"
	"github.com/tu-usuario/stock-erp/internal/store"
	"github.com/tu-usuario/stock-erp/pkg/config"
	"github.com/tu-usuario/stock-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	var remote jsonfile.Mirror
	if cfg.Mirror.URL != "" {
		remote = mirror.New(cfg.Mirror.URL, cfg.Mirror.Timeout, log)
	} else {
		log.Info().Msg("espejo remoto no configurado")
	}

	st := store.New()
	storage := jsonfile.New(cfg.Data.Dir, remote, log)
	if err := storage.Load(st); err != nil {
		log.Fatal().Err(err).Msg("cargar datos")
	}
	log.Info().
		Int("categories", len(st.Categories())).
		Int("suppliers", len(st.Suppliers())).
		Int("products", len(st.Products())).
		Int("movements", len(st.Movements())).
		Msg("datos cargados")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	autosaver := backup.New(cfg.Autosave.Interval, st, storage, log)
	autosaver.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal recibida, guardando antes de salir")
	autosaver.Stop()
	result := storage.Save(context.Background(), st)
	if !result.LocalOK() {
		log.Error().Int("file_errors", len(result.FileErrs)).Msg("guardado final con errores locales")
	}
	log.Info().Msg("aplicación detenida")
}

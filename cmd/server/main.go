package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/config"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/infra"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/router"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// In-memory stores; the catalog starts seeded with the base butcher lineup.
	catalogo := store.NewCatalogoStore()
	store.SeedCatalogo(catalogo)
	ventas := store.NewVentaStore()
	clientes := store.NewClienteStore()

	// Advice provider is optional: without an API key the dashboard keeps
	// showing the initial text and refresh jobs become no-ops.
	var provider service.ConsejoProvider
	if cfg.OpenAIAPIKey != "" {
		provider = infra.NewConsejoClient(cfg.OpenAIAPIKey, cfg.ConsejoModel)
	} else {
		log.Warn().Msg("OPENAI_API_KEY no configurada; consejo de IA deshabilitado")
	}
	consejoSvc := service.NewConsejoService(provider, catalogo, ventas)

	// Start goroutine worker pool for async tasks (advice refresh).
	// Worker handlers are wired here (composition root).
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := worker.NewDispatcher(32)
	workerHandlers := &worker.WorkerHandlers{Consejo: consejoSvc}
	worker.StartWorkerPool(ctx, dispatcher, workerHandlers, cfg.WorkerPoolSize)

	r := router.New(cfg, router.Stores{
		Catalogo: catalogo,
		Ventas:   ventas,
		Clientes: clientes,
	}, consejoSvc, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Super Carnes backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

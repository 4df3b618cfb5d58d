package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/ridelog/internal/config"
	"github.com/deppfellow/ridelog/internal/database"
	"github.com/deppfellow/ridelog/internal/handler"
	"github.com/deppfellow/ridelog/internal/logger"
	"github.com/deppfellow/ridelog/internal/repository"
	"github.com/deppfellow/ridelog/internal/router"
	"github.com/deppfellow/ridelog/internal/server"
	"github.com/deppfellow/ridelog/internal/service"
)

const (
	// DefaultContextTimeout bounds graceful shutdown.
	DefaultContextTimeout = 30 * time.Second

	// MigrationTimeout bounds the schema migration run at startup.
	MigrationTimeout = 60 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), MigrationTimeout)
	if err := database.Migrate(migrateCtx, &log, cfg); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	cancelMigrate()

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	handlers, err := handler.NewHandlers(srv, services)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create handlers")
	}

	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/handler"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/server"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/internal/workers"
	"github.com/MKhiriev/go-item-transfer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("item-transfer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(storages, *cfg, log)

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("public_url", cfg.App.PublicURL).
		Bool("single_use_transfers", cfg.App.SingleUseTransfers).
		Msg("starting item transfer server")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		backgroundWorkers.Run(ctx)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	// the server may fail on its own; make sure the workers stop too
	stop()
	wg.Wait()
	log.Info().Msg("server stopped")
}

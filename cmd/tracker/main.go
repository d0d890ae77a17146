package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/bootstrap"
	srv "github.com/AlibekovAA/exercise-tracker/backend/internal/common/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewTrackerApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start tracker: %v\n", err)
		os.Exit(1)
	}
	log := app.Log
	cfg := app.Config
	defer log.Close()

	handler, rateLimiter := buildHandler(app)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, handler)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			rateLimiter.Stop()
			return nil
		},
		func(ctx context.Context) error {
			log.Infof("tracker service: closing %s store", cfg.StorageDriver)
			return app.Stores.Close()
		},
	}

	if err := srv.Run(ctx, server, serverConfig, log, "tracker", shutdownHooks); err != nil {
		log.Errorf("tracker service exited: %v", err)
		_ = app.Stores.Close()
		rateLimiter.Stop()
		log.Close()
		os.Exit(1)
	}
}

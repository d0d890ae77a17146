package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
)

type ShutdownHook func(ctx context.Context) error

// Run serves until ctx is cancelled or the listener fails, then drains
// connections and runs hooks in order before the final shutdown.
func Run(
	ctx context.Context,
	server *http.Server,
	cfg ServerConfig,
	log *logger.Logger,
	serviceName string,
	hooks []ShutdownHook,
) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("%s service listening on %s", serviceName, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start %s service: %w", serviceName, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("shutting down %s service...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), orDefault(cfg.ShutdownTimeout, 30*time.Second))
	defer shutdownCancel()

	server.SetKeepAlivesEnabled(false)

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("%s service forced to shutdown: %v", serviceName, err)
		shutdownErr = err
	}

	if len(hooks) > 0 {
		drainCtx, drainCancel := context.WithTimeout(shutdownCtx, orDefault(cfg.DrainTimeout, 10*time.Second))
		defer drainCancel()

		log.Infof("%s service: executing shutdown hooks", serviceName)
		for i, hook := range hooks {
			if err := hook(drainCtx); err != nil {
				log.Errorf("%s service: shutdown hook %d failed: %v", serviceName, i, err)
			}
		}
	}

	if shutdownErr == nil {
		log.Infof("%s service stopped gracefully", serviceName)
	}
	return shutdownErr
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

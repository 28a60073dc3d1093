package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/config"
	"mediexplain/internal/handler"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, cfg *config.Config) error {
	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if !log.IsLevelEnabled(log.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler.NewRouter(a.Handler(), a.RouterOptions()),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serve(): listening on %s (storage=%s, backend=%s)", cfg.Server.Addr, cfg.Storage.Driver, cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Serve(): shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

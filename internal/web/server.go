package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Serve runs the web server on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler *Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           SetupRoutes(handler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

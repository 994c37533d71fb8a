package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// New builds an HTTP server with the project's timeouts.
func New(addr string, handler http.Handler, readHeaderTimeout time.Duration) *http.Server {
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 5 * time.Second
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// Serve blocks in ListenAndServe. A server stopped through Shutdown returns nil.
func Serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	logger.InfoContext(ctx, "http server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ShutdownOnDone waits for ctx to be cancelled, then drains srv within timeout.
func ShutdownOnDone(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	<-ctx.Done()
	logger.InfoContext(ctx, "http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

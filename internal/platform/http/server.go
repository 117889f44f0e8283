package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"tokenswap/internal/config"

	"github.com/sirupsen/logrus"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

func seconds(n int, fallback time.Duration) time.Duration {
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

// newServer applies the configured timeouts; zero or negative values fall back to defaults.
func newServer(cfg config.HTTPServer, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       seconds(cfg.ReadTimeoutSec, defaultReadTimeout),
		WriteTimeout:      seconds(cfg.WriteTimeoutSec, defaultWriteTimeout),
		IdleTimeout:       seconds(cfg.IdleTimeoutSec, defaultIdleTimeout),
	}
}

// Start runs HTTP server and shuts it down gracefully on ctx cancellation.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	server := newServer(cfg, handler)
	logrus.WithFields(logrus.Fields{
		"addr":          listener.Addr().String(),
		"read_timeout":  server.ReadTimeout.String(),
		"write_timeout": server.WriteTimeout.String(),
	}).Info("✅ HTTP server listening")

	errCh := make(chan error, 1)
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		return shutdown(server, seconds(cfg.ShutdownTimeoutSec, defaultShutdownTimeout))
	case serveErr := <-errCh:
		return serveErr
	}
}

func shutdown(server *http.Server, timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logrus.WithField("timeout", timeout.String()).Info("HTTP server shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		// in-flight requests outlived the deadline
		_ = server.Close()
		return err
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Run serves the greeting routes on the configured port until ctx is done,
// then shuts down gracefully
func Run(ctx context.Context, c *Container) error {
	ln, err := net.Listen("tcp", ":"+c.Config.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", c.Config.Port, err)
	}
	return Serve(ctx, c, ln)
}

// Serve is Run on an existing listener
func Serve(ctx context.Context, c *Container, ln net.Listener) error {
	srv := &http.Server{
		Handler:           NewRouter(c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	port := c.Config.Port
	if _, p, err := net.SplitHostPort(ln.Addr().String()); err == nil {
		port = p
	}
	c.Logger.Infof("Listening for requests on http://localhost:%s", port)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	c.Logger.Info("Server exited")
	return nil
}

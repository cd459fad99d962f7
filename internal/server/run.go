package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// Run listens on the configured address and serves until ctx is canceled or
// the process receives SIGINT or SIGTERM, then shuts down gracefully.
// Returns nil on clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.listener.Store(&ln)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting",
			slog.String("address", ln.Addr().String()),
			slog.Int("rules", s.catalog.Len()),
		)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		return s.server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("server stopped with error", slog.Any("error", err))
		return err
	}

	s.logger.Info("shutdown completed")
	return nil
}

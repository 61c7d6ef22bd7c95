package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/handler/http"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/workers"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the daemon from its HTTP handler and background
// workers. w may be nil.
func NewServer(handler *http.Handler, w *workers.Workers, cfg config.Daemon, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, errNoAddress
	}
	if w == nil {
		w = workers.NewWorkers()
	}

	logger.Info().Str("address", cfg.Address).Msg("creating daemon server...")
	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg.Address),
		workers:    w,
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.addr()
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.httpServer.listen(); err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.workers.Run(ctx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.Addr()).Msg("launching HTTP server")
		serveErr <- s.httpServer.serve()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := s.httpServer.shutdown(shutdownCtx); shutdownErr != nil {
		s.logger.Err(shutdownErr).Str("func", "*server.Run").Msg("HTTP server shutdown")
	}

	wg.Wait()
	s.logger.Info().Msg("server shut down gracefully")

	return err
}

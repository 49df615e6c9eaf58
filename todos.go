package todos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jpalmerr/todos/internal/server"
	"github.com/jpalmerr/todos/internal/store"
)

const (
	// DefaultAddr is the address the service listens on when none is given.
	DefaultAddr = "127.0.0.1:3000"

	defaultShutdownTimeout = server.DefaultShutdownTimeout
)

// Service is the Todo HTTP service.
//
// Service owns the process-wide store and the HTTP server that exposes it.
// It is created using [New] with functional options and started with
// [Service.Start].
//
// The typical lifecycle is:
//
//	svc, err := todos.New()
//	if err != nil {
//	    slog.Error("failed to create service", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	svc.Start(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context to
// trigger graceful shutdown.
type Service struct {
	addr            string
	shutdownTimeout time.Duration
	logger          *slog.Logger

	// ready is closed once the server is listening.
	ready     chan struct{}
	boundAddr string
}

// New creates a new [Service] instance with the given options.
//
// Options have sensible defaults:
//   - Address: 127.0.0.1:3000
//   - Shutdown timeout: 5 seconds
//   - Logger: slog.Default()
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*Service, error) {
	cfg := &svcConfig{
		addr:            DefaultAddr,
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		addr:            cfg.addr,
		shutdownTimeout: cfg.shutdownTimeout,
		logger:          logger,
		ready:           make(chan struct{}),
	}, nil
}

// Start creates the store and serves the HTTP API.
//
// Start is a blocking call that runs until the provided context is
// cancelled, then waits for in-flight requests to finish (bounded by the
// shutdown timeout). The store is created once per call and shared by
// every request handled during it; its contents are discarded on return.
//
// Start must be called at most once per Service.
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server
// fails to start.
func (s *Service) Start(ctx context.Context) error {
	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	todoStore := store.NewMemoryStore()

	httpServer := server.NewServer(todoStore, s.addr, s.shutdownTimeout, s.logger)
	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	s.boundAddr = httpServer.Addr()
	close(s.ready)

	s.logger.Info("todos service started", "addr", s.boundAddr)

	<-ctx.Done()
	<-httpServer.Done()

	s.logger.Info("todos service stopped", "todos_discarded", todoStore.Len())
	return nil
}

// Ready returns a channel that is closed once [Service.Start] is listening.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listen address once [Service.Ready] is closed,
// and the configured address before that.
func (s *Service) Addr() string {
	select {
	case <-s.ready:
		return s.boundAddr
	default:
		return s.addr
	}
}

// ShutdownTimeout returns the configured graceful shutdown timeout.
func (s *Service) ShutdownTimeout() time.Duration {
	return s.shutdownTimeout
}

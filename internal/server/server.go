package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jpalmerr/todos/internal/store"
)

const (
	// DefaultShutdownTimeout bounds how long in-flight requests may take to
	// finish once shutdown begins.
	DefaultShutdownTimeout = 5 * time.Second

	// readHeaderTimeout limits how long a client may take to send headers.
	readHeaderTimeout = 10 * time.Second
)

// Server handles HTTP requests for the Todo API.
//
// Server provides four endpoints:
//   - GET /todos: Lists records, with optional offset and limit
//   - POST /todos: Creates a record
//   - PATCH /todos/{id}: Partially updates a record
//   - DELETE /todos/{id}: Deletes a record
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	store           store.Store
	addr            string
	shutdownTimeout time.Duration
	httpServer      *http.Server
	boundAddr       string
	done            chan struct{}
	logger          *slog.Logger
}

// NewServer creates a new HTTP [Server].
//
// Parameters:
//   - st: Store holding the Todo records, shared by all handlers
//   - addr: TCP address to listen on, as host:port (port 0 picks a free port)
//   - shutdownTimeout: Grace period for in-flight requests (defaults to 5s if <= 0)
//   - logger: Logger for server events (defaults to slog.Default() if nil)
//
// The server is not started until [Server.Start] is called.
func NewServer(st store.Store, addr string, shutdownTimeout time.Duration, logger *slog.Logger) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:           st,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		done:            make(chan struct{}),
		logger:          logger,
	}
}

// Handler returns the routed API wrapped in the server's middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /todos", s.handleList)
	mux.HandleFunc("POST /todos", s.handleCreate)
	mux.HandleFunc("PATCH /todos/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /todos/{id}", s.handleDelete)

	// recovery sits inside logging so a recovered panic is logged as a 500
	return s.logRequests(s.recoverPanic(mux))
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server will continue running until the context is
// cancelled, at which point it initiates a graceful shutdown bounded by the
// shutdown timeout. [Server.Done] is closed once shutdown has finished.
//
// Returns an error if the server fails to bind to the configured address.
func (s *Server) Start(ctx context.Context) error {
	// create listener first to verify address availability synchronously
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.addr, err)
	}
	s.boundAddr = ln.Addr().String()

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
		}
	}()

	// shutdown on context cancellation
	go func() {
		defer close(s.done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	s.logger.Info("http server listening", "addr", s.boundAddr)
	return nil
}

// Addr returns the address the server is bound to.
//
// Empty until [Server.Start] has returned successfully.
func (s *Server) Addr() string {
	return s.boundAddr
}

// Done returns a channel that is closed after graceful shutdown completes.
//
// The channel is never closed if [Server.Start] was not called or failed.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

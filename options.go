package todos

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"
)

// svcConfig holds mutable state during Service construction.
type svcConfig struct {
	addr            string
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// Option is a function that configures a [Service] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithAddr], [WithShutdownTimeout], [WithLogger].
type Option func(*svcConfig) error

// WithAddr sets the TCP address the HTTP server listens on.
//
// The address must be in host:port form. Port 0 asks the operating system
// for a free port; the chosen address is available from [Service.Addr]
// once the service is listening. Defaults to "127.0.0.1:3000".
//
// Example:
//
//	svc, err := todos.New(todos.WithAddr("0.0.0.0:8080"))
//
// Returns an error if the address cannot be split into host and port, or if
// the port is outside 0-65535.
func WithAddr(addr string) Option {
	return func(cfg *svcConfig) error {
		if err := ValidateAddr(addr); err != nil {
			return err
		}
		cfg.addr = addr
		return nil
	}
}

// WithShutdownTimeout sets how long in-flight requests may run after the
// context passed to [Service.Start] is cancelled.
//
// Defaults to 5 seconds if not specified.
//
// Returns an error if the duration is zero or negative.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *svcConfig) error {
		if d <= 0 {
			return errors.New("shutdown timeout must be positive")
		}
		cfg.shutdownTimeout = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Service instance.
//
// This allows SDK consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	svc, err := todos.New(todos.WithLogger(logger))
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *svcConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// ValidateAddr reports whether addr is a usable host:port listen address.
func ValidateAddr(addr string) error {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid address %q: port must be numeric", addr)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid address %q: port must be between 0 and 65535, got %d", addr, port)
	}
	return nil
}

package config

import (
	"io"
	"log/slog"

	"github.com/jpalmerr/todos"
)

// NewLogger builds the process logger described by cfg, writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	if cfg.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// BuildOptions converts parsed configuration into service options.
//
// The logger is passed in rather than built here so callers can share one
// logger between the CLI and the service.
func BuildOptions(cfg *Config, logger *slog.Logger) []todos.Option {
	opts := []todos.Option{
		todos.WithAddr(cfg.Addr),
		todos.WithShutdownTimeout(cfg.ShutdownTimeout.Duration()),
	}
	if logger != nil {
		opts = append(opts, todos.WithLogger(logger))
	}
	return opts
}

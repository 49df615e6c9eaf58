package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/todos"
	"github.com/jpalmerr/todos/config"
)

// shutdownGrace is added to the configured shutdown timeout before the CLI
// gives up waiting and exits anyway.
const shutdownGrace = 2 * time.Second

// serveCmd starts the todos HTTP service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Start the todos HTTP service.

The server will:
  - Load configuration from the given YAML file, or use the defaults
  - Listen on the configured address (127.0.0.1:3000 by default)
  - Serve the Todo API until interrupted

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  todos serve
  todos serve -c config.yaml
  todos serve --addr 0.0.0.0:8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
	serveCmd.Flags().String("addr", "", "listen address, overrides the config file")
}

// loadConfig reads the --config file if given, otherwise the defaults, and
// applies the --addr override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("addr") {
		addr, _ := cmd.Flags().GetString("addr")
		cfg.Addr = addr
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--addr: %w", err)
		}
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := config.NewLogger(cfg, os.Stderr)
	logger.Info("config loaded",
		"addr", cfg.Addr,
		"shutdown_timeout", cfg.ShutdownTimeout.Duration().String(),
		"log_level", cfg.Log.Level,
	)

	svc, err := todos.New(config.BuildOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- svc.Start(ctx)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		// signal received, wait for graceful shutdown with timeout
		timeout := svc.ShutdownTimeout() + shutdownGrace
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(timeout):
			logger.Warn("shutdown timed out",
				"timeout", timeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}

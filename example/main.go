package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpalmerr/todos"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// port 0 lets the OS pick, Addr() reports the real one once ready
	svc, err := todos.New(
		todos.WithAddr("127.0.0.1:0"),
		todos.WithShutdownTimeout(2*time.Second),
		todos.WithLogger(logger),
	)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- svc.Start(ctx)
	}()

	select {
	case <-svc.Ready():
	case err := <-errChan:
		slog.Error("service error", "error", err)
		os.Exit(1)
	}

	base := "http://" + svc.Addr()
	fmt.Println()
	fmt.Println("  todos demo")
	fmt.Printf("  listening on %s\n", base)
	fmt.Println()

	if err := runDemo(base); err != nil {
		slog.Error("demo failed", "error", err)
		stop()
		<-errChan
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("  try: curl -s %s/todos\n", base)
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()

	if err := <-errChan; err != nil {
		slog.Error("service error", "error", err)
		os.Exit(1)
	}
}

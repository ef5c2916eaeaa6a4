package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barodex/barodex/internal/config"
	"github.com/barodex/barodex/internal/dataload"
	"github.com/barodex/barodex/internal/metrics"
	"github.com/barodex/barodex/internal/refdb"
	"github.com/barodex/barodex/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	raw, err := dataload.NewLoader().Load(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to load item database: %v", err)
	}

	db, err := refdb.Load(raw)
	if err != nil {
		log.Fatalf("Failed to build item database: %v", err)
	}
	metrics.DatabaseItems.Set(float64(db.Len()))
	slog.Info("Item database loaded", "path", cfg.DatabasePath, "items", db.Len())

	srv := server.NewServer(cfg.Port, db)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Shutdown did not complete cleanly", "error", err)
	}
}

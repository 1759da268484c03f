package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jaeyk/wop-organizations-map/internal/config"
	"github.com/jaeyk/wop-organizations-map/internal/dataset"
	"github.com/jaeyk/wop-organizations-map/internal/logging"
	"github.com/jaeyk/wop-organizations-map/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"base_url", cfg.Data.BaseURL,
		"row_cap", cfg.Table.RowCap,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Load both datasets in parallel; all-or-nothing join. A dataset that
	// exhausts every candidate path aborts startup entirely.
	datasets := dataset.Defaults(cfg.Data.AsianCandidates, cfg.Data.LatinoCandidates)
	loader := dataset.NewLoader(&http.Client{Timeout: cfg.Data.FetchTimeout}, cfg.Data.BaseURL)

	data, err := loader.LoadAll(context.Background(), datasets)
	if err != nil {
		slog.Error("failed to load datasets", "error", err)
		os.Exit(1)
	}
	for _, d := range datasets {
		slog.Info("dataset ready", "dataset", d.Key, "rows", len(data[d.Key]))
	}

	// Create server over the immutable record slices
	server := web.NewServer(cfg, datasets, data)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

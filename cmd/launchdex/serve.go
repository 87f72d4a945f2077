package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfreitag/launchdex/internal/config"
	"github.com/mfreitag/launchdex/internal/directory"
	"github.com/mfreitag/launchdex/internal/prefs"
	"github.com/mfreitag/launchdex/internal/server"
	"github.com/mfreitag/launchdex/internal/stats"
	"github.com/mfreitag/launchdex/internal/store"
	"github.com/mfreitag/launchdex/pkg/catalog"
)

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Launchdex HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Info("Launchdex server starting")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Load and validate the dataset up front so a broken fixture fails the
	// process instead of the first request.
	cat := catalog.New(logger)
	if _, err := cat.Dataset(); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	st, err := store.New(filepath.Join(cfg.GetString("data_dir"), "launchdex.db"))
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}
	defer st.Close()

	prefsRepo, err := prefs.NewSQLiteRepository(cmd.Context(), st)
	if err != nil {
		return fmt.Errorf("init preference repository: %w", err)
	}

	engine := directory.NewEngine(cat)

	addr := cfg.GetString("server.host") + ":" + cfg.GetString("server.port")
	if addr == ":" {
		addr = "0.0.0.0:8080"
	}

	srv := server.New(
		server.Options{
			Addr:      addr,
			RateLimit: cfg.GetFloat64("server.rate_limit"),
			Logger:    logger,
		},
		directory.NewHandler(engine, logger),
		stats.NewHandler(cat, logger),
		prefs.NewHandler(prefsRepo, logger),
	)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("Launchdex server ready", zap.String("addr", addr))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("Launchdex server stopped")
	return nil
}

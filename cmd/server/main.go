package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	web "clubhouse/internal/adapters/http"
	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	"clubhouse/internal/application/club"
	"clubhouse/internal/config"
	"clubhouse/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}
	logging.Setup()
	cfg := config.Default()

	if err := run(cfg); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	substrate, err := kv.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer substrate.Close()

	var codec storage.Codec = storage.JSONCodec{}
	if cfg.CompactCodec {
		codec = storage.CompactCodec{}
	}
	app := club.New(club.Deps{
		Substrate: substrate,
		Codec:     codec,
		Cache:     storage.NewCache(storage.DefaultCacheTTL, storage.DefaultCacheSize),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	slog.Info("store initialized", "db", cfg.DBPath, "version", version)

	if cfg.BackupDir != "" {
		scheduler, err := scheduleBackups(ctx, app, cfg)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(app, slog.Default()).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// scheduleBackups writes a full snapshot to the backup directory on the
// configured cron expression.
func scheduleBackups(ctx context.Context, app *club.App, cfg config.Config) (*cron.Cron, error) {
	if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}
	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.BackupCron, func() {
		if err := writeBackup(ctx, app, cfg.BackupDir); err != nil {
			slog.Error("backup failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup cron %q: %w", cfg.BackupCron, err)
	}
	scheduler.Start()
	slog.Info("scheduled backups", "dir", cfg.BackupDir, "cron", cfg.BackupCron)
	return scheduler, nil
}

func writeBackup(ctx context.Context, app *club.App, dir string) error {
	snap, err := app.Export(ctx)
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	name := filepath.Join(dir, "clubhouse-"+snap.ExportedAt.Format("2006-01-02T15-04-05")+".json")
	if err := os.WriteFile(name, encoded, 0o644); err != nil {
		return err
	}
	slog.Info("backup written", "file", name)
	return nil
}

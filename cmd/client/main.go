package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/platemate/platemate-sync/internal/client/api"
	"github.com/platemate/platemate-sync/internal/client/cache"
	"github.com/platemate/platemate-sync/internal/client/cli"
	"github.com/platemate/platemate-sync/internal/client/config"
	"github.com/platemate/platemate-sync/internal/client/connectivity"
	"github.com/platemate/platemate-sync/internal/client/diary"
	"github.com/platemate/platemate-sync/internal/client/entitlement"
	"github.com/platemate/platemate-sync/internal/client/identity"
	"github.com/platemate/platemate-sync/internal/client/iocli"
	"github.com/platemate/platemate-sync/internal/client/realtime"
	"github.com/platemate/platemate-sync/internal/client/storage/boltdb"
	"github.com/platemate/platemate-sync/internal/client/storage/sqlite"
	"github.com/platemate/platemate-sync/internal/client/sync"
	"github.com/platemate/platemate-sync/internal/client/token"
	"github.com/platemate/platemate-sync/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-version" {
		printVersion()
		return
	}

	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx := context.Background()

	app, cleanup, err := buildApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp собирает движок: хранилища, кэши, sync и CLI поверх них
func buildApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*cli.Cli, func(), error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	recordStore, err := sqlite.New(ctx, filepath.Join(cfg.DataDir, "platemate.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local database: %w", err)
	}

	cacheStore, err := boltdb.New(ctx, filepath.Join(cfg.DataDir, "platemate-cache.db"))
	if err != nil {
		_ = recordStore.Close()
		return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	cleanup := func() {
		if err := cacheStore.Close(); err != nil {
			logger.Error("failed to close cache database", "error", err)
		}
		if err := recordStore.Close(); err != nil {
			logger.Error("failed to close local database", "error", err)
		}
	}

	cipherKey, err := loadCipherKey(cfg.DataDir)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	respCache := cache.New()
	apiClient := api.NewClient(cfg.ServerURL, api.WithResponseCache(respCache))

	session := identity.NewSession(cacheStore, cipherKey)
	tokenManager := token.NewManager(apiClient, session, cacheStore, cipherKey, logger)

	entitlements := entitlement.NewService(
		apiClient,
		session,
		cacheStore,
		entitlement.UnavailableBilling{},
		entitlement.NewTrial(),
		logger,
	)

	oracle := connectivity.New(apiClient, logger)

	syncService := sync.NewService(
		apiClient,
		recordStore,
		recordStore,
		cacheStore,
		session,
		oracle,
		logger,
		sync.WithSyncInterval(cfg.SyncInterval),
	)

	// Вернувшаяся сеть — момент догнать сервер
	oracle.OnOnline(func() {
		if syncService.ShouldSync(ctx) {
			if _, err := syncService.SyncAll(ctx); err != nil {
				logger.Warn("reconnect sync failed", "error", err)
			}
		}
	})

	if cfg.Realtime {
		if userID, err := session.UserID(ctx); err == nil && userID != "" {
			rt := realtime.NewClient(cfg.ServerURL, userID, entitlements, logger)
			go rt.Run(ctx)
		}
	}

	app := cli.New(cli.Deps{
		IO:           iocli.NewStdio(),
		APIClient:    apiClient,
		Session:      session,
		DiaryService: diary.NewService(recordStore),
		SyncService:  syncService,
		Entitlements: entitlements,
		Tokens:       tokenManager,
		Records:      recordStore,
		Metadata:     cacheStore,
	})

	return app, cleanup, nil
}

// loadCipherKey деривирует ключ шифрования durable-кэша из device secret.
// Secret и соль создаются при первом запуске и живут рядом с БД.
func loadCipherKey(dataDir string) ([]byte, error) {
	secret, err := loadOrCreate(filepath.Join(dataDir, "device.secret"), crypto.GenerateSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to load device secret: %w", err)
	}
	salt, err := loadOrCreate(filepath.Join(dataDir, "device.salt"), crypto.GenerateSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to load salt: %w", err)
	}

	key, err := crypto.DeriveCacheKey(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive cache key: %w", err)
	}
	return key, nil
}

func loadOrCreate(path string, generate func() ([]byte, error)) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil && len(data) > 0 {
		return data, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	data, err = generate()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, err
	}
	return data, nil
}

func printVersion() {
	fmt.Printf("PlateMate Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

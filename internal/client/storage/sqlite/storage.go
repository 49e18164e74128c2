package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/platemate/platemate-sync/internal/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage represents the SQLite durable store for diary records and the
// local profile. Это единственный shared mutable ресурс движка: все
// переходы sync_state выполняются одиночными UPDATE'ами.
type Storage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite с WAL mode поддерживает несколько читателей, но одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	storage := &Storage{db: db}

	// Запускаем миграции
	if err := storage.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Записи, захваченные проходом, который не дожил до MarkSynced/MarkFailed,
	// возвращаются в очередь: Syncing не переживает рестарт процесса
	if err := storage.recoverInterrupted(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

// recoverInterrupted сбрасывает застрявшие Syncing-записи обратно в Unsynced
func (s *Storage) recoverInterrupted(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE records SET sync_state = ? WHERE sync_state = ?`,
		string(models.SyncStateUnsynced),
		string(models.SyncStateSyncing),
	)
	if err != nil {
		return fmt.Errorf("failed to recover interrupted records: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// runMigrations выполняет миграции из embedded FS
func (s *Storage) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// SyncStatus описывает итог последнего sync-прохода
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
	// SyncStatusNever — синхронизация еще ни разу не выполнялась
	SyncStatusNever SyncStatus = ""
)

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSync saves the timestamp and status of the last sync attempt
	SaveLastSync(ctx context.Context, at time.Time, status SyncStatus) error

	// GetLastSync retrieves the timestamp and status of the last sync attempt.
	// Returns zero time and SyncStatusNever if no sync has been performed yet.
	GetLastSync(ctx context.Context) (time.Time, SyncStatus, error)

	// SaveDeviceID persists the locally-generated device identifier
	SaveDeviceID(ctx context.Context, deviceID string) error

	// GetDeviceID returns the persisted device identifier, or empty string
	// if none was saved yet
	GetDeviceID(ctx context.Context) (string, error)
}

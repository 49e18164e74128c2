package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/platemate/platemate-sync/internal/client/storage"
)

const (
	keyLastSyncAt     = "last_sync_at"
	keyLastSyncStatus = "last_sync_status"
	keyDeviceID       = "device_id"
)

// SaveLastSync saves the timestamp and status of the last sync attempt
func (s *Storage) SaveLastSync(ctx context.Context, at time.Time, status storage.SyncStatus) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем unix ms в bytes
		tsBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(tsBytes, uint64(at.UnixMilli()))

		if err := bucket.Put([]byte(keyLastSyncAt), tsBytes); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}
		if err := bucket.Put([]byte(keyLastSyncStatus), []byte(status)); err != nil {
			return fmt.Errorf("failed to save last sync status: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the timestamp and status of the last sync attempt.
// Returns zero time and SyncStatusNever if no sync has been performed yet.
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, storage.SyncStatus, error) {
	var (
		at     time.Time
		status storage.SyncStatus
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		tsBytes := bucket.Get([]byte(keyLastSyncAt))
		if tsBytes == nil {
			// Первая синхронизация еще не выполнялась
			status = storage.SyncStatusNever
			return nil
		}

		at = time.UnixMilli(int64(binary.BigEndian.Uint64(tsBytes)))
		status = storage.SyncStatus(bucket.Get([]byte(keyLastSyncStatus)))
		return nil
	})

	if err != nil {
		return time.Time{}, storage.SyncStatusNever, fmt.Errorf("failed to get last sync: %w", err)
	}

	return at, status, nil
}

// SaveDeviceID persists the locally-generated device identifier
func (s *Storage) SaveDeviceID(ctx context.Context, deviceID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyDeviceID), []byte(deviceID)); err != nil {
			return fmt.Errorf("failed to save device id: %w", err)
		}

		return nil
	})
}

// GetDeviceID returns the persisted device identifier, or empty string if
// none was saved yet
func (s *Storage) GetDeviceID(ctx context.Context) (string, error) {
	var deviceID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		deviceID = string(bucket.Get([]byte(keyDeviceID)))
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}

	return deviceID, nil
}

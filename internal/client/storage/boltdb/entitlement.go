package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

var snapshotKey = []byte("current")

// SaveSnapshot stores the entitlement snapshot
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.EntitlementSnapshot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntitlement)
		if bucket == nil {
			return fmt.Errorf("entitlement bucket not found")
		}

		// Сериализуем snapshot в JSON
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if err := bucket.Put(snapshotKey, data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
}

// GetSnapshot retrieves the cached entitlement snapshot
func (s *Storage) GetSnapshot(ctx context.Context) (*models.EntitlementSnapshot, error) {
	var snapshot *models.EntitlementSnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntitlement)
		if bucket == nil {
			return fmt.Errorf("entitlement bucket not found")
		}

		data := bucket.Get(snapshotKey)
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		snapshot = &models.EntitlementSnapshot{}
		if err := json.Unmarshal(data, snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// DeleteSnapshot removes the cached snapshot (invalidation)
func (s *Storage) DeleteSnapshot(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntitlement)
		if bucket == nil {
			return fmt.Errorf("entitlement bucket not found")
		}

		// Инвалидация отсутствующего snapshot — не ошибка
		if err := bucket.Delete(snapshotKey); err != nil {
			return fmt.Errorf("failed to delete snapshot: %w", err)
		}

		return nil
	})
}

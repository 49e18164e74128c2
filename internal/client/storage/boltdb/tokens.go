package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/platemate/platemate-sync/internal/client/storage"
)

// SaveToken stores an encrypted token record keyed by service ID
func (s *Storage) SaveToken(ctx context.Context, serviceID string, data []byte) error {
	if serviceID == "" {
		return fmt.Errorf("service id cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		if err := bucket.Put([]byte(serviceID), data); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the encrypted token record for the service
func (s *Storage) GetToken(ctx context.Context, serviceID string) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		stored := bucket.Get([]byte(serviceID))
		if stored == nil {
			return storage.ErrTokenNotFound
		}

		// Копируем: данные bbolt валидны только внутри транзакции
		data = make([]byte, len(stored))
		copy(data, stored)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}

// DeleteToken removes the stored token for the service
func (s *Storage) DeleteToken(ctx context.Context, serviceID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		if bucket.Get([]byte(serviceID)) == nil {
			return storage.ErrTokenNotFound
		}

		if err := bucket.Delete([]byte(serviceID)); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}

// ListTokenServices returns service IDs that have a stored token
func (s *Storage) ListTokenServices(ctx context.Context) ([]string, error) {
	var services []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			services = append(services, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return services, nil
}

// ClearTokens removes all stored tokens (logout)
func (s *Storage) ClearTokens(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketTokens); err != nil {
			return fmt.Errorf("failed to delete tokens bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketTokens); err != nil {
			return fmt.Errorf("failed to recreate tokens bucket: %w", err)
		}
		return nil
	})
}

package storage

import (
	"context"

	"github.com/platemate/platemate-sync/internal/models"
)

//go:generate moq -out entitlement_mock.go . EntitlementStorage

// EntitlementStorage defines interface for the durable entitlement cache.
// Это второй уровень кэша (после in-memory): переживает рестарт процесса.
type EntitlementStorage interface {
	// SaveSnapshot stores the entitlement snapshot
	SaveSnapshot(ctx context.Context, snapshot *models.EntitlementSnapshot) error

	// GetSnapshot retrieves the cached entitlement snapshot
	// Returns ErrSnapshotNotFound if nothing is cached
	GetSnapshot(ctx context.Context) (*models.EntitlementSnapshot, error)

	// DeleteSnapshot removes the cached snapshot (invalidation)
	DeleteSnapshot(ctx context.Context) error
}

package storage

import (
	"context"
	"time"

	"github.com/platemate/platemate-sync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for the durable store of syncable diary
// records. Переход sync_state/pending_action — единица атомарности: запись
// не может быть захвачена двумя sync-проходами одновременно (Claim).
type RecordStorage interface {
	// SaveRecord stores or updates a record
	SaveRecord(ctx context.Context, record *models.Record) error

	// GetRecord retrieves a record by local ID
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, localID string) (*models.Record, error)

	// GetUnsynced returns records of the entity family awaiting sync
	// (sync_state = unsynced), упорядоченные по last_modified
	GetUnsynced(ctx context.Context, entityType string) ([]*models.Record, error)

	// ClaimRecord transitions a record from Unsynced to Syncing.
	// Returns ErrRecordClaimed if the record is already Syncing,
	// ErrRecordNotFound if it doesn't exist or is already synced.
	ClaimRecord(ctx context.Context, localID string) error

	// MarkSynced records remote acknowledgment: sets remote ID, clears
	// pending action, resets attempts
	MarkSynced(ctx context.Context, localID, remoteID string) error

	// MarkFailed returns a claimed record to Unsynced and increments attempts
	MarkFailed(ctx context.Context, localID string) error

	// DeleteRecord physically removes a record.
	// Для tombstone вызывается только после подтверждения сервером.
	DeleteRecord(ctx context.Context, localID string) error

	// PurgeSyncedBefore removes fully-synced records older than cutoff,
	// returns the number of purged rows
	PurgeSyncedBefore(ctx context.Context, entityType string, cutoff time.Time) (int, error)

	// CountPending returns the number of records awaiting sync across all
	// entity families
	CountPending(ctx context.Context) (int, error)
}

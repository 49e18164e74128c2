package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

// SaveRecord creates or updates a record
func (s *Storage) SaveRecord(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO records (
			local_id, remote_id, entity_type, payload,
			sync_state, pending_action, last_modified, attempts
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(local_id) DO UPDATE SET
			remote_id = excluded.remote_id,
			entity_type = excluded.entity_type,
			payload = excluded.payload,
			sync_state = excluded.sync_state,
			pending_action = excluded.pending_action,
			last_modified = excluded.last_modified,
			attempts = excluded.attempts
	`

	_, err := s.db.ExecContext(ctx, query,
		record.LocalID,
		record.RemoteID,
		record.EntityType,
		record.Payload,
		string(record.SyncState),
		string(record.PendingAction),
		record.LastModified.UnixMilli(),
		record.Attempts,
	)

	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by local ID
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) GetRecord(ctx context.Context, localID string) (*models.Record, error) {
	query := `
		SELECT local_id, remote_id, entity_type, payload,
		       sync_state, pending_action, last_modified, attempts
		FROM records
		WHERE local_id = ?
	`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, localID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

// GetUnsynced returns records of the entity family awaiting sync
func (s *Storage) GetUnsynced(ctx context.Context, entityType string) ([]*models.Record, error) {
	query := `
		SELECT local_id, remote_id, entity_type, payload,
		       sync_state, pending_action, last_modified, attempts
		FROM records
		WHERE entity_type = ? AND sync_state = ?
		ORDER BY last_modified ASC
	`

	rows, err := s.db.QueryContext(ctx, query, entityType, string(models.SyncStateUnsynced))
	if err != nil {
		return nil, fmt.Errorf("failed to query unsynced records: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// ClaimRecord transitions a record from Unsynced to Syncing.
// Одиночный conditional UPDATE гарантирует, что запись не будет захвачена
// двумя sync-проходами одновременно.
func (s *Storage) ClaimRecord(ctx context.Context, localID string) error {
	query := `
		UPDATE records
		SET sync_state = ?
		WHERE local_id = ? AND sync_state = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(models.SyncStateSyncing),
		localID,
		string(models.SyncStateUnsynced),
	)
	if err != nil {
		return fmt.Errorf("failed to claim record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		// Разбираемся, почему: запись захвачена или ее нет
		record, err := s.GetRecord(ctx, localID)
		if err != nil {
			return err
		}
		if record.SyncState == models.SyncStateSyncing {
			return storage.ErrRecordClaimed
		}
		return storage.ErrRecordNotFound
	}

	return nil
}

// MarkSynced records remote acknowledgment for a record
func (s *Storage) MarkSynced(ctx context.Context, localID, remoteID string) error {
	query := `
		UPDATE records
		SET sync_state = ?, remote_id = ?, pending_action = '', attempts = 0
		WHERE local_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, string(models.SyncStateSynced), remoteID, localID)
	if err != nil {
		return fmt.Errorf("failed to mark record synced: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// MarkFailed returns a claimed record to Unsynced and increments attempts
func (s *Storage) MarkFailed(ctx context.Context, localID string) error {
	query := `
		UPDATE records
		SET sync_state = ?, attempts = attempts + 1
		WHERE local_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, string(models.SyncStateUnsynced), localID)
	if err != nil {
		return fmt.Errorf("failed to mark record failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// DeleteRecord physically removes a record
func (s *Storage) DeleteRecord(ctx context.Context, localID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE local_id = ?`, localID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// PurgeSyncedBefore removes fully-synced records older than cutoff
func (s *Storage) PurgeSyncedBefore(ctx context.Context, entityType string, cutoff time.Time) (int, error) {
	query := `
		DELETE FROM records
		WHERE entity_type = ? AND sync_state = ? AND last_modified < ?
	`

	result, err := s.db.ExecContext(ctx, query,
		entityType,
		string(models.SyncStateSynced),
		cutoff.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge records: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(affected), nil
}

// CountPending returns the number of records awaiting sync
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*) FROM records
		WHERE sync_state IN (?, ?)
	`

	var count int
	err := s.db.QueryRowContext(ctx, query,
		string(models.SyncStateUnsynced),
		string(models.SyncStateSyncing),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}

	return count, nil
}

// scanner абстрагирует *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord читает одну строку таблицы records
func scanRecord(row scanner) (*models.Record, error) {
	record := &models.Record{}
	var (
		syncState     string
		pendingAction string
		lastModified  int64
	)

	err := row.Scan(
		&record.LocalID,
		&record.RemoteID,
		&record.EntityType,
		&record.Payload,
		&syncState,
		&pendingAction,
		&lastModified,
		&record.Attempts,
	)
	if err != nil {
		return nil, err
	}

	record.SyncState = models.SyncState(syncState)
	record.PendingAction = models.PendingAction(pendingAction)
	record.LastModified = time.UnixMilli(lastModified)

	return record, nil
}

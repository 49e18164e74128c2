package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

// newTestStorage создает in-memory SQLite storage
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// newTestRecord создает unsynced запись food log
func newTestRecord(t *testing.T, modified time.Time) *models.Record {
	t.Helper()

	return &models.Record{
		LocalID:       uuid.New().String(),
		EntityType:    models.EntityFoodLogs,
		Payload:       []byte(`{"name":"Oatmeal","calories":350}`),
		SyncState:     models.SyncStateUnsynced,
		PendingAction: models.ActionCreate,
		LastModified:  modified,
	}
}

func TestSaveRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	record := newTestRecord(t, time.Now())
	require.NoError(t, s.SaveRecord(ctx, record))

	got, err := s.GetRecord(ctx, record.LocalID)
	require.NoError(t, err)
	assert.Equal(t, record.LocalID, got.LocalID)
	assert.Equal(t, record.EntityType, got.EntityType)
	assert.Equal(t, record.Payload, got.Payload)
	assert.Equal(t, models.SyncStateUnsynced, got.SyncState)
	assert.Equal(t, models.ActionCreate, got.PendingAction)
	assert.Equal(t, record.LastModified.UnixMilli(), got.LastModified.UnixMilli())
}

func TestGetRecord_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestSaveRecord_Upsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	record := newTestRecord(t, time.Now())
	require.NoError(t, s.SaveRecord(ctx, record))

	// Повторное сохранение обновляет, а не дублирует
	record.Payload = []byte(`{"name":"Granola","calories":420}`)
	record.PendingAction = models.ActionUpdate
	require.NoError(t, s.SaveRecord(ctx, record))

	got, err := s.GetRecord(ctx, record.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.ActionUpdate, got.PendingAction)
	assert.Contains(t, string(got.Payload), "Granola")
}

func TestGetUnsynced_FiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	base := time.Now()

	// Две unsynced записи в обратном порядке модификации
	older := newTestRecord(t, base.Add(-time.Hour))
	newer := newTestRecord(t, base)
	require.NoError(t, s.SaveRecord(ctx, newer))
	require.NoError(t, s.SaveRecord(ctx, older))

	// Synced запись и запись другой entity family не должны попасть в выборку
	synced := newTestRecord(t, base)
	synced.SyncState = models.SyncStateSynced
	synced.RemoteID = "remote-1"
	synced.PendingAction = models.ActionNone
	require.NoError(t, s.SaveRecord(ctx, synced))

	water := newTestRecord(t, base)
	water.EntityType = models.EntityWater
	require.NoError(t, s.SaveRecord(ctx, water))

	records, err := s.GetUnsynced(ctx, models.EntityFoodLogs)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, older.LocalID, records[0].LocalID, "записи упорядочены по last_modified")
	assert.Equal(t, newer.LocalID, records[1].LocalID)
}

func TestClaimRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	record := newTestRecord(t, time.Now())
	require.NoError(t, s.SaveRecord(ctx, record))

	require.NoError(t, s.ClaimRecord(ctx, record.LocalID))

	got, err := s.GetRecord(ctx, record.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSyncing, got.SyncState)

	// Запись уже захвачена — второй проход получает ErrRecordClaimed
	assert.ErrorIs(t, s.ClaimRecord(ctx, record.LocalID), storage.ErrRecordClaimed)

	// Несуществующая запись
	assert.ErrorIs(t, s.ClaimRecord(ctx, "missing"), storage.ErrRecordNotFound)
}

func TestMarkSynced(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	record := newTestRecord(t, time.Now())
	record.Attempts = 2
	require.NoError(t, s.SaveRecord(ctx, record))
	require.NoError(t, s.ClaimRecord(ctx, record.LocalID))

	require.NoError(t, s.MarkSynced(ctx, record.LocalID, "remote-42"))

	got, err := s.GetRecord(ctx, record.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	assert.Equal(t, "remote-42", got.RemoteID)
	assert.Equal(t, models.ActionNone, got.PendingAction, "pending action очищается при подтверждении")
	assert.Zero(t, got.Attempts)
}

func TestMarkFailed_IncrementsAttempts(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	record := newTestRecord(t, time.Now())
	require.NoError(t, s.SaveRecord(ctx, record))
	require.NoError(t, s.ClaimRecord(ctx, record.LocalID))

	require.NoError(t, s.MarkFailed(ctx, record.LocalID))

	got, err := s.GetRecord(ctx, record.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateUnsynced, got.SyncState, "failed запись возвращается в unsynced")
	assert.Equal(t, 1, got.Attempts)

	// Запись снова доступна следующему проходу
	assert.NoError(t, s.ClaimRecord(ctx, record.LocalID))
}

func TestPurgeSyncedBefore(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	cutoff := time.Now().Add(-90 * 24 * time.Hour)

	oldSynced := newTestRecord(t, cutoff.Add(-time.Hour))
	oldSynced.SyncState = models.SyncStateSynced
	oldSynced.PendingAction = models.ActionNone
	oldSynced.RemoteID = "r1"
	require.NoError(t, s.SaveRecord(ctx, oldSynced))

	// Старая, но не synced — не удаляется
	oldUnsynced := newTestRecord(t, cutoff.Add(-time.Hour))
	require.NoError(t, s.SaveRecord(ctx, oldUnsynced))

	// Свежая synced — не удаляется
	freshSynced := newTestRecord(t, time.Now())
	freshSynced.SyncState = models.SyncStateSynced
	freshSynced.PendingAction = models.ActionNone
	freshSynced.RemoteID = "r2"
	require.NoError(t, s.SaveRecord(ctx, freshSynced))

	purged, err := s.PurgeSyncedBefore(ctx, models.EntityFoodLogs, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = s.GetRecord(ctx, oldSynced.LocalID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	_, err = s.GetRecord(ctx, oldUnsynced.LocalID)
	assert.NoError(t, err)
}

func TestCountPending(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	count, err := s.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	r1 := newTestRecord(t, time.Now())
	r2 := newTestRecord(t, time.Now())
	r2.EntityType = models.EntitySteps
	require.NoError(t, s.SaveRecord(ctx, r1))
	require.NoError(t, s.SaveRecord(ctx, r2))
	require.NoError(t, s.ClaimRecord(ctx, r2.LocalID))

	synced := newTestRecord(t, time.Now())
	synced.SyncState = models.SyncStateSynced
	require.NoError(t, s.SaveRecord(ctx, synced))

	count, err = s.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "unsynced и syncing считаются pending")
}

func TestNew_RecoversInterruptedSyncOnReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "platemate.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	record := newTestRecord(t, time.Now())
	require.NoError(t, s.SaveRecord(ctx, record))
	require.NoError(t, s.ClaimRecord(ctx, record.LocalID))

	// Захваченная запись невидима для GetUnsynced, но остается pending
	unsynced, err := s.GetUnsynced(ctx, models.EntityFoodLogs)
	require.NoError(t, err)
	assert.Empty(t, unsynced)

	count, err := s.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Процесс умер между ClaimRecord и MarkSynced/MarkFailed
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = reopened.Close()
	})

	// После рестарта запись снова в очереди
	unsynced, err = reopened.GetUnsynced(ctx, models.EntityFoodLogs)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, record.LocalID, unsynced[0].LocalID)
	assert.Equal(t, models.SyncStateUnsynced, unsynced[0].SyncState)

	count, err = reopened.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	record := newTestRecord(t, time.Now())
	record.PendingAction = models.ActionDelete
	require.NoError(t, s.SaveRecord(ctx, record))

	require.NoError(t, s.DeleteRecord(ctx, record.LocalID))
	_, err := s.GetRecord(ctx, record.LocalID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	assert.ErrorIs(t, s.DeleteRecord(ctx, record.LocalID), storage.ErrRecordNotFound)
}

package cli

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemate/platemate-sync/internal/client/diary"
	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/client/sync"
	"github.com/platemate/platemate-sync/internal/models"
)

func TestCli_UnknownCommand(t *testing.T) {
	io := &testIO{}
	cli := New(Deps{IO: io.mock()})

	err := cli.Run(context.Background(), "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: bogus")
	// Справка выводится вместе с ошибкой
	assert.Contains(t, io.String(), "Usage:")
}

func TestCli_runStatus(t *testing.T) {
	io := &testIO{}
	lastSync := time.Date(2025, 3, 10, 11, 45, 0, 0, time.UTC)
	metadata := &storage.MetadataStorageMock{
		GetLastSyncFunc: func(ctx context.Context) (time.Time, storage.SyncStatus, error) {
			return lastSync, storage.SyncStatusSuccess, nil
		},
	}
	syncService := &sync.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return 2, nil
		},
	}

	cli := New(Deps{
		IO:           io.mock(),
		Session:      &fakeSession{authenticated: true, userID: "user-1"},
		Entitlements: &fakeEntitlements{tier: models.TierPremiumMonthly},
		SyncService:  syncService,
		Metadata:     metadata,
	})

	require.NoError(t, cli.Run(context.Background(), "status", nil))

	output := io.String()
	assert.Contains(t, output, "authenticated (user-1)")
	assert.Contains(t, output, "premium_monthly")
	assert.Contains(t, output, "premium access")
	assert.Contains(t, output, "2025-03-10T11:45:00Z (success)")
	assert.Contains(t, output, "Pending:        2")
	assert.Contains(t, output, "Run 'platemate sync'")
}

func TestCli_runStatus_NeverSynced(t *testing.T) {
	io := &testIO{}
	metadata := &storage.MetadataStorageMock{
		GetLastSyncFunc: func(ctx context.Context) (time.Time, storage.SyncStatus, error) {
			return time.Time{}, storage.SyncStatusNever, nil
		},
	}
	syncService := &sync.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 0, nil },
	}

	cli := New(Deps{
		IO:           io.mock(),
		Session:      &fakeSession{},
		Entitlements: &fakeEntitlements{tier: models.TierFree},
		SyncService:  syncService,
		Metadata:     metadata,
	})

	require.NoError(t, cli.Run(context.Background(), "status", nil))

	output := io.String()
	assert.Contains(t, output, "not authenticated")
	assert.Contains(t, output, "Last sync:      never")
}

func TestCli_runEntitlement(t *testing.T) {
	io := &testIO{}
	entitlements := &fakeEntitlements{tier: models.TierVipLifetime}

	cli := New(Deps{IO: io.mock(), Entitlements: entitlements})

	require.NoError(t, cli.Run(context.Background(), "entitlement", nil))

	output := io.String()
	assert.Contains(t, output, "vip_lifetime")
	assert.Contains(t, output, "Premium access: yes")
	assert.Equal(t, 0, entitlements.cleared)
}

func TestCli_runEntitlement_Refresh(t *testing.T) {
	io := &testIO{}
	entitlements := &fakeEntitlements{tier: models.TierFree}

	cli := New(Deps{IO: io.mock(), Entitlements: entitlements})

	require.NoError(t, cli.Run(context.Background(), "entitlement", []string{"--refresh"}))
	assert.Equal(t, 1, entitlements.cleared)
	assert.Contains(t, io.String(), "Premium access: no")
}

func TestCli_runPurge(t *testing.T) {
	io := &testIO{}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var cutoffs []time.Time
	records := &storage.RecordStorageMock{
		PurgeSyncedBeforeFunc: func(ctx context.Context, entityType string, cutoff time.Time) (int, error) {
			cutoffs = append(cutoffs, cutoff)
			return 2, nil
		},
	}

	cli := New(Deps{IO: io.mock(), Records: records})
	cli.clock = func() time.Time { return now }

	require.NoError(t, cli.Run(context.Background(), "purge", nil))

	require.Len(t, cutoffs, len(models.SyncEntities))
	for _, cutoff := range cutoffs {
		assert.Equal(t, now.Add(-purgeRetention), cutoff)
	}
	assert.Contains(t, io.String(), fmt.Sprintf("Purged %d", 2*len(models.SyncEntities)))
}

func TestCli_runAddFood(t *testing.T) {
	io := &testIO{
		inputs: []string{
			"Oatmeal with berries", // name
			"breakfast",            // meal
			"320",                  // calories
			"12",                   // protein
			"",                     // carbs
			"",                     // fat
			"",                     // notes
		},
	}

	saved := map[string]*models.Record{}
	records := &storage.RecordStorageMock{
		SaveRecordFunc: func(ctx context.Context, record *models.Record) error {
			saved[record.LocalID] = record
			return nil
		},
	}

	cli := New(Deps{
		IO:           io.mock(),
		DiaryService: diary.NewService(records),
	})

	require.NoError(t, cli.Run(context.Background(), "add-food", nil))

	require.Len(t, saved, 1)
	for _, record := range saved {
		assert.Equal(t, models.EntityFoodLogs, record.EntityType)
		assert.Equal(t, models.SyncStateUnsynced, record.SyncState)
	}
	output := io.String()
	assert.Contains(t, output, "Meal logged")
	assert.Contains(t, output, "stored locally")
}

func TestCli_runAddFood_InvalidNumber(t *testing.T) {
	io := &testIO{
		inputs: []string{"Toast", "breakfast", "many"},
	}
	records := &storage.RecordStorageMock{}

	cli := New(Deps{
		IO:           io.mock(),
		DiaryService: diary.NewService(records),
	})

	err := cli.Run(context.Background(), "add-food", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid number "many"`)
	assert.Empty(t, records.SaveRecordCalls())
}

func TestCli_runAddWater_AutoSync(t *testing.T) {
	io := &testIO{inputs: []string{"250"}}

	records := &storage.RecordStorageMock{
		SaveRecordFunc: func(ctx context.Context, record *models.Record) error {
			return nil
		},
	}
	syncService := &sync.ServiceMock{
		SyncAllFunc: func(ctx context.Context) (*sync.Result, error) {
			return &sync.Result{Succeeded: 1}, nil
		},
		PullProfileFunc: func(ctx context.Context) error { return nil },
	}

	cli := New(Deps{
		IO:           io.mock(),
		DiaryService: diary.NewService(records),
		SyncService:  syncService,
	})

	require.NoError(t, cli.Run(context.Background(), "add-water", []string{"--sync"}))

	assert.Len(t, records.SaveRecordCalls(), 1)
	assert.Len(t, syncService.SyncAllCalls(), 1)
	assert.Contains(t, io.String(), "Water logged")
}

func TestCli_runAddWeight(t *testing.T) {
	io := &testIO{inputs: []string{"72.5"}}
	records := &storage.RecordStorageMock{
		SaveRecordFunc: func(ctx context.Context, record *models.Record) error {
			return nil
		},
	}

	cli := New(Deps{
		IO:           io.mock(),
		DiaryService: diary.NewService(records),
	})

	require.NoError(t, cli.Run(context.Background(), "add-weight", nil))
	assert.Len(t, records.SaveRecordCalls(), 1)
}

func TestCli_runAddExercise_EmptyName(t *testing.T) {
	io := &testIO{inputs: []string{""}}
	records := &storage.RecordStorageMock{}

	cli := New(Deps{
		IO:           io.mock(),
		DiaryService: diary.NewService(records),
	})

	err := cli.Run(context.Background(), "add-exercise", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exercise name cannot be empty")
}

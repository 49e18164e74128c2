package diary

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

// recordStore — простая in-memory замена RecordStorage для тестов
func recordStore() (*storage.RecordStorageMock, map[string]*models.Record) {
	records := make(map[string]*models.Record)
	mock := &storage.RecordStorageMock{
		SaveRecordFunc: func(ctx context.Context, record *models.Record) error {
			records[record.LocalID] = record
			return nil
		},
		GetRecordFunc: func(ctx context.Context, localID string) (*models.Record, error) {
			record, ok := records[localID]
			if !ok {
				return nil, fmt.Errorf("record %s not found", localID)
			}
			return record, nil
		},
	}
	return mock, records
}

func fixedClock(at time.Time) Option {
	return WithClock(func() time.Time { return at })
}

func TestService_AddFoodLog(t *testing.T) {
	mock, records := recordStore()
	now := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	svc := NewService(mock, fixedClock(now))

	localID, err := svc.AddFoodLog(context.Background(), &models.FoodLog{
		Name:     "Oatmeal with berries",
		MealType: "breakfast",
		Calories: 320,
		Protein:  12,
	})
	require.NoError(t, err)
	require.NotEmpty(t, localID)

	record := records[localID]
	require.NotNil(t, record)
	assert.Equal(t, models.EntityFoodLogs, record.EntityType)
	assert.Equal(t, models.SyncStateUnsynced, record.SyncState)
	assert.Equal(t, models.ActionCreate, record.PendingAction)
	assert.Equal(t, now, record.LastModified)
	assert.Empty(t, record.RemoteID)

	var stored models.FoodLog
	require.NoError(t, json.Unmarshal(record.Payload, &stored))
	assert.Equal(t, "Oatmeal with berries", stored.Name)
	// LoggedAt заполняется часами сервиса, если не задан
	assert.Equal(t, now, stored.LoggedAt)
}

func TestService_AddFoodLog_Invalid(t *testing.T) {
	mock, _ := recordStore()
	svc := NewService(mock)

	_, err := svc.AddFoodLog(context.Background(), &models.FoodLog{
		Name:     "",
		MealType: "breakfast",
	})
	require.Error(t, err)
	assert.Empty(t, mock.SaveRecordCalls())
}

func TestService_AddExercise(t *testing.T) {
	mock, records := recordStore()
	svc := NewService(mock)

	localID, err := svc.AddExercise(context.Background(), &models.Exercise{
		Name:           "Morning run",
		DurationMin:    30,
		CaloriesBurned: 280,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityExercises, records[localID].EntityType)
}

func TestService_AddWater_RejectsInvalidAmount(t *testing.T) {
	mock, _ := recordStore()
	svc := NewService(mock)

	_, err := svc.AddWater(context.Background(), &models.WaterIntake{AmountML: 0})
	require.Error(t, err)

	_, err = svc.AddWater(context.Background(), &models.WaterIntake{AmountML: 6000})
	require.Error(t, err)

	assert.Empty(t, mock.SaveRecordCalls())
}

func TestService_AddSteps(t *testing.T) {
	mock, records := recordStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := NewService(mock, fixedClock(now))

	localID, err := svc.AddSteps(context.Background(), &models.StepEntry{Count: 8500})
	require.NoError(t, err)
	assert.Equal(t, models.EntitySteps, records[localID].EntityType)

	_, err = svc.AddSteps(context.Background(), &models.StepEntry{Count: -1})
	require.Error(t, err)
}

func TestService_AddWeight(t *testing.T) {
	mock, records := recordStore()
	svc := NewService(mock)

	localID, err := svc.AddWeight(context.Background(), &models.WeightEntry{WeightKG: 72.5})
	require.NoError(t, err)
	assert.Equal(t, models.EntityWeights, records[localID].EntityType)
}

func TestService_RecordStreak(t *testing.T) {
	mock, records := recordStore()
	svc := NewService(mock)

	localID, err := svc.RecordStreak(context.Background(), &models.Streak{
		Kind:   "logging",
		Length: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityStreaks, records[localID].EntityType)
}

func TestService_UpdateFoodLog(t *testing.T) {
	mock, records := recordStore()
	svc := NewService(mock)
	ctx := context.Background()

	localID, err := svc.AddFoodLog(ctx, &models.FoodLog{
		Name:     "Salad",
		MealType: "lunch",
		Calories: 150,
	})
	require.NoError(t, err)

	// Обновление записи, которую сервер еще не видел, остается create'ом
	err = svc.UpdateFoodLog(ctx, localID, &models.FoodLog{
		Name:     "Salad with chicken",
		MealType: "lunch",
		Calories: 350,
		LoggedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionCreate, records[localID].PendingAction)

	// После успешного sync обновление становится update'ом
	records[localID].SyncState = models.SyncStateSynced
	records[localID].PendingAction = models.ActionNone
	records[localID].RemoteID = "srv-1"

	err = svc.UpdateFoodLog(ctx, localID, &models.FoodLog{
		Name:     "Salad with chicken and feta",
		MealType: "lunch",
		Calories: 420,
		LoggedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionUpdate, records[localID].PendingAction)
	assert.Equal(t, models.SyncStateUnsynced, records[localID].SyncState)

	var stored models.FoodLog
	require.NoError(t, json.Unmarshal(records[localID].Payload, &stored))
	assert.Equal(t, "Salad with chicken and feta", stored.Name)
}

func TestService_Update_WrongEntityType(t *testing.T) {
	mock, _ := recordStore()
	svc := NewService(mock)
	ctx := context.Background()

	localID, err := svc.AddWeight(ctx, &models.WeightEntry{WeightKG: 70})
	require.NoError(t, err)

	err = svc.UpdateFoodLog(ctx, localID, &models.FoodLog{
		Name:     "Toast",
		MealType: "breakfast",
		LoggedAt: time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not food_logs")
}

func TestService_Update_DeletedRecord(t *testing.T) {
	mock, _ := recordStore()
	svc := NewService(mock)
	ctx := context.Background()

	localID, err := svc.AddExercise(ctx, &models.Exercise{
		Name:        "Yoga",
		DurationMin: 45,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, localID))

	err = svc.UpdateExercise(ctx, localID, &models.Exercise{
		Name:        "Yoga extended",
		DurationMin: 60,
		LoggedAt:    time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleted")
}

func TestService_Delete(t *testing.T) {
	mock, records := recordStore()
	now := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	svc := NewService(mock, fixedClock(now))
	ctx := context.Background()

	localID, err := svc.AddWater(ctx, &models.WaterIntake{AmountML: 250})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, localID))

	record := records[localID]
	assert.True(t, record.IsTombstone())
	assert.Equal(t, models.SyncStateUnsynced, record.SyncState)
	assert.Equal(t, now, record.LastModified)
	// Запись остается в хранилище до подтверждения сервером
	assert.Len(t, records, 1)
}

func TestService_Delete_NotFound(t *testing.T) {
	mock, _ := recordStore()
	svc := NewService(mock)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
}

func TestService_Get(t *testing.T) {
	mock, _ := recordStore()
	svc := NewService(mock)
	ctx := context.Background()

	localID, err := svc.AddWeight(ctx, &models.WeightEntry{WeightKG: 68.2})
	require.NoError(t, err)

	record, err := svc.Get(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, localID, record.LocalID)

	_, err = svc.Get(ctx, "missing")
	require.Error(t, err)
}

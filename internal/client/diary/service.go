package diary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
	"github.com/platemate/platemate-sync/internal/validation"
)

// Service определяет интерфейс клиентского дневника. Каждая мутация
// становится Unsynced-записью в durable store: дневник работает офлайн,
// reconciler доставляет изменения на сервер позже.
type Service interface {
	AddFoodLog(ctx context.Context, entry *models.FoodLog) (string, error)
	AddExercise(ctx context.Context, entry *models.Exercise) (string, error)
	AddWater(ctx context.Context, entry *models.WaterIntake) (string, error)
	AddSteps(ctx context.Context, entry *models.StepEntry) (string, error)
	AddWeight(ctx context.Context, entry *models.WeightEntry) (string, error)
	RecordStreak(ctx context.Context, streak *models.Streak) (string, error)

	UpdateFoodLog(ctx context.Context, localID string, entry *models.FoodLog) error
	UpdateExercise(ctx context.Context, localID string, entry *models.Exercise) error

	// Delete превращает запись в tombstone: физическое удаление происходит
	// после подтверждения сервером
	Delete(ctx context.Context, localID string) error

	// Get возвращает запись по локальному ID
	Get(ctx context.Context, localID string) (*models.Record, error)
}

type service struct {
	records storage.RecordStorage
	clock   func() time.Time
}

// Option настраивает сервис
type Option func(*service)

// WithClock заменяет источник времени в тестах
func WithClock(clock func() time.Time) Option {
	return func(s *service) { s.clock = clock }
}

// NewService creates a new diary service
func NewService(records storage.RecordStorage, opts ...Option) Service {
	s := &service{
		records: records,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddFoodLog validates and stores a food log entry for later sync
func (s *service) AddFoodLog(ctx context.Context, entry *models.FoodLog) (string, error) {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = s.clock()
	}
	if err := validation.ValidateFoodLog(entry); err != nil {
		return "", fmt.Errorf("invalid food log: %w", err)
	}
	return s.create(ctx, models.EntityFoodLogs, entry)
}

// AddExercise validates and stores an exercise entry
func (s *service) AddExercise(ctx context.Context, entry *models.Exercise) (string, error) {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = s.clock()
	}
	if err := validation.ValidateExercise(entry); err != nil {
		return "", fmt.Errorf("invalid exercise: %w", err)
	}
	return s.create(ctx, models.EntityExercises, entry)
}

// AddWater validates and stores a water intake entry
func (s *service) AddWater(ctx context.Context, entry *models.WaterIntake) (string, error) {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = s.clock()
	}
	if err := validation.ValidateWaterIntake(entry); err != nil {
		return "", fmt.Errorf("invalid water intake: %w", err)
	}
	return s.create(ctx, models.EntityWater, entry)
}

// AddSteps stores a daily step count
func (s *service) AddSteps(ctx context.Context, entry *models.StepEntry) (string, error) {
	if entry.Count < 0 {
		return "", fmt.Errorf("step count cannot be negative")
	}
	if entry.Date.IsZero() {
		entry.Date = s.clock()
	}
	return s.create(ctx, models.EntitySteps, entry)
}

// AddWeight validates and stores a weight measurement
func (s *service) AddWeight(ctx context.Context, entry *models.WeightEntry) (string, error) {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = s.clock()
	}
	if err := validation.ValidateWeightEntry(entry); err != nil {
		return "", fmt.Errorf("invalid weight entry: %w", err)
	}
	return s.create(ctx, models.EntityWeights, entry)
}

// RecordStreak stores a streak update
func (s *service) RecordStreak(ctx context.Context, streak *models.Streak) (string, error) {
	if streak.Length < 0 {
		return "", fmt.Errorf("streak length cannot be negative")
	}
	return s.create(ctx, models.EntityStreaks, streak)
}

// UpdateFoodLog replaces the payload of an existing food log entry
func (s *service) UpdateFoodLog(ctx context.Context, localID string, entry *models.FoodLog) error {
	if err := validation.ValidateFoodLog(entry); err != nil {
		return fmt.Errorf("invalid food log: %w", err)
	}
	return s.update(ctx, localID, models.EntityFoodLogs, entry)
}

// UpdateExercise replaces the payload of an existing exercise entry
func (s *service) UpdateExercise(ctx context.Context, localID string, entry *models.Exercise) error {
	if err := validation.ValidateExercise(entry); err != nil {
		return fmt.Errorf("invalid exercise: %w", err)
	}
	return s.update(ctx, localID, models.EntityExercises, entry)
}

// Delete marks the record as a tombstone awaiting remote acknowledgment
func (s *service) Delete(ctx context.Context, localID string) error {
	record, err := s.records.GetRecord(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	record.PendingAction = models.ActionDelete
	record.SyncState = models.SyncStateUnsynced
	record.LastModified = s.clock()

	if err := s.records.SaveRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save tombstone: %w", err)
	}
	return nil
}

// Get возвращает запись по локальному ID
func (s *service) Get(ctx context.Context, localID string) (*models.Record, error) {
	return s.records.GetRecord(ctx, localID)
}

// create сериализует сущность и сохраняет новую Unsynced-запись
func (s *service) create(ctx context.Context, entityType string, entity any) (string, error) {
	payload, err := json.Marshal(entity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", entityType, err)
	}

	record := &models.Record{
		LocalID:       uuid.New().String(),
		EntityType:    entityType,
		SyncState:     models.SyncStateUnsynced,
		PendingAction: models.ActionCreate,
		Payload:       payload,
		LastModified:  s.clock(),
	}

	if err := s.records.SaveRecord(ctx, record); err != nil {
		return "", fmt.Errorf("failed to save record: %w", err)
	}

	return record.LocalID, nil
}

// update перезаписывает payload существующей записи и помечает ее Unsynced
func (s *service) update(ctx context.Context, localID, entityType string, entity any) error {
	record, err := s.records.GetRecord(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}
	if record.EntityType != entityType {
		return fmt.Errorf("record %s is %s, not %s", localID, record.EntityType, entityType)
	}
	if record.IsTombstone() {
		return fmt.Errorf("record %s is deleted", localID)
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", entityType, err)
	}

	record.Payload = payload
	record.SyncState = models.SyncStateUnsynced
	record.LastModified = s.clock()
	// Запись, которую сервер еще не видел, остается create'ом
	if record.PendingAction != models.ActionCreate {
		record.PendingAction = models.ActionUpdate
	}

	if err := s.records.SaveRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	httpClient "github.com/platemate/platemate-sync/internal/client/api"
	"github.com/platemate/platemate-sync/internal/client/identity"
	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
	pkgapi "github.com/platemate/platemate-sync/pkg/api"
)

const (
	// maxRetries — количество повторов после первой попытки (итого 3 попытки
	// на запись за проход)
	maxRetries = 2
	// DefaultRetryDelay — пауза между попытками
	DefaultRetryDelay = time.Second
	// DefaultSyncInterval — эвристика ShouldSync: синхронизироваться, если с
	// последней попытки прошло больше этого интервала
	DefaultSyncInterval = 15 * time.Minute
	// DefaultRetention — синхронизированные записи старше этого горизонта
	// вычищаются из локального хранилища
	DefaultRetention = 90 * 24 * time.Hour
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс sync-reconciler'а
type Service interface {
	// SyncAll выполняет полный проход синхронизации по всем entity families
	SyncAll(ctx context.Context) (*Result, error)

	// ShouldSync reports whether enough time has passed since the last
	// sync attempt to warrant another one
	ShouldSync(ctx context.Context) bool

	// PullProfile fetches the remote profile if no local profile exists
	// (local-wins)
	PullProfile(ctx context.Context) error

	// PushProfile sends the local profile outward
	PushProfile(ctx context.Context) error

	// PendingCount возвращает количество записей, ожидающих синхронизации
	PendingCount(ctx context.Context) (int, error)
}

// Connectivity — последнее известное состояние сети
type Connectivity interface {
	IsOnline() bool
}

// Result contains sync pass results
type Result struct {
	Succeeded int // записей подтверждено сервером
	Failed    int // записей исчерпали попытки и остались Unsynced
}

type service struct {
	apiClient    httpClient.ClientAPI
	records      storage.RecordStorage
	profiles     storage.ProfileStorage
	metadata     storage.MetadataStorage
	provider     identity.Provider
	connectivity Connectivity
	logger       *slog.Logger
	clock        func() time.Time
	retryDelay   time.Duration
	interval     time.Duration
	retention    time.Duration
}

// Option настраивает сервис
type Option func(*service)

// WithClock заменяет источник времени в тестах
func WithClock(clock func() time.Time) Option {
	return func(s *service) { s.clock = clock }
}

// WithRetryDelay overrides the inter-attempt delay
func WithRetryDelay(d time.Duration) Option {
	return func(s *service) { s.retryDelay = d }
}

// WithSyncInterval overrides the ShouldSync heuristic interval
func WithSyncInterval(d time.Duration) Option {
	return func(s *service) { s.interval = d }
}

// WithRetention overrides the purge horizon
func WithRetention(d time.Duration) Option {
	return func(s *service) { s.retention = d }
}

// NewService creates a new sync service
func NewService(
	apiClient httpClient.ClientAPI,
	records storage.RecordStorage,
	profiles storage.ProfileStorage,
	metadata storage.MetadataStorage,
	provider identity.Provider,
	connectivity Connectivity,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &service{
		apiClient:    apiClient,
		records:      records,
		profiles:     profiles,
		metadata:     metadata,
		provider:     provider,
		connectivity: connectivity,
		logger:       logger,
		clock:        time.Now,
		retryDelay:   DefaultRetryDelay,
		interval:     DefaultSyncInterval,
		retention:    DefaultRetention,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncAll performs a full reconciliation pass:
// 1. Offline gate: без сети проход не делает сетевой работы
// 2. Каждая entity family обрабатывается последовательно
// 3. Каждая запись: claim → dispatch → retry → markSynced/markFailed
// 4. Итог прохода фиксируется в metadata, старые synced-записи вычищаются
func (s *service) SyncAll(ctx context.Context) (*Result, error) {
	if !s.connectivity.IsOnline() {
		s.logger.Info("sync skipped: offline")
		return &Result{}, nil
	}

	accessToken, err := s.provider.IdentityToken(ctx)
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			return nil, fmt.Errorf("%w: %s", httpClient.ErrAuthentication, err)
		}
		return nil, fmt.Errorf("failed to get identity token: %w", err)
	}

	s.logger.Info("starting sync pass")

	result := &Result{}
	for _, entityType := range models.SyncEntities {
		unsynced, err := s.records.GetUnsynced(ctx, entityType)
		if err != nil {
			return nil, fmt.Errorf("failed to get unsynced %s: %w", entityType, err)
		}

		// Записи внутри family идут строго последовательно: это ограничивает
		// количество одновременных записей на сервер и упрощает retry-логику
		for _, record := range unsynced {
			if err := s.syncRecord(ctx, accessToken, record); err != nil {
				if errors.Is(err, storage.ErrRecordClaimed) {
					// Запись захвачена параллельным проходом, не наша
					continue
				}
				s.logger.Warn("record sync failed",
					"entity", entityType, "local_id", record.LocalID, "error", err)
				result.Failed++
				continue
			}
			result.Succeeded++
		}
	}

	now := s.clock()
	status := statusOf(result)
	if err := s.metadata.SaveLastSync(ctx, now, status); err != nil {
		s.logger.Warn("failed to save last sync metadata", "error", err)
	}

	s.purgeOld(ctx, now)

	s.logger.Info("sync pass finished",
		"succeeded", result.Succeeded, "failed", result.Failed, "status", string(status))

	return result, nil
}

// ShouldSync reports whether a sync pass is due. Никогда не
// синхронизировавшийся клиент синхронизируется сразу.
func (s *service) ShouldSync(ctx context.Context) bool {
	at, status, err := s.metadata.GetLastSync(ctx)
	if err != nil {
		s.logger.Warn("failed to read last sync metadata", "error", err)
		return true
	}
	if status == storage.SyncStatusNever {
		return true
	}
	return s.clock().Sub(at) > s.interval
}

// PullProfile — one-directional read: серверный профиль записывается локально
// только если локального нет. Существующий локальный профиль авторитетен и
// никогда молча не перезаписывается (local-wins).
func (s *service) PullProfile(ctx context.Context) error {
	_, err := s.profiles.GetProfile(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrProfileNotFound) {
		return fmt.Errorf("failed to read local profile: %w", err)
	}

	accessToken, err := s.provider.IdentityToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get identity token: %w", err)
	}
	userID, err := s.provider.UserID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}

	resp, err := s.apiClient.GetProfile(ctx, accessToken, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch remote profile: %w", err)
	}

	profile := httpClient.ProfileFromResponse(resp, userID)
	if err := s.profiles.SaveProfile(ctx, &profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("profile pulled", "user_id", profile.UserID)
	return nil
}

// PushProfile sends the local profile outward
func (s *service) PushProfile(ctx context.Context) error {
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local profile: %w", err)
	}

	accessToken, err := s.provider.IdentityToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get identity token: %w", err)
	}
	userID, err := s.provider.UserID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}

	if _, err := s.apiClient.UpdateProfile(ctx, accessToken, userID,
		httpClient.ProfileUpdateFromModel(*profile)); err != nil {
		return fmt.Errorf("failed to push profile: %w", err)
	}

	return nil
}

// PendingCount возвращает количество записей, ожидающих синхронизации
func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.records.CountPending(ctx)
}

// syncRecord проводит одну запись через claim → dispatch → ack
func (s *service) syncRecord(ctx context.Context, accessToken string, record *models.Record) error {
	if err := s.records.ClaimRecord(ctx, record.LocalID); err != nil {
		return err
	}

	action := record.PendingAction
	// PUT без remote id отправлять нельзя: update записи, которую сервер
	// еще не видел, становится create
	if action == models.ActionUpdate && record.NeedsCreate() {
		action = models.ActionCreate
	}

	// Tombstone записи, которую сервер никогда не видел: удаляем локально
	// без сетевого вызова
	if action == models.ActionDelete && record.NeedsCreate() {
		return s.records.DeleteRecord(ctx, record.LocalID)
	}

	remoteID, err := s.dispatchWithRetry(ctx, accessToken, record, action)
	if err != nil {
		if markErr := s.records.MarkFailed(ctx, record.LocalID); markErr != nil {
			s.logger.Warn("failed to mark record failed",
				"local_id", record.LocalID, "error", markErr)
		}
		return err
	}

	if action == models.ActionDelete {
		// Сервер подтвердил удаление: tombstone можно вычистить
		return s.records.DeleteRecord(ctx, record.LocalID)
	}

	return s.records.MarkSynced(ctx, record.LocalID, remoteID)
}

// dispatchWithRetry выполняет сетевую мутацию с ретраями. Ретраятся только
// transient-ошибки; auth и клиентские ошибки пробрасываются сразу.
func (s *service) dispatchWithRetry(
	ctx context.Context,
	accessToken string,
	record *models.Record,
	action models.PendingAction,
) (string, error) {
	var remoteID string

	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(s.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		id, err := s.dispatch(ctx, accessToken, record, action)
		if err != nil {
			if httpClient.IsTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		remoteID = id
		return nil
	})

	return remoteID, err
}

// dispatch выполняет одну сетевую попытку для записи
func (s *service) dispatch(
	ctx context.Context,
	accessToken string,
	record *models.Record,
	action models.PendingAction,
) (string, error) {
	switch action {
	case models.ActionCreate:
		payload, err := s.payloadOf(record)
		if err != nil {
			return "", err
		}
		resp, err := s.apiClient.CreateRecord(ctx, accessToken, record.EntityType, payload)
		if err != nil {
			return "", err
		}
		return resp.ID, nil

	case models.ActionUpdate:
		payload, err := s.payloadOf(record)
		if err != nil {
			return "", err
		}
		if _, err := s.apiClient.UpdateRecord(ctx, accessToken, record.EntityType, record.RemoteID, payload); err != nil {
			return "", err
		}
		return record.RemoteID, nil

	case models.ActionDelete:
		if err := s.apiClient.DeleteRecord(ctx, accessToken, record.EntityType, record.RemoteID); err != nil {
			return "", err
		}
		return record.RemoteID, nil

	default:
		return "", fmt.Errorf("record %s has no pending action", record.LocalID)
	}
}

// payloadOf собирает wire-представление записи. LocalID уходит на сервер как
// client_id — idempotency key против дубликатов при повторной доставке.
func (s *service) payloadOf(record *models.Record) (pkgapi.RecordPayload, error) {
	payload := pkgapi.RecordPayload{
		ClientID:     record.LocalID,
		EntityType:   record.EntityType,
		LastModified: record.LastModified.UnixMilli(),
	}
	if len(record.Payload) > 0 {
		if err := json.Unmarshal(record.Payload, &payload.Data); err != nil {
			return payload, fmt.Errorf("failed to decode record payload: %w", err)
		}
	}
	return payload, nil
}

// purgeOld вычищает давно синхронизированные записи за горизонтом хранения
func (s *service) purgeOld(ctx context.Context, now time.Time) {
	cutoff := now.Add(-s.retention)
	for _, entityType := range models.SyncEntities {
		purged, err := s.records.PurgeSyncedBefore(ctx, entityType, cutoff)
		if err != nil {
			s.logger.Warn("retention purge failed", "entity", entityType, "error", err)
			continue
		}
		if purged > 0 {
			s.logger.Info("purged old synced records", "entity", entityType, "count", purged)
		}
	}
}

func statusOf(result *Result) storage.SyncStatus {
	switch {
	case result.Failed == 0:
		return storage.SyncStatusSuccess
	case result.Succeeded > 0:
		return storage.SyncStatusPartial
	default:
		return storage.SyncStatusFailed
	}
}

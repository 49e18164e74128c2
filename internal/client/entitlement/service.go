package entitlement

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	httpClient "github.com/platemate/platemate-sync/internal/client/api"
	"github.com/platemate/platemate-sync/internal/client/identity"
	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
	pkgapi "github.com/platemate/platemate-sync/pkg/api"
)

// TTL-классы кэша entitlement'ов. Долгий применяется только к vip: это
// единственный tier, который практически не меняется. Платные и триальные
// подписки могут измениться в любой момент через внешний purchase-флоу.
const (
	ShortTTL = 5 * time.Minute
	LongTTL  = 24 * time.Hour
)

// ChangeEvent уведомляет подписчиков о смене entitlement-состояния
type ChangeEvent struct {
	Tier             models.Tier
	HasPremiumAccess bool
}

// Service отвечает на вопрос "есть ли у пользователя премиум-доступ".
// Порядок поиска: память → durable-кэш → backend validate → billing-провайдер.
// Любая ошибка на пути деградирует в Free: проверка прав никогда не
// возвращает ошибку вызывающему.
type Service struct {
	apiClient httpClient.ClientAPI
	provider  identity.Provider
	store     storage.EntitlementStorage
	billing   BillingProvider
	trial     *Trial
	logger    *slog.Logger
	clock     func() time.Time
	shortTTL  time.Duration
	longTTL   time.Duration

	mu     sync.RWMutex
	memory *models.EntitlementSnapshot

	obsMu     sync.Mutex
	observers map[int]func(ChangeEvent)
	nextObsID int
}

// ServiceOption настраивает Service
type ServiceOption func(*Service)

// WithServiceClock заменяет источник времени в тестах
func WithServiceClock(clock func() time.Time) ServiceOption {
	return func(s *Service) { s.clock = clock }
}

// WithTTLs overrides the cache TTL classes
func WithTTLs(short, long time.Duration) ServiceOption {
	return func(s *Service) {
		s.shortTTL = short
		s.longTTL = long
	}
}

// NewService создает сервис entitlement'ов
func NewService(
	apiClient httpClient.ClientAPI,
	provider identity.Provider,
	store storage.EntitlementStorage,
	billing BillingProvider,
	trial *Trial,
	logger *slog.Logger,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		apiClient: apiClient,
		provider:  provider,
		store:     store,
		billing:   billing,
		trial:     trial,
		logger:    logger,
		clock:     time.Now,
		shortTTL:  ShortTTL,
		longTTL:   LongTTL,
		observers: make(map[int]func(ChangeEvent)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasPremiumAccess reports whether the user currently has premium access.
// Никогда не возвращает ошибку: сбой проверки — это отсутствие доступа.
func (s *Service) HasPremiumAccess(ctx context.Context) bool {
	return s.snapshot(ctx).HasPremiumAccess
}

// GetTier returns the user's current subscription tier
func (s *Service) GetTier(ctx context.Context) models.Tier {
	return s.snapshot(ctx).Tier
}

// ClearCache инвалидирует оба уровня кэша: следующая проверка пойдет к
// авторитетному источнику. Вызывается при покупке, restore, logout и
// realtime-пуше об изменении entitlement'ов.
func (s *Service) ClearCache(ctx context.Context) {
	s.mu.Lock()
	s.memory = nil
	s.mu.Unlock()

	if err := s.store.DeleteSnapshot(ctx); err != nil &&
		!errors.Is(err, storage.ErrSnapshotNotFound) {
		s.logger.Warn("failed to delete entitlement snapshot", "error", err)
	}

	// UI реагирует на инвалидацию без поллинга: до следующей проверки
	// доступ считается отсутствующим
	s.notify(ChangeEvent{Tier: models.TierFree, HasPremiumAccess: false})
}

// OnChange subscribes to entitlement change events. Возвращенная функция
// отписывает слушателя.
func (s *Service) OnChange(listener func(ChangeEvent)) func() {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = listener
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

// snapshot возвращает актуальный EntitlementSnapshot, проходя уровни кэша
func (s *Service) snapshot(ctx context.Context) *models.EntitlementSnapshot {
	now := s.clock()

	// Уровень 1: память
	s.mu.RLock()
	cached := s.memory
	s.mu.RUnlock()
	if cached != nil && cached.Fresh(now, s.shortTTL, s.longTTL) {
		return cached
	}

	// Уровень 2: durable-кэш (переживает рестарт)
	if stored, err := s.store.GetSnapshot(ctx); err == nil {
		if stored.Fresh(now, s.shortTTL, s.longTTL) {
			s.mu.Lock()
			s.memory = stored
			s.mu.Unlock()
			return stored
		}
	} else if !errors.Is(err, storage.ErrSnapshotNotFound) {
		s.logger.Warn("failed to read entitlement snapshot", "error", err)
	}

	// Уровень 3: авторитетный источник
	return s.refresh(ctx)
}

// refresh опрашивает backend и billing-провайдер, приводит результат к
// одному tier'у и перезаписывает оба уровня кэша
func (s *Service) refresh(ctx context.Context) *models.EntitlementSnapshot {
	previous := s.currentTier()

	tier := s.resolveAuthoritative(ctx)

	snapshot := &models.EntitlementSnapshot{
		AsOf:             s.clock(),
		Tier:             tier,
		HasPremiumAccess: tier.HasPremiumAccess(),
		LongLivedTier:    tier.IsLongLived(),
	}

	s.mu.Lock()
	s.memory = snapshot
	s.mu.Unlock()

	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		s.logger.Warn("failed to persist entitlement snapshot", "error", err)
	}

	if tier != previous {
		s.notify(ChangeEvent{Tier: tier, HasPremiumAccess: snapshot.HasPremiumAccess})
	}

	return snapshot
}

func (s *Service) resolveAuthoritative(ctx context.Context) models.Tier {
	var (
		status    string
		productID string
	)

	accessToken, err := s.provider.IdentityToken(ctx)
	if err != nil {
		s.logger.Warn("entitlement check without session", "error", err)
		return models.TierFree
	}

	resp, err := s.apiClient.ValidateSubscription(ctx, accessToken)
	if err != nil {
		// Backend недоступен — не падаем, пробуем billing ниже
		s.logger.Warn("subscription validation failed", "error", err)
	} else {
		status = resp.Status
		productID = resp.ProductID
		s.applyTrialDates(resp)
	}

	trialTier := s.trial.CurrentTier()

	// Billing-провайдер — fallback: опрашивается только когда backend не
	// подтвердил премиум-статус
	var billing *BillingEntitlement
	if resolveTier(status, productID, trialTier, nil) == models.TierFree && s.billing.Available() {
		billing, err = s.billing.ActiveProduct(ctx)
		if err != nil {
			s.logger.Warn("billing entitlement query failed", "error", err)
			billing = nil
		}
	}

	return resolveTier(status, productID, trialTier, billing)
}

// applyTrialDates посеивает машину триала авторитетными датами backend'а
func (s *Service) applyTrialDates(resp *pkgapi.ValidateSubscriptionResponse) {
	if resp.TrialStartDate == "" {
		return
	}

	startedAt, err := time.Parse(time.RFC3339, resp.TrialStartDate)
	if err != nil {
		s.logger.Warn("invalid trial start date", "value", resp.TrialStartDate)
		return
	}

	endsAt := startedAt.Add(TrialDuration)
	if resp.TrialEndDate != "" {
		if parsed, err := time.Parse(time.RFC3339, resp.TrialEndDate); err == nil {
			endsAt = parsed
		}
	}

	var extendedEndsAt time.Time
	if resp.ExtendedTrialGranted && resp.ExtendedTrialEndDate != "" {
		if parsed, err := time.Parse(time.RFC3339, resp.ExtendedTrialEndDate); err == nil {
			extendedEndsAt = parsed
		}
	}

	s.trial.ApplyRemote(startedAt, endsAt, resp.ExtendedTrialGranted, extendedEndsAt)
}

func (s *Service) currentTier() models.Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.memory == nil {
		return models.TierFree
	}
	return s.memory.Tier
}

func (s *Service) notify(event ChangeEvent) {
	s.obsMu.Lock()
	listeners := make([]func(ChangeEvent), 0, len(s.observers))
	for _, l := range s.observers {
		listeners = append(listeners, l)
	}
	s.obsMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

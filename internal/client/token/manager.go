package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	httpClient "github.com/platemate/platemate-sync/internal/client/api"
	"github.com/platemate/platemate-sync/internal/client/identity"
	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/crypto"
	"github.com/platemate/platemate-sync/internal/models"
)

// DefaultRefreshMargin — токен, истекающий в пределах этого окна, обновляется
// заранее, чтобы не протухнуть посреди начатой операции
const DefaultRefreshMargin = 5 * time.Minute

// DefaultFallbackTTL применяется, когда сервер не сообщил expires_in и в
// токене нет exp claim
const DefaultFallbackTTL = 30 * time.Minute

// Manager кэширует bearer-токены downstream-сервисов: in-memory кэш первого
// уровня, зашифрованный durable-кэш второго уровня и refresh через backend.
// Конкурентные запросы одного и того же протухшего токена коалесцируются:
// сеть видит ровно один refresh на сервис.
type Manager struct {
	apiClient httpClient.ClientAPI
	provider  identity.Provider
	tokens    storage.TokenStorage
	logger    *slog.Logger
	clock     func() time.Time
	cipherKey []byte
	margin    time.Duration

	mu    sync.RWMutex
	cache map[string]*models.TokenRecord

	group singleflight.Group
}

// Option настраивает Manager
type Option func(*Manager)

// WithRefreshMargin overrides the pre-expiry refresh window
func WithRefreshMargin(margin time.Duration) Option {
	return func(m *Manager) { m.margin = margin }
}

// WithClock заменяет источник времени в тестах
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) { m.clock = clock }
}

// NewManager создает менеджер токенов. cipherKey — 32-байтовый ключ
// шифрования токенов на диске.
func NewManager(
	apiClient httpClient.ClientAPI,
	provider identity.Provider,
	tokens storage.TokenStorage,
	cipherKey []byte,
	logger *slog.Logger,
	opts ...Option,
) *Manager {
	m := &Manager{
		apiClient: apiClient,
		provider:  provider,
		tokens:    tokens,
		cipherKey: cipherKey,
		logger:    logger,
		clock:     time.Now,
		margin:    DefaultRefreshMargin,
		cache:     make(map[string]*models.TokenRecord),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns a valid token for the service, refreshing it when expired or
// inside the refresh margin. Identity-токен не рефрешится здесь: его выдает
// identity.Provider, протухшая сессия — это re-login, не refresh.
func (m *Manager) Get(ctx context.Context, serviceID string) (string, error) {
	if serviceID == models.ServiceIdentity {
		token, err := m.provider.IdentityToken(ctx)
		if err != nil {
			if errors.Is(err, identity.ErrNoSession) {
				return "", fmt.Errorf("%w: %s", httpClient.ErrAuthentication, err)
			}
			return "", err
		}
		return token, nil
	}

	now := m.clock()

	// Уровень 1: память
	m.mu.RLock()
	record, ok := m.cache[serviceID]
	m.mu.RUnlock()
	if ok && record.ValidFor(now, m.margin) {
		return record.Token, nil
	}

	// Уровень 2: durable-кэш (посев после рестарта процесса)
	if !ok {
		if stored, err := m.loadStored(ctx, serviceID); err == nil {
			m.mu.Lock()
			m.cache[serviceID] = stored
			m.mu.Unlock()
			if stored.ValidFor(now, m.margin) {
				return stored.Token, nil
			}
		}
	}

	// Уровень 3: refresh через backend, коалесцированный по serviceID
	result, err, _ := m.group.Do(serviceID, func() (interface{}, error) {
		// Другая горутина могла успеть обновить токен, пока эта ждала
		m.mu.RLock()
		current, ok := m.cache[serviceID]
		m.mu.RUnlock()
		if ok && current.ValidFor(m.clock(), m.margin) {
			return current, nil
		}
		// Refresh разделяется всеми коалесцированными вызовами: отмена
		// контекста первого из них не должна ронять остальных
		return m.refresh(context.WithoutCancel(ctx), serviceID)
	})
	if err != nil {
		return "", err
	}

	return result.(*models.TokenRecord).Token, nil
}

// Invalidate drops the cached token for the service. Следующий Get пойдет
// за свежим токеном на backend.
func (m *Manager) Invalidate(ctx context.Context, serviceID string) error {
	m.mu.Lock()
	delete(m.cache, serviceID)
	m.mu.Unlock()

	if err := m.tokens.DeleteToken(ctx, serviceID); err != nil &&
		!errors.Is(err, storage.ErrTokenNotFound) {
		return fmt.Errorf("failed to delete stored token: %w", err)
	}
	return nil
}

// ClearAll drops all cached tokens (logout)
func (m *Manager) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	m.cache = make(map[string]*models.TokenRecord)
	m.mu.Unlock()

	if err := m.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("failed to clear stored tokens: %w", err)
	}
	return nil
}

// CachedServices returns service IDs currently held in the in-memory cache
func (m *Manager) CachedServices() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	services := make([]string, 0, len(m.cache))
	for serviceID := range m.cache {
		services = append(services, serviceID)
	}
	return services
}

// refresh выпускает новый токен через backend и сохраняет его в оба уровня
// кэша
func (m *Manager) refresh(ctx context.Context, serviceID string) (*models.TokenRecord, error) {
	identityToken, err := m.provider.IdentityToken(ctx)
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			return nil, fmt.Errorf("%w: %s", httpClient.ErrAuthentication, err)
		}
		return nil, fmt.Errorf("failed to get identity token: %w", err)
	}

	resp, err := m.apiClient.GetServiceToken(ctx, identityToken, serviceID)
	if err != nil {
		// ErrAuthentication пробрасывается как есть: вызывающий должен
		// инициировать re-login, а не ретраить
		return nil, err
	}

	record := &models.TokenRecord{
		ServiceID: serviceID,
		Token:     resp.Token,
		TokenType: resp.TokenType,
		ExpiresAt: m.expiryOf(resp.Token, resp.ExpiresIn),
	}

	m.mu.Lock()
	m.cache[serviceID] = record
	m.mu.Unlock()

	if err := m.store(ctx, record); err != nil {
		// Durable-кэш — оптимизация: его отказ не делает свежий токен
		// невалидным
		m.logger.Warn("failed to persist token", "service", serviceID, "error", err)
	}

	m.logger.Debug("token refreshed", "service", serviceID, "expires_at", record.ExpiresAt)

	return record, nil
}

// expiryOf определяет момент истечения токена: expires_in от сервера,
// иначе exp claim из самого JWT, иначе консервативный fallback
func (m *Manager) expiryOf(token string, expiresIn int64) time.Time {
	if expiresIn > 0 {
		return m.clock().Add(time.Duration(expiresIn) * time.Second)
	}

	// Подпись не проверяем: клиент не валидирует чужие токены, ему нужен
	// только exp claim
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}

	return m.clock().Add(DefaultFallbackTTL)
}

func (m *Manager) store(ctx context.Context, record *models.TokenRecord) error {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal token record: %w", err)
	}

	encrypted, err := crypto.Encrypt(plaintext, m.cipherKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt token record: %w", err)
	}

	return m.tokens.SaveToken(ctx, record.ServiceID, encrypted)
}

func (m *Manager) loadStored(ctx context.Context, serviceID string) (*models.TokenRecord, error) {
	encrypted, err := m.tokens.GetToken(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Decrypt(encrypted, m.cipherKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token record: %w", err)
	}

	var record models.TokenRecord
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token record: %w", err)
	}

	return &record, nil
}

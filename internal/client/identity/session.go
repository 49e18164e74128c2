package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/crypto"
	"github.com/platemate/platemate-sync/internal/models"
)

// ErrNoSession возвращается, когда валидной сессии нет (logout или истечение)
var ErrNoSession = errors.New("no active session")

// sessionData — сериализуемое состояние сессии. На диске хранится только
// в зашифрованном виде.
type sessionData struct {
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
}

// Session implements Provider on top of encrypted token storage.
// Identity-токен переживает рестарт процесса: при старте он читается из
// storage и расшифровывается ключом, деривированным из device secret.
type Session struct {
	tokens    storage.TokenStorage
	clock     func() time.Time
	cipherKey []byte

	mu      sync.RWMutex
	current *sessionData
}

var _ Provider = (*Session)(nil)

// SessionOption настраивает Session
type SessionOption func(*Session)

// WithClock заменяет источник времени в тестах
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// NewSession создает провайдер сессии. cipherKey — 32-байтовый ключ
// шифрования credential'ов на диске.
func NewSession(tokens storage.TokenStorage, cipherKey []byte, opts ...SessionOption) *Session {
	s := &Session{
		tokens:    tokens,
		cipherKey: cipherKey,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSession saves a fresh identity token after login
func (s *Session) SetSession(ctx context.Context, token, userID string, expiresAt time.Time) error {
	data := &sessionData{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}

	plaintext, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	encrypted, err := crypto.Encrypt(plaintext, s.cipherKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt session: %w", err)
	}

	if err := s.tokens.SaveToken(ctx, models.ServiceIdentity, encrypted); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.current = data
	s.mu.Unlock()

	return nil
}

// Clear removes the session (logout)
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.tokens.DeleteToken(ctx, models.ServiceIdentity); err != nil &&
		!errors.Is(err, storage.ErrTokenNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IdentityToken returns a currently valid session token
func (s *Session) IdentityToken(ctx context.Context) (string, error) {
	data, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	// Истекший токен бесполезен: пользователь должен войти заново
	if !data.ExpiresAt.IsZero() && !s.clock().Before(data.ExpiresAt) {
		return "", ErrNoSession
	}

	return data.Token, nil
}

// UserID returns the authenticated user's ID
func (s *Session) UserID(ctx context.Context) (string, error) {
	data, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return "", nil
		}
		return "", err
	}
	return data.UserID, nil
}

// IsAuthenticated reports whether a usable session exists
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.IdentityToken(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// load возвращает сессию из памяти, при рестарте процесса поднимает ее
// из зашифрованного storage
func (s *Session) load(ctx context.Context) (*sessionData, error) {
	s.mu.RLock()
	if s.current != nil {
		data := s.current
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	encrypted, err := s.tokens.GetToken(ctx, models.ServiceIdentity)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	plaintext, err := crypto.Decrypt(encrypted, s.cipherKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	s.mu.Lock()
	s.current = &data
	s.mu.Unlock()

	return &data, nil
}

package storage

import "context"

//go:generate moq -out tokens_mock.go . TokenStorage

// TokenStorage defines interface for durable token persistence keyed by
// service ID. This is the lowest storage layer — it works with raw data
// (already encrypted token records) and doesn't perform any
// encryption/decryption itself.
type TokenStorage interface {
	// SaveToken stores an encrypted token record for the service
	SaveToken(ctx context.Context, serviceID string, data []byte) error

	// GetToken retrieves the encrypted token record for the service
	// Returns ErrTokenNotFound if no token is stored
	GetToken(ctx context.Context, serviceID string) ([]byte, error)

	// DeleteToken removes the stored token for the service
	DeleteToken(ctx context.Context, serviceID string) error

	// ListTokenServices returns service IDs that have a stored token.
	// Используется для посева in-memory кэша при старте процесса.
	ListTokenServices(ctx context.Context) ([]string, error)

	// ClearTokens removes all stored tokens (logout)
	ClearTokens(ctx context.Context) error
}

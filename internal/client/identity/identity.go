package identity

import "context"

//go:generate moq -out identity_mock.go . Provider

// Provider defines the source of the user's session identity.
// Identity-токен — это сессионный credential самого приложения; токены
// downstream-сервисов выпускаются отдельно через token.Manager и живут
// по своим правилам.
type Provider interface {
	// IdentityToken returns a currently valid session token.
	// Возвращает api.ErrAuthentication (обернутую), если сессии нет.
	IdentityToken(ctx context.Context) (string, error)

	// UserID returns the authenticated user's ID, or empty string when
	// logged out
	UserID(ctx context.Context) (string, error)

	// IsAuthenticated reports whether a usable session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

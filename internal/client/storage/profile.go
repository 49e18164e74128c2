package storage

import (
	"context"

	"github.com/platemate/platemate-sync/internal/models"
)

//go:generate moq -out profile_mock.go . ProfileStorage

// ProfileStorage defines interface for the local user profile.
// Локальная копия авторитетна: pull с сервера записывает профиль только
// если локального нет (local-wins).
type ProfileStorage interface {
	// SaveProfile stores or replaces the local profile
	SaveProfile(ctx context.Context, profile *models.Profile) error

	// GetProfile retrieves the local profile
	// Returns ErrProfileNotFound if no profile exists
	GetProfile(ctx context.Context) (*models.Profile, error)

	// DeleteProfile removes the local profile (logout)
	DeleteProfile(ctx context.Context) error
}

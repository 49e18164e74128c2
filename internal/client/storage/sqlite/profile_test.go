package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

func TestProfile_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)

	profile := &models.Profile{
		UserID:             "user-1",
		Email:              "alice@example.com",
		FirstName:          "Alice",
		Gender:             "female",
		Age:                30,
		Height:             168,
		Weight:             62.5,
		ActivityLevel:      "moderate",
		WeightGoal:         "maintain",
		TargetWeight:       62,
		OnboardingComplete: true,
		UpdatedAt:          time.Now().Truncate(time.Millisecond),
	}
	require.NoError(t, s.SaveProfile(ctx, profile))

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, got.UserID)
	assert.Equal(t, profile.Email, got.Email)
	assert.Equal(t, profile.Weight, got.Weight)
	assert.True(t, got.OnboardingComplete)
	assert.Equal(t, profile.UpdatedAt.UnixMilli(), got.UpdatedAt.UnixMilli())

	require.NoError(t, s.DeleteProfile(ctx))
	_, err = s.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)
}

func TestProfile_SingleRow(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	first := &models.Profile{UserID: "user-1", UpdatedAt: time.Now()}
	require.NoError(t, s.SaveProfile(ctx, first))

	// Повторное сохранение заменяет единственную строку
	second := &models.Profile{UserID: "user-2", Email: "bob@example.com", UpdatedAt: time.Now()}
	require.NoError(t, s.SaveProfile(ctx, second))

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-2", got.UserID)
	assert.Equal(t, "bob@example.com", got.Email)
}

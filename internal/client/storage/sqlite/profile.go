package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

// SaveProfile stores or replaces the local profile.
// Таблица profile хранит ровно одну строку (id = 1).
func (s *Storage) SaveProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profile (
			id, user_id, email, first_name, last_name, gender, age,
			height, weight, activity_level, weight_goal, target_weight,
			onboarding_complete, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			gender = excluded.gender,
			age = excluded.age,
			height = excluded.height,
			weight = excluded.weight,
			activity_level = excluded.activity_level,
			weight_goal = excluded.weight_goal,
			target_weight = excluded.target_weight,
			onboarding_complete = excluded.onboarding_complete,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		profile.UserID,
		profile.Email,
		profile.FirstName,
		profile.LastName,
		profile.Gender,
		profile.Age,
		profile.Height,
		profile.Weight,
		profile.ActivityLevel,
		profile.WeightGoal,
		profile.TargetWeight,
		boolToInt(profile.OnboardingComplete),
		profile.UpdatedAt.UnixMilli(),
	)

	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves the local profile
// Returns ErrProfileNotFound if no profile exists
func (s *Storage) GetProfile(ctx context.Context) (*models.Profile, error) {
	query := `
		SELECT user_id, email, first_name, last_name, gender, age,
		       height, weight, activity_level, weight_goal, target_weight,
		       onboarding_complete, updated_at
		FROM profile
		WHERE id = 1
	`

	profile := &models.Profile{}
	var (
		onboarding int
		updatedAt  int64
	)

	err := s.db.QueryRowContext(ctx, query).Scan(
		&profile.UserID,
		&profile.Email,
		&profile.FirstName,
		&profile.LastName,
		&profile.Gender,
		&profile.Age,
		&profile.Height,
		&profile.Weight,
		&profile.ActivityLevel,
		&profile.WeightGoal,
		&profile.TargetWeight,
		&onboarding,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.OnboardingComplete = onboarding != 0
	profile.UpdatedAt = time.UnixMilli(updatedAt)

	return profile, nil
}

// DeleteProfile removes the local profile (logout)
func (s *Storage) DeleteProfile(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profile WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// boolToInt конвертирует bool в 0/1 для SQLite
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

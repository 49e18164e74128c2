package api

import (
	"time"

	"github.com/platemate/platemate-sync/internal/models"
	"github.com/platemate/platemate-sync/pkg/api"
)

// ProfileFromResponse конвертирует wire-представление профиля в локальную
// модель. Сервер может прислать чужой id (известный артефакт агрегации на
// бэкенде), поэтому identity вызывающего имеет приоритет над телом ответа.
func ProfileFromResponse(resp *api.ProfileResponse, ownUserID string) models.Profile {
	userID := ownUserID
	if userID == "" {
		userID = resp.ID
	}

	return models.Profile{
		UserID:             userID,
		Email:              resp.Email,
		FirstName:          resp.FirstName,
		LastName:           resp.LastName,
		Gender:             resp.Gender,
		Age:                resp.Age,
		Height:             resp.Height,
		Weight:             resp.Weight,
		ActivityLevel:      resp.ActivityLevel,
		WeightGoal:         resp.WeightGoal,
		TargetWeight:       resp.TargetWeight,
		OnboardingComplete: resp.OnboardingComplete,
		UpdatedAt:          time.UnixMilli(resp.UpdatedAt),
	}
}

// ProfileUpdateFromModel строит запрос на обновление профиля из локальной
// модели
func ProfileUpdateFromModel(p models.Profile) api.ProfileUpdateRequest {
	return api.ProfileUpdateRequest{
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Gender:             p.Gender,
		Age:                p.Age,
		Height:             p.Height,
		Weight:             p.Weight,
		ActivityLevel:      p.ActivityLevel,
		WeightGoal:         p.WeightGoal,
		TargetWeight:       p.TargetWeight,
		OnboardingComplete: p.OnboardingComplete,
	}
}

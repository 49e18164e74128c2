package api

// ProfileResponse представляет профиль пользователя в wire-формате.
// Это отдельная от локальной модели структура: конвертация между ними
// выполняется явными mapping-функциями на границе (internal/client/api).
type ProfileResponse struct {
	ID                 string  `json:"id"`
	Email              string  `json:"email"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	ActivityLevel      string  `json:"activity_level"`
	WeightGoal         string  `json:"weight_goal"`
	TargetWeight       float64 `json:"target_weight"`
	OnboardingComplete bool    `json:"onboarding_complete"`
	UpdatedAt          int64   `json:"updated_at"` // unix ms
}

// ProfileUpdateRequest представляет запрос PUT /users/:id
type ProfileUpdateRequest struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	ActivityLevel      string  `json:"activity_level"`
	WeightGoal         string  `json:"weight_goal"`
	TargetWeight       float64 `json:"target_weight"`
	OnboardingComplete bool    `json:"onboarding_complete"`
}

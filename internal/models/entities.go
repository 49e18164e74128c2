package models

import "time"

// FoodLog представляет запись о приеме пищи
type FoodLog struct {
	LoggedAt time.Time `json:"logged_at"`
	Name     string    `json:"name"`      // название блюда или продукта
	MealType string    `json:"meal_type"` // breakfast, lunch, dinner, snack
	Notes    string    `json:"notes"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"` // граммы
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

// Exercise представляет запись о тренировке
type Exercise struct {
	LoggedAt       time.Time `json:"logged_at"`
	Name           string    `json:"name"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
}

// WaterIntake представляет запись о выпитой воде
type WaterIntake struct {
	LoggedAt time.Time `json:"logged_at"`
	AmountML int       `json:"amount_ml"`
}

// StepEntry представляет дневной счетчик шагов
type StepEntry struct {
	Date  time.Time `json:"date"` // день, за который учтены шаги
	Count int       `json:"count"`
}

// Streak представляет серию дней подряд с выполненной целью
type Streak struct {
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Kind      string    `json:"kind"` // logging, calorie_goal, water_goal
	Length    int       `json:"length"`
}

// WeightEntry представляет замер веса
type WeightEntry struct {
	LoggedAt time.Time `json:"logged_at"`
	WeightKG float64   `json:"weight_kg"`
}

// Profile представляет локальную копию профиля пользователя.
// Конфликты с серверной копией разрешаются в пользу локальной (local-wins):
// pull записывает серверный профиль только если локального нет.
type Profile struct {
	UpdatedAt          time.Time `json:"updated_at"`
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Gender             string    `json:"gender"`
	ActivityLevel      string    `json:"activity_level"`
	WeightGoal         string    `json:"weight_goal"`
	Age                int       `json:"age"`
	Height             float64   `json:"height"`
	Weight             float64   `json:"weight"`
	TargetWeight       float64   `json:"target_weight"`
	OnboardingComplete bool      `json:"onboarding_complete"`
}

package validation

import (
	"fmt"

	"github.com/platemate/platemate-sync/internal/models"
)

// Допустимые значения meal_type
var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

const (
	// MaxNameLen максимальная длина названия блюда/упражнения
	MaxNameLen = 200
	// MaxNotesLen максимальная длина свободного текста заметки
	MaxNotesLen = 2000
)

// ValidateFoodLog проверяет запись о приеме пищи перед сохранением.
// Валидация выполняется на границе: в хранилище попадают только корректные записи.
func ValidateFoodLog(f *models.FoodLog) error {
	if f.Name == "" {
		return fmt.Errorf("food name cannot be empty")
	}
	if len(f.Name) > MaxNameLen {
		return fmt.Errorf("food name must not exceed %d characters", MaxNameLen)
	}
	if len(f.Notes) > MaxNotesLen {
		return fmt.Errorf("notes must not exceed %d characters", MaxNotesLen)
	}
	if f.MealType != "" && !mealTypes[f.MealType] {
		return fmt.Errorf("invalid meal type: %s", f.MealType)
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		return fmt.Errorf("nutrition values cannot be negative")
	}
	if f.LoggedAt.IsZero() {
		return fmt.Errorf("logged_at must be set")
	}
	return nil
}

// ValidateExercise проверяет запись о тренировке
func ValidateExercise(e *models.Exercise) error {
	if e.Name == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if len(e.Name) > MaxNameLen {
		return fmt.Errorf("exercise name must not exceed %d characters", MaxNameLen)
	}
	if e.DurationMin <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if e.CaloriesBurned < 0 {
		return fmt.Errorf("calories burned cannot be negative")
	}
	return nil
}

// ValidateWaterIntake проверяет запись о выпитой воде
func ValidateWaterIntake(w *models.WaterIntake) error {
	if w.AmountML <= 0 {
		return fmt.Errorf("water amount must be positive")
	}
	// Разовый объем больше 5 литров почти наверняка ошибка ввода
	if w.AmountML > 5000 {
		return fmt.Errorf("water amount exceeds 5000 ml")
	}
	return nil
}

// ValidateWeightEntry проверяет замер веса
func ValidateWeightEntry(w *models.WeightEntry) error {
	if w.WeightKG <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if w.WeightKG > 500 {
		return fmt.Errorf("weight exceeds 500 kg")
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/platemate/platemate-sync/internal/models"
)

func (c *Cli) runAddFood(ctx context.Context, args []string) error {
	c.io.Println("=== Log Meal ===")
	c.io.Println()

	name, err := c.io.ReadInput("Food name (e.g., 'Oatmeal with berries'): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("food name cannot be empty")
	}

	mealType, err := c.io.ReadInput("Meal (breakfast/lunch/dinner/snack): ")
	if err != nil {
		return fmt.Errorf("failed to read meal type: %w", err)
	}

	calories, err := c.readFloat("Calories: ")
	if err != nil {
		return err
	}
	protein, err := c.readFloat("Protein (g, optional): ")
	if err != nil {
		return err
	}
	carbs, err := c.readFloat("Carbs (g, optional): ")
	if err != nil {
		return err
	}
	fat, err := c.readFloat("Fat (g, optional): ")
	if err != nil {
		return err
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	entry := &models.FoodLog{
		Name:     name,
		MealType: mealType,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Notes:    notes,
	}

	localID, err := c.diaryService.AddFoodLog(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to log meal: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Meal logged!")
	c.io.Printf("ID: %s\n", localID)

	return c.afterAdd(ctx, args)
}

func (c *Cli) runAddWater(ctx context.Context, args []string) error {
	c.io.Println("=== Log Water ===")
	c.io.Println()

	amount, err := c.readInt("Amount (ml): ")
	if err != nil {
		return err
	}

	localID, err := c.diaryService.AddWater(ctx, &models.WaterIntake{AmountML: amount})
	if err != nil {
		return fmt.Errorf("failed to log water: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Water logged!")
	c.io.Printf("ID: %s\n", localID)

	return c.afterAdd(ctx, args)
}

func (c *Cli) runAddExercise(ctx context.Context, args []string) error {
	c.io.Println("=== Log Workout ===")
	c.io.Println()

	name, err := c.io.ReadInput("Exercise name (e.g., 'Morning run'): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}

	duration, err := c.readInt("Duration (minutes): ")
	if err != nil {
		return err
	}
	calories, err := c.readFloat("Calories burned (optional): ")
	if err != nil {
		return err
	}

	entry := &models.Exercise{
		Name:           name,
		DurationMin:    duration,
		CaloriesBurned: calories,
	}

	localID, err := c.diaryService.AddExercise(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to log workout: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Workout logged!")
	c.io.Printf("ID: %s\n", localID)

	return c.afterAdd(ctx, args)
}

func (c *Cli) runAddWeight(ctx context.Context, args []string) error {
	c.io.Println("=== Log Weight ===")
	c.io.Println()

	weight, err := c.readFloat("Weight (kg): ")
	if err != nil {
		return err
	}

	localID, err := c.diaryService.AddWeight(ctx, &models.WeightEntry{WeightKG: weight})
	if err != nil {
		return fmt.Errorf("failed to log weight: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Weight logged!")
	c.io.Printf("ID: %s\n", localID)

	return c.afterAdd(ctx, args)
}

// afterAdd досинхронизирует запись при флаге --sync, иначе напоминает
// про отложенную отправку
func (c *Cli) afterAdd(ctx context.Context, args []string) error {
	if hasFlag(args, "--sync") {
		c.io.Println()
		return c.runSync(ctx)
	}
	c.io.Println("Entry is stored locally. Run 'platemate sync' to push it to the server.")
	return nil
}

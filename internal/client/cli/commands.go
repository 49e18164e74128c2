package cli

import (
	"context"
	"fmt"
)

// Run dispatches a CLI command. Возвращает ошибку наверх: код выхода
// решает main.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "pending":
		return c.runPending(ctx)
	case "add-food":
		return c.runAddFood(ctx, args)
	case "add-water":
		return c.runAddWater(ctx, args)
	case "add-exercise":
		return c.runAddExercise(ctx, args)
	case "add-weight":
		return c.runAddWeight(ctx, args)
	case "search-foods":
		return c.runSearchFoods(ctx, args)
	case "search-recipes":
		return c.runSearchRecipes(ctx, args)
	case "entitlement":
		return c.runEntitlement(ctx, args)
	case "purge":
		return c.runPurge(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageText)
}

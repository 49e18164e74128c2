package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/platemate/platemate-sync/internal/models"
)

// runSearchFoods ищет продукты в каталоге FatSecret
func (c *Cli) runSearchFoods(ctx context.Context, args []string) error {
	return c.runSearch(ctx, args, models.ServiceFatSecret, "food", c.apiClient.SearchFoods)
}

// runSearchRecipes ищет рецепты в каталоге Spoonacular
func (c *Cli) runSearchRecipes(ctx context.Context, args []string) error {
	return c.runSearch(ctx, args, models.ServiceSpoonacular, "recipe", c.apiClient.SearchRecipes)
}

// runSearch выпускает сервисный токен для downstream-каталога и выполняет
// кэшируемый поиск. --fresh обходит кэш ответов.
func (c *Cli) runSearch(
	ctx context.Context,
	args []string,
	serviceID, kind string,
	search func(ctx context.Context, accessToken, query string, bypassCache bool) ([]byte, error),
) error {
	query := firstPositional(args)
	if query == "" {
		var err error
		query, err = c.io.ReadInput("Search query: ")
		if err != nil {
			return fmt.Errorf("failed to read query: %w", err)
		}
	}
	if query == "" {
		return fmt.Errorf("search query cannot be empty")
	}

	serviceToken, err := c.tokens.Get(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("failed to obtain %s token: %w", serviceID, err)
	}

	body, err := search(ctx, serviceToken, query, hasFlag(args, "--fresh"))
	if err != nil {
		return fmt.Errorf("%s search failed: %w", kind, err)
	}

	if _, err := c.io.Write(body); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	c.io.Println()

	return nil
}

// firstPositional возвращает первый аргумент, не являющийся флагом
func firstPositional(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			return arg
		}
	}
	return ""
}

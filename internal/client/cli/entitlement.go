package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/platemate/platemate-sync/internal/models"
)

type entitlementView struct {
	Tier    models.Tier
	Premium bool
}

func (c *Cli) runEntitlement(ctx context.Context, args []string) error {
	// --refresh сбрасывает кэш: следующая проверка идет к backend'у
	if hasFlag(args, "--refresh") {
		c.entitlements.ClearCache(ctx)
	}

	view := entitlementView{
		Tier:    c.entitlements.GetTier(ctx),
		Premium: c.entitlements.HasPremiumAccess(ctx),
	}

	tmpl, err := template.New("entitlement").Parse(entitlementTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse entitlement template: %w", err)
	}
	if err := tmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render entitlement: %w", err)
	}
	return nil
}

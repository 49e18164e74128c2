package cli

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/platemate/platemate-sync/internal/client/storage"
	"github.com/platemate/platemate-sync/internal/models"
)

type statusView struct {
	UserID        string
	Tier          models.Tier
	LastSync      string
	Pending       int
	Authenticated bool
	Premium       bool
}

func (c *Cli) runStatus(ctx context.Context) error {
	view := statusView{}

	isAuth, err := c.session.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	view.Authenticated = isAuth

	if isAuth {
		userID, err := c.session.UserID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get user id: %w", err)
		}
		view.UserID = userID
	}

	view.Tier = c.entitlements.GetTier(ctx)
	view.Premium = c.entitlements.HasPremiumAccess(ctx)

	lastSync, syncStatus, err := c.metadata.GetLastSync(ctx)
	switch {
	case err != nil:
		view.LastSync = fmt.Sprintf("unknown (%v)", err)
	case syncStatus == storage.SyncStatusNever:
		view.LastSync = "never"
	default:
		view.LastSync = fmt.Sprintf("%s (%s)", lastSync.Format(time.RFC3339), syncStatus)
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending entries: %w", err)
	}
	view.Pending = pending

	tmpl, err := template.New("status").Parse(statusTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse status template: %w", err)
	}
	if err := tmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}

	if pending > 0 {
		c.io.Println()
		c.io.Println("Run 'platemate sync' to push pending entries.")
	}

	return nil
}

package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Starting synchronization with server...")

	result, err := c.syncService.SyncAll(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	// Профиль не участвует в record-реконсиляции, подтягиваем отдельно
	if err := c.syncService.PullProfile(ctx); err != nil {
		c.io.Printf("Warning: failed to pull profile: %v\n", err)
	}

	c.io.Println()
	if result.Failed == 0 && result.Succeeded == 0 {
		c.io.Println("Nothing to synchronize.")
		return nil
	}

	c.io.Println("✓ Synchronization finished!")
	c.io.Println()
	c.io.Printf("Pushed to server: %d entry(ies)\n", result.Succeeded)
	if result.Failed > 0 {
		c.io.Printf("Failed:           %d entry(ies)\n", result.Failed)
		c.io.Println()
		c.io.Println("Failed entries stay local and will be retried on the next sync.")
	}

	return nil
}

func (c *Cli) runPending(ctx context.Context) error {
	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending entries: %w", err)
	}

	if pending == 0 {
		c.io.Println("✓ All entries synchronized.")
		return nil
	}

	c.io.Printf("%d entry(ies) waiting for sync.\n", pending)
	c.io.Println("Run 'platemate sync' to push them to the server.")
	return nil
}

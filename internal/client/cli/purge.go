package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/platemate/platemate-sync/internal/models"
)

// purgeRetention — возраст, после которого synced-записи считаются мусором
const purgeRetention = 90 * 24 * time.Hour

func (c *Cli) runPurge(ctx context.Context) error {
	cutoff := c.clock().Add(-purgeRetention)
	total := 0

	for _, entityType := range models.SyncEntities {
		purged, err := c.records.PurgeSyncedBefore(ctx, entityType, cutoff)
		if err != nil {
			return fmt.Errorf("failed to purge %s: %w", entityType, err)
		}
		total += purged
	}

	if total == 0 {
		c.io.Println("Nothing to purge.")
		return nil
	}

	c.io.Printf("✓ Purged %d old entry(ies).\n", total)
	return nil
}

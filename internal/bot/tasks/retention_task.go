package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/youngmea/airo/internal/config"
)

// NewRetentionSweepTask creates the task that deletes exchanges older than the
// configured retention age. It is also run once at startup and by the prune command.
func NewRetentionSweepTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "retention_sweep")

	return func(ctx context.Context) error {
		maxAge := config.DefaultRetentionMaxAge
		if deps.Config != nil && deps.Config.Retention.MaxAge > 0 {
			maxAge = deps.Config.Retention.MaxAge
		}

		startTime := time.Now()
		removed, err := deps.Store.PruneOlderThan(ctx, maxAge)
		if err != nil {
			log.ErrorContext(ctx, "Retention sweep failed", "error", err, "max_age", maxAge)
			return fmt.Errorf("retention sweep failed: %w", err)
		}

		log.InfoContext(ctx, "Retention sweep completed",
			"removed", removed,
			"max_age", maxAge,
			"duration", time.Since(startTime))
		return nil
	}
}

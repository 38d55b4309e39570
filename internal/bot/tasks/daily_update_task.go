package tasks

import (
	"context"
	"fmt"
)

// newDailyUpdateTask creates the scheduled task that sends the daily
// conservation update to the broadcast recipient. Delivery failures are
// reported to the scheduler and otherwise dropped; the next attempt is the
// next scheduled fire.
func newDailyUpdateTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_update")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Sending daily conservation update")

		if err := deps.Broadcaster.Send(ctx, deps.TgBot); err != nil {
			return fmt.Errorf("daily update failed: %w", err)
		}
		return nil
	}
}

package engine

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"outings/internal/hours"
	"outings/internal/types"
)

// enrich attaches drive minutes and today's hours text to each selected
// candidate. Travel lookups run concurrently; a failed lookup leaves that
// candidate's drive minutes at zero and never fails the batch.
func enrich(ctx context.Context, selected []types.ScoredCandidate, home types.Location, travel types.TravelEstimator, eval *hours.Evaluator, logger *slog.Logger) {
	g, gctx := errgroup.WithContext(ctx)
	for i := range selected {
		i := i
		g.Go(func() error {
			c := &selected[i]
			c.HoursText = eval.TodayText(c.Activity.OpenHours)

			seconds, err := travel.DriveSeconds(gctx, home, c.Activity.Location)
			if err != nil {
				logger.WarnContext(gctx, "drive time lookup failed",
					slog.Int64("activity_id", c.Activity.ID),
					slog.String("error", err.Error()))
				return nil
			}
			c.DriveMinutes = driveMinutes(seconds)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors
}

// driveMinutes converts seconds to whole minutes, rounded, floored at 1.
func driveMinutes(seconds float64) int {
	minutes := int(math.Round(seconds / 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSweeper calls Sweep once immediately and then on every tick until ctx is
// cancelled.
func RunSweeper(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweepOnce(ctx, sweeper, logger)

	for {
		select {
		case <-ticker.C:
			sweepOnce(ctx, sweeper, logger)
		case <-ctx.Done():
			return
		}
	}
}

func sweepOnce(ctx context.Context, sweeper Sweeper, logger *zap.Logger) {
	removed, err := sweeper.Sweep(ctx)
	if err != nil {
		logger.Warn("Failed to sweep expired view sessions", zap.Error(err))
		return
	}
	if removed > 0 {
		logger.Debug("Swept expired view sessions", zap.Int("removed", removed))
	}
}

package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FailureCleaner deletes dropped-message records older than a retention
// window.
type FailureCleaner interface {
	CleanupOldFailures(ctx context.Context, days int) error
}

// StartCleanupTask runs cleanup once immediately and then every interval
// until ctx is cancelled.
func StartCleanupTask(ctx context.Context, svc FailureCleaner, retentionDays int, interval time.Duration, log *zap.Logger) {
	go func() {
		log.Info("starting message failure cleanup", zap.Int("retention_days", retentionDays))
		run := func() {
			if err := svc.CleanupOldFailures(ctx, retentionDays); err != nil {
				log.Warn("failed to clean up old message failures", zap.Error(err))
			}
		}
		run()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}

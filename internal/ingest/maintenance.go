package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// startMaintenance launches a background goroutine that periodically
// purges events past the retention window.
func (m *Module) startMaintenance() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.cfg.MaintenanceInterval)
		defer ticker.Stop()

		for {
			select {
			case <-m.ctx.Done():
				return
			case <-ticker.C:
				m.runMaintenance()
			}
		}
	}()
}

// runMaintenance executes a single retention purge cycle.
func (m *Module) runMaintenance() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(m.ctx, 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-m.cfg.RetentionPeriod).Unix()
	deleted, err := m.store.DeleteOldEvents(ctx, cutoff)
	if err != nil {
		m.logger.Warn("failed to purge old events", zap.Error(err))
	} else if deleted > 0 {
		m.logger.Info("purged old events",
			zap.Int64("count", deleted),
			zap.Int64("cutoff", cutoff))
	}
}

// Package lens analyzes the stored interface event history: flapping
// detection, stability scoring, activity metrics, and aggregate
// breakdowns. It consumes the event table written by the ingest plugin
// and publishes flap alerts on the bus.
package lens

import (
	"context"
	"fmt"
	"time"

	"github.com/HerbHall/netlens/internal/ingest"
	"github.com/HerbHall/netlens/internal/lens/flap"
	"github.com/HerbHall/netlens/internal/lens/normalize"
	"github.com/HerbHall/netlens/internal/lens/stability"
	"github.com/HerbHall/netlens/pkg/ifevent"
	"github.com/HerbHall/netlens/pkg/plugin"
	"github.com/HerbHall/netlens/pkg/roles"
	"go.uber.org/zap"
)

// Compile-time interface guards.
var (
	_ plugin.Plugin          = (*Module)(nil)
	_ plugin.HTTPProvider    = (*Module)(nil)
	_ plugin.HealthChecker   = (*Module)(nil)
	_ plugin.Validator       = (*Module)(nil)
	_ plugin.EventSubscriber = (*Module)(nil)
	_ roles.AnalysisProvider = (*Module)(nil)
)

// Module implements the lens plugin.
type Module struct {
	logger *zap.Logger
	cfg    LensConfig
	store  *LensStore
	bus    plugin.EventBus
}

// New creates a new lens plugin instance.
func New() *Module {
	return &Module{}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:         "lens",
		Version:      "0.1.0",
		Description:  "Interface event analysis: flapping, stability, metrics",
		Dependencies: []string{"ingest"},
		Roles:        []string{roles.RoleAnalysis},
		Required:     true,
		APIVersion:   plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal lens config: %w", err)
		}
	}

	if deps.Store == nil {
		return fmt.Errorf("lens requires a database store")
	}
	m.store = NewLensStore(deps.Store.DB())

	m.bus = deps.Bus

	m.logger.Info("lens module initialized",
		zap.Int("flap_time_threshold_minutes", m.cfg.FlapTimeThresholdMinutes),
		zap.Int("flap_min_transitions", m.cfg.FlapMinTransitions),
		zap.Duration("flap_lookback", m.cfg.FlapLookback),
	)
	return nil
}

// ValidateConfig implements plugin.Validator.
func (m *Module) ValidateConfig() error {
	if m.cfg.FlapTimeThresholdMinutes < 1 {
		return fmt.Errorf("lens: flap_time_threshold_minutes must be positive, got %d", m.cfg.FlapTimeThresholdMinutes)
	}
	if m.cfg.FlapMinTransitions < 2 {
		return fmt.Errorf("lens: flap_min_transitions must be at least 2, got %d", m.cfg.FlapMinTransitions)
	}
	if m.cfg.FlapLookback <= 0 {
		return fmt.Errorf("lens: flap_lookback must be positive, got %s", m.cfg.FlapLookback)
	}
	if m.cfg.StabilityTopN < 1 {
		return fmt.Errorf("lens: stability_top_n must be positive, got %d", m.cfg.StabilityTopN)
	}
	if m.cfg.QueryTimeout <= 0 {
		return fmt.Errorf("lens: query_timeout must be positive, got %s", m.cfg.QueryTimeout)
	}
	return nil
}

func (m *Module) Start(_ context.Context) error {
	m.logger.Info("lens module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("lens module stopped")
	return nil
}

// Health implements plugin.HealthChecker.
func (m *Module) Health(ctx context.Context) plugin.HealthStatus {
	if m.store == nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: "store not initialized"}
	}
	if _, err := m.store.QueryEvents(ctx, Filter{Severity: -1, Limit: 1}); err != nil {
		return plugin.HealthStatus{Status: "degraded", Message: err.Error()}
	}
	return plugin.HealthStatus{
		Status: "healthy",
		Details: map[string]string{
			"flap_window":     fmt.Sprintf("%dm", m.cfg.FlapTimeThresholdMinutes),
			"min_transitions": fmt.Sprintf("%d", m.cfg.FlapMinTransitions),
		},
	}
}

// Subscriptions implements plugin.EventSubscriber. Each stored batch
// triggers a flap scan over the recent lookback window.
func (m *Module) Subscriptions() []plugin.Subscription {
	return []plugin.Subscription{
		{Topic: ingest.TopicEventsStored, Handler: m.handleEventsStored},
	}
}

// handleEventsStored runs the flapping detector over the lookback
// window and publishes an alert per flagged interface.
func (m *Module) handleEventsStored(ctx context.Context, event plugin.Event) {
	batch, ok := event.Payload.(*ingest.BatchStoredEvent)
	if !ok {
		return
	}

	end := time.Now().Unix()
	start := end - int64(m.cfg.FlapLookback.Seconds())

	reports, err := m.Flapping(ctx, start, end)
	if err != nil {
		m.logger.Error("flap scan after batch store failed",
			zap.Int("batch_accepted", batch.Accepted),
			zap.Error(err))
		return
	}
	if len(reports) == 0 {
		return
	}

	m.logger.Info("flapping interfaces detected",
		zap.Int("count", len(reports)))

	if m.bus == nil {
		return
	}
	for i := range reports {
		m.bus.PublishAsync(ctx, plugin.Event{
			Topic:     TopicFlapDetected,
			Source:    "lens",
			Timestamp: time.Now(),
			Payload:   &reports[i],
		})
	}
}

// Flapping implements roles.AnalysisProvider.
func (m *Module) Flapping(ctx context.Context, startUnix, endUnix int64) ([]ifevent.FlapReport, error) {
	events, err := m.queryNormalized(ctx, Filter{Start: startUnix, End: endUnix, Severity: -1})
	if err != nil {
		return nil, err
	}
	return flap.Detect(events, flap.Options{
		TimeThresholdMinutes: m.cfg.FlapTimeThresholdMinutes,
		MinTransitions:       m.cfg.FlapMinTransitions,
	})
}

// Stability implements roles.AnalysisProvider. Records come back
// sorted by ascending score, least stable first.
func (m *Module) Stability(ctx context.Context, startUnix, endUnix int64) ([]ifevent.StabilityRecord, error) {
	events, err := m.queryNormalized(ctx, Filter{Start: startUnix, End: endUnix, Severity: -1})
	if err != nil {
		return nil, err
	}
	elapsedHours := float64(endUnix-startUnix) / 3600
	return stability.Rank(events, elapsedHours), nil
}

// queryNormalized fetches the raw records matching the filter and feeds
// them through the normalizer. Unparseable records are skipped, not
// fatal.
func (m *Module) queryNormalized(ctx context.Context, f Filter) ([]ifevent.InterfaceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.QueryTimeout)
	defer cancel()

	raws, err := m.store.QueryEvents(ctx, f)
	if err != nil {
		return nil, err
	}

	events, diag := normalize.Records(raws)
	if diag.Skipped > 0 {
		m.logger.Warn("skipped unparseable records during analysis",
			zap.Int("skipped", diag.Skipped))
	}
	return events, nil
}

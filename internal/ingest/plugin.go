// Package ingest accepts raw network device event records, normalizes
// them, and persists them as the canonical event history.
package ingest

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/HerbHall/netlens/pkg/plugin"
	"github.com/HerbHall/netlens/pkg/roles"
	"go.uber.org/zap"
)

// Compile-time interface guards.
var (
	_ plugin.Plugin        = (*Module)(nil)
	_ plugin.HTTPProvider  = (*Module)(nil)
	_ plugin.HealthChecker = (*Module)(nil)
	_ plugin.Validator     = (*Module)(nil)
)

// Module implements the ingest plugin.
type Module struct {
	logger *zap.Logger
	cfg    IngestConfig
	store  *IngestStore
	bus    plugin.EventBus

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new ingest plugin instance.
func New() *Module {
	return &Module{}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "ingest",
		Version:     "0.1.0",
		Description: "Event intake, normalization, and retention",
		Roles:       []string{roles.RoleIntake},
		Required:    true,
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal ingest config: %w", err)
		}
	}

	if deps.Store == nil {
		return fmt.Errorf("ingest requires a database store")
	}
	if err := deps.Store.Migrate(context.Background(), "ingest", migrations()); err != nil {
		return fmt.Errorf("ingest migrations: %w", err)
	}
	m.store = NewIngestStore(deps.Store.DB())

	m.bus = deps.Bus

	m.logger.Info("ingest module initialized",
		zap.Int("max_batch_size", m.cfg.MaxBatchSize),
		zap.Duration("retention_period", m.cfg.RetentionPeriod),
	)
	return nil
}

// ValidateConfig implements plugin.Validator.
func (m *Module) ValidateConfig() error {
	if m.cfg.MaxBatchSize < 1 {
		return fmt.Errorf("ingest: max_batch_size must be positive, got %d", m.cfg.MaxBatchSize)
	}
	if m.cfg.RetentionPeriod <= 0 {
		return fmt.Errorf("ingest: retention_period must be positive, got %s", m.cfg.RetentionPeriod)
	}
	if m.cfg.MaintenanceInterval <= 0 {
		return fmt.Errorf("ingest: maintenance_interval must be positive, got %s", m.cfg.MaintenanceInterval)
	}
	return nil
}

func (m *Module) Start(_ context.Context) error {
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.startMaintenance()
	m.logger.Info("ingest module started")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	m.logger.Info("ingest module stopped")
	return nil
}

// Health implements plugin.HealthChecker.
func (m *Module) Health(ctx context.Context) plugin.HealthStatus {
	if m.store == nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: "store not initialized"}
	}

	count, err := m.store.CountEvents(ctx)
	if err != nil {
		return plugin.HealthStatus{Status: "degraded", Message: err.Error()}
	}
	return plugin.HealthStatus{
		Status: "healthy",
		Details: map[string]string{
			"stored_events": strconv.FormatInt(count, 10),
		},
	}
}

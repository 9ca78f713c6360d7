// Package roles defines the well-known plugin roles and the provider
// interfaces behind them. Plugins declare roles in PluginInfo; consumers
// resolve providers through plugin.PluginResolver without importing the
// concrete module.
package roles

import (
	"context"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Well-known role names.
const (
	RoleIntake   = "intake"   // Accepts and persists raw event records
	RoleAnalysis = "analysis" // Serves the interface event analysis contract
)

// AnalysisProvider is implemented by plugins filling RoleAnalysis.
type AnalysisProvider interface {
	// Flapping returns flagged flapping interfaces for the time range.
	Flapping(ctx context.Context, startUnix, endUnix int64) ([]ifevent.FlapReport, error)

	// Stability returns ranked stability records for the time range.
	Stability(ctx context.Context, startUnix, endUnix int64) ([]ifevent.StabilityRecord, error)
}

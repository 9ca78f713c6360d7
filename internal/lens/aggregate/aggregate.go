// Package aggregate reduces a normalized event sequence into heatmap
// and breakdown structures for presentation layers.
package aggregate

import (
	"math"

	"github.com/HerbHall/netlens/internal/lens/category"
	"github.com/HerbHall/netlens/pkg/ifevent"
)

// severityPenalty maps syslog severity to a 0-100 penalty used by the
// network health score. Severity 0 events are maximally damaging;
// severity 6 is near-noise.
var severityPenalty = [ifevent.SeverityLevels]float64{100, 80, 60, 40, 20, 5, 1}

// Reduce aggregates events into a UTC weekday-by-hour heatmap plus
// category, severity, location, and device breakdowns. Each event
// contributes to exactly one cell of each aggregation. An empty input
// yields zero counts and a health score of 100 -- no evidence of
// trouble is not penalized.
func Reduce(events []ifevent.InterfaceEvent) ifevent.Aggregates {
	agg := ifevent.Aggregates{
		ByCategory: make(map[ifevent.EventCategory]int, len(ifevent.Categories())),
		ByLocation: make(map[string]int),
		ByDevice:   make(map[string]int),
	}
	for _, c := range ifevent.Categories() {
		agg.ByCategory[c] = 0
	}

	var penalty float64
	for _, e := range events {
		agg.TotalEvents++

		t := e.Time()
		agg.Heatmap[int(t.Weekday())][t.Hour()]++

		agg.ByCategory[category.Of(e)]++

		sev := e.Severity
		if sev < 0 || sev >= ifevent.SeverityLevels {
			sev = ifevent.SeverityLevels - 1
		}
		agg.BySeverity[sev]++
		penalty += severityPenalty[sev]

		if e.Location != "" {
			agg.ByLocation[e.Location]++
		}
		if e.Device != "" {
			agg.ByDevice[e.Device]++
		}
	}

	if agg.TotalEvents == 0 {
		agg.HealthScore = 100
	} else {
		score := 100 - penalty/float64(agg.TotalEvents)
		agg.HealthScore = math.Max(0, math.Min(100, score))
	}

	return agg
}

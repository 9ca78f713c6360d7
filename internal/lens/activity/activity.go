// Package activity derives per-interface and fleet-level activity
// metrics from a normalized event sequence.
package activity

import (
	"sort"

	"github.com/HerbHall/netlens/internal/lens/category"
	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Last-seen interface states.
const (
	StateUp      = "up"
	StateDown    = "down"
	StateUnknown = "unknown"
)

// Summary reduces the event sequence to activity metrics. Events must
// be sorted ascending by timestamp so last-seen state tracking is
// correct. flapReports, typically the output of the flap detector over
// the same sequence, feeds the flapping-interface count; pass nil to
// report zero.
func Summary(events []ifevent.InterfaceEvent, flapReports []ifevent.FlapReport) ifevent.ActivityMetrics {
	perIface := make(map[string]*ifevent.InterfaceActivity)
	var keys []string

	metrics := ifevent.ActivityMetrics{
		FlappingInterfaces: len(flapReports),
	}

	for _, e := range events {
		cat := category.Of(e)
		switch cat {
		case ifevent.CategoryStateUp, ifevent.CategoryStateDown:
			metrics.StatusChanges++
		case ifevent.CategoryConfigChange:
			metrics.ConfigChanges++
		}

		if e.Interface == "" {
			continue
		}
		key := e.Device + "\x00" + e.Interface
		a, ok := perIface[key]
		if !ok {
			a = &ifevent.InterfaceActivity{
				Interface:     e.Interface,
				Device:        e.Device,
				Location:      e.Location,
				LastSeenState: StateUnknown,
			}
			perIface[key] = a
			keys = append(keys, key)
		}
		if a.Location == "" && e.Location != "" {
			a.Location = e.Location
		}

		a.TotalEvents++
		a.LastEventAt = e.Timestamp
		switch cat {
		case ifevent.CategoryStateUp:
			a.UpEvents++
			a.LastSeenState = StateUp
		case ifevent.CategoryStateDown:
			a.DownEvents++
			a.LastSeenState = StateDown
		case ifevent.CategoryConfigChange:
			a.ConfigEvents++
		}
	}

	sort.Strings(keys)
	metrics.Interfaces = make([]ifevent.InterfaceActivity, 0, len(keys))
	for _, key := range keys {
		a := perIface[key]
		metrics.TotalInterfaces++
		switch a.LastSeenState {
		case StateUp:
			metrics.ActiveInterfaces++
		case StateDown:
			metrics.DownInterfaces++
		}
		metrics.Interfaces = append(metrics.Interfaces, *a)
	}

	return metrics
}

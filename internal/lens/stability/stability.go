// Package stability scores interfaces on a 0-100 scale from their
// event history.
package stability

import (
	"math"
	"sort"

	"github.com/HerbHall/netlens/internal/lens/category"
	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Term caps: frequency saturates at 5 events/hour and config churn at
// 5 changes. A single noisy interface cannot push a term past 1.
const (
	freqCap   = 5.0
	configCap = 5.0
)

// Rank computes a stability record per interface and returns them
// sorted ascending by score, least stable first. elapsedHours is the
// requested range (or an explicit normalization window); values below
// one hour clamp to one so the frequency term stays meaningful.
//
// The score combines three weighted sub-metrics:
//
//	score = 100 - (40*down_ratio + 40*freq_term + 20*config_term)
//
// An interface with zero events scores exactly 100; the result is
// always clamped to [0,100].
func Rank(events []ifevent.InterfaceEvent, elapsedHours float64) []ifevent.StabilityRecord {
	elapsed := math.Max(1, elapsedHours)

	type tally struct {
		device   string
		location string
		iface    string
		total    int
		down     int
		config   int
	}

	tallies := make(map[string]*tally)
	var keys []string
	for _, e := range events {
		if e.Interface == "" {
			continue
		}
		key := e.Device + "\x00" + e.Interface
		t, ok := tallies[key]
		if !ok {
			t = &tally{device: e.Device, location: e.Location, iface: e.Interface}
			tallies[key] = t
			keys = append(keys, key)
		}
		if t.location == "" && e.Location != "" {
			t.location = e.Location
		}
		t.total++
		switch category.Of(e) {
		case ifevent.CategoryStateDown:
			t.down++
		case ifevent.CategoryConfigChange:
			t.config++
		}
	}

	records := make([]ifevent.StabilityRecord, 0, len(keys))
	for _, key := range keys {
		t := tallies[key]

		var downRatio float64
		if t.total > 0 {
			downRatio = float64(t.down) / float64(t.total)
		}
		frequency := float64(t.total) / elapsed
		freqTerm := math.Min(1, frequency/freqCap)
		configTerm := math.Min(1, float64(t.config)/configCap)

		score := 100 - (40*downRatio + 40*freqTerm + 20*configTerm)
		score = math.Max(0, math.Min(100, score))

		records = append(records, ifevent.StabilityRecord{
			Interface:         t.iface,
			Device:            t.device,
			Location:          t.location,
			TotalEvents:       t.total,
			DownCount:         t.down,
			ConfigChangeCount: t.config,
			EventFrequency:    frequency,
			StabilityScore:    score,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].StabilityScore != records[j].StabilityScore {
			return records[i].StabilityScore < records[j].StabilityScore
		}
		if records[i].Device != records[j].Device {
			return records[i].Device < records[j].Device
		}
		return records[i].Interface < records[j].Interface
	})

	return records
}

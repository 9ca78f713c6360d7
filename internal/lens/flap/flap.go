// Package flap detects interfaces whose up/down transitions cluster
// within a sliding time window.
package flap

import (
	"fmt"
	"sort"

	"github.com/HerbHall/netlens/internal/lens/category"
	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Options control the sliding-window detection.
type Options struct {
	// TimeThresholdMinutes is the window length. Boundaries are
	// inclusive: two events exactly this far apart share a window.
	TimeThresholdMinutes int

	// MinTransitions is the number of state changes inside one window
	// that flags an interface.
	MinTransitions int
}

// DefaultOptions returns the standard detection thresholds.
func DefaultOptions() Options {
	return Options{
		TimeThresholdMinutes: 30,
		MinTransitions:       3,
	}
}

func (o Options) validate() error {
	if o.TimeThresholdMinutes < 1 {
		return fmt.Errorf("%w: time_threshold_minutes must be a positive integer, got %d",
			ifevent.ErrInvalidParameter, o.TimeThresholdMinutes)
	}
	if o.MinTransitions < 2 {
		return fmt.Errorf("%w: min_transitions must be at least 2, got %d",
			ifevent.ErrInvalidParameter, o.MinTransitions)
	}
	return nil
}

// group collects the ordered state-change timestamps of one interface.
type group struct {
	device    string
	location  string
	iface     string
	times     []int64
}

// Detect flags every interface whose state changes at least
// opts.MinTransitions times within any contiguous window of
// opts.TimeThresholdMinutes. Events must be sorted ascending by
// timestamp (the normalizer guarantees this). The scan is an amortized
// two-pointer pass, O(n) per interface.
//
// Each report carries the merged trigger windows for diagnostics.
// Reports are sorted by device then interface.
func Detect(events []ifevent.InterfaceEvent, opts Options) ([]ifevent.FlapReport, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	groups := make(map[string]*group)
	var keys []string
	for _, e := range events {
		if e.Interface == "" {
			// Device-level events carry no interface state.
			continue
		}
		if !category.IsStateChange(e) {
			continue
		}
		key := e.Device + "\x00" + e.Interface
		g, ok := groups[key]
		if !ok {
			g = &group{device: e.Device, location: e.Location, iface: e.Interface}
			groups[key] = g
			keys = append(keys, key)
		}
		if g.location == "" && e.Location != "" {
			g.location = e.Location
		}
		g.times = append(g.times, e.Timestamp)
	}

	sort.Strings(keys)

	windowSecs := int64(opts.TimeThresholdMinutes) * 60
	var reports []ifevent.FlapReport
	for _, key := range keys {
		g := groups[key]
		if r, flagged := scan(g, windowSecs, opts.MinTransitions); flagged {
			reports = append(reports, r)
		}
	}
	return reports, nil
}

// scan runs the two-pointer window over one interface's transitions.
func scan(g *group, windowSecs int64, minTransitions int) (ifevent.FlapReport, bool) {
	// An interface with fewer transitions than the threshold can never
	// flap; skip the windowing entirely.
	if len(g.times) < minTransitions {
		return ifevent.FlapReport{}, false
	}

	var (
		maxInWindow int
		windows     []ifevent.FlapWindow
		left        int
	)
	for right := 0; right < len(g.times); right++ {
		for g.times[right]-g.times[left] > windowSecs {
			left++
		}
		count := right - left + 1
		if count > maxInWindow {
			maxInWindow = count
		}
		if count >= minTransitions {
			start, end := g.times[left], g.times[right]
			if n := len(windows); n > 0 && start <= windows[n-1].End {
				// Overlapping trigger windows merge into one interval.
				windows[n-1].End = end
				if count > windows[n-1].Transitions {
					windows[n-1].Transitions = count
				}
			} else {
				windows = append(windows, ifevent.FlapWindow{Start: start, End: end, Transitions: count})
			}
		}
	}

	if maxInWindow < minTransitions {
		return ifevent.FlapReport{}, false
	}
	return ifevent.FlapReport{
		Interface:   g.iface,
		Device:      g.device,
		Location:    g.location,
		Transitions: len(g.times),
		MaxInWindow: maxInWindow,
		Windows:     windows,
	}, true
}

// Package category classifies normalized events into semantic buckets.
package category

import (
	"strings"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Token sets matched case-insensitively against the event type. Order
// matters: state transitions win over config tokens, which win over the
// severity fallback.
var (
	upTokens     = []string{"_UP", "IS UP"}
	downTokens   = []string{"_DOWN", "IS DOWN"}
	configTokens = []string{"DUPLEX", "SPEED", "CONFIG", "FLOW_CONTROL", "BANDWIDTH"}
)

// Of returns the category for an event. Total: every event maps to
// exactly one category. Events with severity <= 2 that match no state
// or config token classify as errors; everything else is informational.
func Of(e ifevent.InterfaceEvent) ifevent.EventCategory {
	typ := strings.ToUpper(e.EventType)

	for _, tok := range upTokens {
		if strings.Contains(typ, tok) {
			return ifevent.CategoryStateUp
		}
	}
	for _, tok := range downTokens {
		if strings.Contains(typ, tok) {
			return ifevent.CategoryStateDown
		}
	}
	for _, tok := range configTokens {
		if strings.Contains(typ, tok) {
			return ifevent.CategoryConfigChange
		}
	}
	if e.Severity <= 2 {
		return ifevent.CategoryError
	}
	return ifevent.CategoryInformational
}

// Counts tallies events per category. Every category key is present in
// the result, zero-valued when unmatched.
func Counts(events []ifevent.InterfaceEvent) map[ifevent.EventCategory]int {
	counts := make(map[ifevent.EventCategory]int, len(ifevent.Categories()))
	for _, c := range ifevent.Categories() {
		counts[c] = 0
	}
	for _, e := range events {
		counts[Of(e)]++
	}
	return counts
}

// IsStateChange reports whether the event is an up or down transition.
func IsStateChange(e ifevent.InterfaceEvent) bool {
	c := Of(e)
	return c == ifevent.CategoryStateUp || c == ifevent.CategoryStateDown
}

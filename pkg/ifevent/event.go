// Package ifevent provides public SDK types for the NetLens interface
// event analysis system: the canonical event record, event categories,
// and the report types returned by the analysis operations.
package ifevent

import "time"

// RawRecord is a heterogeneous event record as returned by the event
// store or submitted to the ingest API. Key presence is not guaranteed;
// normalization converts it to an InterfaceEvent or rejects it.
type RawRecord = map[string]any

// InterfaceEvent is the canonical, normalized network device event.
// Values are immutable once produced by the normalizer.
type InterfaceEvent struct {
	Timestamp int64  `json:"timestamp"` // Unix seconds, UTC
	Device    string `json:"device"`
	Location  string `json:"location,omitempty"`
	Interface string `json:"interface,omitempty"` // Empty for device-level events
	Category  string `json:"category,omitempty"`  // Upstream category, e.g. "ETHPORT"
	EventType string `json:"event_type"`
	Severity  int    `json:"severity"` // 0-6, syslog convention (0 = most severe)
	RawLog    string `json:"raw_log,omitempty"`
}

// Time returns the event timestamp as a UTC time.Time.
func (e InterfaceEvent) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// EventCategory is the coarse semantic classification of an event.
type EventCategory string

const (
	CategoryStateUp       EventCategory = "state_up"
	CategoryStateDown     EventCategory = "state_down"
	CategoryConfigChange  EventCategory = "config_change"
	CategoryError         EventCategory = "error"
	CategoryInformational EventCategory = "informational"
)

// Categories lists all event categories in a stable order.
func Categories() []EventCategory {
	return []EventCategory{
		CategoryStateUp,
		CategoryStateDown,
		CategoryConfigChange,
		CategoryError,
		CategoryInformational,
	}
}

// SeverityLevels is the number of syslog severity levels (0-6).
const SeverityLevels = 7

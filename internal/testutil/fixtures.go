// Package testutil provides shared test fixtures for interface events.
package testutil

import (
	"github.com/HerbHall/netlens/pkg/ifevent"
)

// NewEvent returns an InterfaceEvent with sensible defaults, suitable
// for test fixtures. Override individual fields via options.
func NewEvent(opts ...func(*ifevent.InterfaceEvent)) ifevent.InterfaceEvent {
	e := ifevent.InterfaceEvent{
		Timestamp: 1700000000,
		Device:    "test-switch",
		Location:  "test-site",
		Interface: "Gi0/1",
		EventType: "IF_UP",
		Severity:  5,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// At sets the event timestamp (Unix seconds).
func At(ts int64) func(*ifevent.InterfaceEvent) {
	return func(e *ifevent.InterfaceEvent) { e.Timestamp = ts }
}

// OnDevice sets the device name.
func OnDevice(device string) func(*ifevent.InterfaceEvent) {
	return func(e *ifevent.InterfaceEvent) { e.Device = device }
}

// OnInterface sets the interface name. Pass "" for a device-level event.
func OnInterface(iface string) func(*ifevent.InterfaceEvent) {
	return func(e *ifevent.InterfaceEvent) { e.Interface = iface }
}

// AtLocation sets the event location.
func AtLocation(loc string) func(*ifevent.InterfaceEvent) {
	return func(e *ifevent.InterfaceEvent) { e.Location = loc }
}

// OfType sets the event type.
func OfType(typ string) func(*ifevent.InterfaceEvent) {
	return func(e *ifevent.InterfaceEvent) { e.EventType = typ }
}

// WithSeverity sets the syslog severity.
func WithSeverity(sev int) func(*ifevent.InterfaceEvent) {
	return func(e *ifevent.InterfaceEvent) { e.Severity = sev }
}

// UpDownBurst produces n down/up cycles on one interface starting at
// base, with gap seconds between consecutive events. Useful for
// exercising the flap detector.
func UpDownBurst(device, iface string, base int64, n int, gap int64) []ifevent.InterfaceEvent {
	events := make([]ifevent.InterfaceEvent, 0, 2*n)
	ts := base
	for i := 0; i < n; i++ {
		events = append(events,
			NewEvent(OnDevice(device), OnInterface(iface), OfType("IF_DOWN"), WithSeverity(3), At(ts)),
			NewEvent(OnDevice(device), OnInterface(iface), OfType("IF_UP"), WithSeverity(5), At(ts+gap)),
		)
		ts += 2 * gap
	}
	return events
}

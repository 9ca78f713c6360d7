package activity

import (
	"testing"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

func event(ts int64, device, iface, eventType string) ifevent.InterfaceEvent {
	return ifevent.InterfaceEvent{
		Timestamp: ts,
		Device:    device,
		Location:  "dc1",
		Interface: iface,
		EventType: eventType,
		Severity:  3,
	}
}

func TestSummary(t *testing.T) {
	events := []ifevent.InterfaceEvent{
		event(100, "sw-01", "Eth1/1", "ETHPORT_IF_DOWN"),
		event(200, "sw-01", "Eth1/1", "ETHPORT_IF_UP"),
		event(300, "sw-01", "Eth1/2", "ETHPORT_IF_DOWN"),
		event(400, "sw-01", "Eth1/2", "SYS_CONFIG_CHANGED"),
		event(500, "sw-02", "Eth2/1", "ETHPORT_IF_UP"),
		event(600, "sw-02", "Eth2/1", "ETHPORT_IF_DOWN"),
	}

	flapped := []ifevent.FlapReport{{Interface: "Eth2/1", Device: "sw-02"}}

	m := Summary(events, flapped)

	if m.TotalInterfaces != 3 {
		t.Errorf("TotalInterfaces = %d, want 3", m.TotalInterfaces)
	}
	if m.ActiveInterfaces != 1 {
		t.Errorf("ActiveInterfaces = %d, want 1 (only Eth1/1 last seen up)", m.ActiveInterfaces)
	}
	if m.DownInterfaces != 2 {
		t.Errorf("DownInterfaces = %d, want 2", m.DownInterfaces)
	}
	if m.FlappingInterfaces != 1 {
		t.Errorf("FlappingInterfaces = %d, want 1", m.FlappingInterfaces)
	}
	if m.StatusChanges != 5 {
		t.Errorf("StatusChanges = %d, want 5", m.StatusChanges)
	}
	if m.ConfigChanges != 1 {
		t.Errorf("ConfigChanges = %d, want 1", m.ConfigChanges)
	}
	if len(m.Interfaces) != 3 {
		t.Fatalf("len(Interfaces) = %d, want 3", len(m.Interfaces))
	}
}

func TestSummary_LastSeenState(t *testing.T) {
	tests := []struct {
		name   string
		events []ifevent.InterfaceEvent
		want   string
	}{
		{
			name: "up after down",
			events: []ifevent.InterfaceEvent{
				event(100, "sw", "Eth1", "ETHPORT_IF_DOWN"),
				event(200, "sw", "Eth1", "ETHPORT_IF_UP"),
			},
			want: StateUp,
		},
		{
			name: "down after up",
			events: []ifevent.InterfaceEvent{
				event(100, "sw", "Eth1", "ETHPORT_IF_UP"),
				event(200, "sw", "Eth1", "ETHPORT_IF_DOWN"),
			},
			want: StateDown,
		},
		{
			name: "no state events",
			events: []ifevent.InterfaceEvent{
				event(100, "sw", "Eth1", "SYS_CONFIG_CHANGED"),
			},
			want: StateUnknown,
		},
		{
			name: "config after state keeps state",
			events: []ifevent.InterfaceEvent{
				event(100, "sw", "Eth1", "ETHPORT_IF_UP"),
				event(200, "sw", "Eth1", "SYS_CONFIG_CHANGED"),
			},
			want: StateUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Summary(tt.events, nil)
			if len(m.Interfaces) != 1 {
				t.Fatalf("len(Interfaces) = %d, want 1", len(m.Interfaces))
			}
			if got := m.Interfaces[0].LastSeenState; got != tt.want {
				t.Errorf("LastSeenState = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary_PerInterfaceCounters(t *testing.T) {
	events := []ifevent.InterfaceEvent{
		event(100, "sw", "Eth1", "ETHPORT_IF_UP"),
		event(200, "sw", "Eth1", "ETHPORT_IF_DOWN"),
		event(300, "sw", "Eth1", "ETHPORT_IF_DOWN"),
		event(400, "sw", "Eth1", "SYS_CONFIG_CHANGED"),
		event(500, "sw", "Eth1", "LOGIN_NOTICE"),
	}

	m := Summary(events, nil)
	a := m.Interfaces[0]

	if a.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", a.TotalEvents)
	}
	if a.UpEvents != 1 {
		t.Errorf("UpEvents = %d, want 1", a.UpEvents)
	}
	if a.DownEvents != 2 {
		t.Errorf("DownEvents = %d, want 2", a.DownEvents)
	}
	if a.ConfigEvents != 1 {
		t.Errorf("ConfigEvents = %d, want 1", a.ConfigEvents)
	}
	if a.LastEventAt != 500 {
		t.Errorf("LastEventAt = %d, want 500", a.LastEventAt)
	}
}

func TestSummary_DeviceLevelEventsCountFleetOnly(t *testing.T) {
	events := []ifevent.InterfaceEvent{
		{Timestamp: 100, Device: "sw", EventType: "SYS_CONFIG_CHANGED", Severity: 5},
		{Timestamp: 200, Device: "sw", EventType: "chassis is down", Severity: 2},
	}

	m := Summary(events, nil)

	if m.TotalInterfaces != 0 {
		t.Errorf("TotalInterfaces = %d, want 0", m.TotalInterfaces)
	}
	if m.ConfigChanges != 1 {
		t.Errorf("ConfigChanges = %d, want 1 (fleet counter includes device-level)", m.ConfigChanges)
	}
	if m.StatusChanges != 1 {
		t.Errorf("StatusChanges = %d, want 1", m.StatusChanges)
	}
}

func TestSummary_Empty(t *testing.T) {
	m := Summary(nil, nil)

	if m.TotalInterfaces != 0 || m.ActiveInterfaces != 0 || m.DownInterfaces != 0 {
		t.Errorf("interface counts = %d/%d/%d, want all zero",
			m.TotalInterfaces, m.ActiveInterfaces, m.DownInterfaces)
	}
	if m.StatusChanges != 0 || m.ConfigChanges != 0 || m.FlappingInterfaces != 0 {
		t.Errorf("event counts = %d/%d/%d, want all zero",
			m.StatusChanges, m.ConfigChanges, m.FlappingInterfaces)
	}
	if len(m.Interfaces) != 0 {
		t.Errorf("len(Interfaces) = %d, want 0", len(m.Interfaces))
	}
}

package normalize

import (
	"errors"
	"testing"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

func TestRecord(t *testing.T) {
	tests := []struct {
		name          string
		raw           ifevent.RawRecord
		want          ifevent.InterfaceEvent
		wantDefaulted bool
		wantErr       bool
		wantErrField  string
	}{
		{
			name: "complete record",
			raw: ifevent.RawRecord{
				"timestamp":  int64(1700000000),
				"device":     "core-sw-01",
				"location":   "dc1",
				"interface":  "Ethernet3/29",
				"category":   "ETHPORT",
				"event_type": "ETHPORT_IF_DOWN_LINK_FAILURE",
				"severity":   3,
				"raw_log":    "%ETHPORT-3-IF_DOWN_LINK_FAILURE: Interface Ethernet3/29 is down",
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 1700000000,
				Device:    "core-sw-01",
				Location:  "dc1",
				Interface: "Ethernet3/29",
				Category:  "ETHPORT",
				EventType: "ETHPORT_IF_DOWN_LINK_FAILURE",
				Severity:  3,
				RawLog:    "%ETHPORT-3-IF_DOWN_LINK_FAILURE: Interface Ethernet3/29 is down",
			},
		},
		{
			name: "numeric string timestamp and severity",
			raw: ifevent.RawRecord{
				"timestamp": "1700000000",
				"device":    "core-sw-01",
				"severity":  "4",
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 1700000000,
				Device:    "core-sw-01",
				Severity:  4,
			},
		},
		{
			name: "rfc3339 timestamp",
			raw: ifevent.RawRecord{
				"timestamp": "2023-11-14T22:13:20Z",
				"device":    "core-sw-01",
				"severity":  2,
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 1700000000,
				Device:    "core-sw-01",
				Severity:  2,
			},
		},
		{
			name: "float timestamp from json decoding",
			raw: ifevent.RawRecord{
				"timestamp": float64(1700000000),
				"device":    "core-sw-01",
				"severity":  float64(5),
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 1700000000,
				Device:    "core-sw-01",
				Severity:  5,
			},
		},
		{
			name: "non-numeric severity defaults to 6",
			raw: ifevent.RawRecord{
				"timestamp": int64(100),
				"device":    "sw",
				"severity":  "critical",
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 100,
				Device:    "sw",
				Severity:  6,
			},
			wantDefaulted: true,
		},
		{
			name: "out of range severity defaults to 6",
			raw: ifevent.RawRecord{
				"timestamp": int64(100),
				"device":    "sw",
				"severity":  42,
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 100,
				Device:    "sw",
				Severity:  6,
			},
			wantDefaulted: true,
		},
		{
			name: "missing severity defaults to 6",
			raw: ifevent.RawRecord{
				"timestamp": int64(100),
				"device":    "sw",
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 100,
				Device:    "sw",
				Severity:  6,
			},
			wantDefaulted: true,
		},
		{
			name: "empty interface is a valid device-level event",
			raw: ifevent.RawRecord{
				"timestamp":  int64(100),
				"device":     "sw",
				"event_type": "SYSTEM_RESTART",
				"severity":   1,
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 100,
				Device:    "sw",
				EventType: "SYSTEM_RESTART",
				Severity:  1,
			},
		},
		{
			name: "unknown extra fields ignored",
			raw: ifevent.RawRecord{
				"timestamp": int64(100),
				"device":    "sw",
				"severity":  0,
				"vendor":    "cisco",
				"rack":      42,
			},
			want: ifevent.InterfaceEvent{
				Timestamp: 100,
				Device:    "sw",
				Severity:  0,
			},
		},
		{
			name:         "missing timestamp",
			raw:          ifevent.RawRecord{"device": "sw", "severity": 3},
			wantErr:      true,
			wantErrField: "timestamp",
		},
		{
			name: "unparseable timestamp",
			raw: ifevent.RawRecord{
				"timestamp": "yesterday",
				"device":    "sw",
			},
			wantErr:      true,
			wantErrField: "timestamp",
		},
		{
			name: "negative timestamp",
			raw: ifevent.RawRecord{
				"timestamp": int64(-5),
				"device":    "sw",
			},
			wantErr:      true,
			wantErrField: "timestamp",
		},
		{
			name:         "missing device",
			raw:          ifevent.RawRecord{"timestamp": int64(100), "severity": 3},
			wantErr:      true,
			wantErrField: "device",
		},
		{
			name: "empty device",
			raw: ifevent.RawRecord{
				"timestamp": int64(100),
				"device":    "   ",
			},
			wantErr:      true,
			wantErrField: "device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted, err := Record(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Record() error = nil, want NormalizeError")
				}
				var nerr *ifevent.NormalizeError
				if !errors.As(err, &nerr) {
					t.Fatalf("Record() error type = %T, want *ifevent.NormalizeError", err)
				}
				if nerr.Field != tt.wantErrField {
					t.Errorf("NormalizeError.Field = %q, want %q", nerr.Field, tt.wantErrField)
				}
				return
			}
			if err != nil {
				t.Fatalf("Record() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Record() = %+v, want %+v", got, tt.want)
			}
			if defaulted != tt.wantDefaulted {
				t.Errorf("defaulted = %v, want %v", defaulted, tt.wantDefaulted)
			}
		})
	}
}

func TestRecords_SkipsBadAndSorts(t *testing.T) {
	raws := []ifevent.RawRecord{
		{"timestamp": int64(300), "device": "sw", "severity": 3},
		{"device": "sw"}, // missing timestamp: skipped
		{"timestamp": int64(100), "device": "sw", "severity": "bogus"},
		{"timestamp": int64(200), "device": "sw", "severity": 2},
	}

	events, diag := Records(raws)

	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	if diag.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", diag.Skipped)
	}
	if diag.SeverityDefaulted != 1 {
		t.Errorf("SeverityDefaulted = %d, want 1", diag.SeverityDefaulted)
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Timestamp > events[i].Timestamp {
			t.Fatalf("events not sorted ascending: %v", events)
		}
	}
}

func TestRecords_StableTieOrder(t *testing.T) {
	raws := []ifevent.RawRecord{
		{"timestamp": int64(100), "device": "sw", "event_type": "first", "severity": 3},
		{"timestamp": int64(100), "device": "sw", "event_type": "second", "severity": 3},
		{"timestamp": int64(100), "device": "sw", "event_type": "third", "severity": 3},
	}

	events, _ := Records(raws)

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if events[i].EventType != w {
			t.Errorf("events[%d].EventType = %q, want %q (ties must keep retrieval order)", i, events[i].EventType, w)
		}
	}
}

func TestRecords_Empty(t *testing.T) {
	events, diag := Records(nil)
	if len(events) != 0 {
		t.Errorf("len(events) = %d, want 0", len(events))
	}
	if diag.Skipped != 0 || diag.SeverityDefaulted != 0 {
		t.Errorf("diag = %+v, want zero", diag)
	}
}

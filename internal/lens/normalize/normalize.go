// Package normalize converts raw heterogeneous event records into
// canonical InterfaceEvent values.
package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Diagnostics counts per-batch normalization outcomes. A skipped record
// never aborts the batch.
type Diagnostics struct {
	Skipped           int `json:"skipped"`
	SeverityDefaulted int `json:"severity_defaulted"`
}

// Record converts one raw record into an InterfaceEvent. It fails with
// *ifevent.NormalizeError when timestamp or device is missing or
// unparseable. A malformed severity does not fail the record: it
// defaults to 6 (lowest urgency) and the returned flag is set so the
// caller can count it. Unknown extra keys are ignored.
func Record(raw ifevent.RawRecord) (ifevent.InterfaceEvent, bool, error) {
	ts, err := parseTimestamp(raw["timestamp"])
	if err != nil {
		return ifevent.InterfaceEvent{}, false, &ifevent.NormalizeError{Field: "timestamp", Reason: err.Error()}
	}

	device := stringField(raw, "device")
	if device == "" {
		return ifevent.InterfaceEvent{}, false, &ifevent.NormalizeError{Field: "device", Reason: "missing or empty"}
	}

	severity, defaulted := parseSeverity(raw["severity"])

	return ifevent.InterfaceEvent{
		Timestamp: ts,
		Device:    device,
		Location:  stringField(raw, "location"),
		Interface: stringField(raw, "interface"),
		Category:  stringField(raw, "category"),
		EventType: stringField(raw, "event_type"),
		Severity:  severity,
		RawLog:    stringField(raw, "raw_log"),
	}, defaulted, nil
}

// Records converts a batch of raw records, skipping any that fail, and
// returns the surviving events sorted ascending by timestamp. The sort
// is stable: ties keep their original retrieval order. Diagnostics
// report how many records were skipped or had their severity defaulted.
func Records(raws []ifevent.RawRecord) ([]ifevent.InterfaceEvent, Diagnostics) {
	events := make([]ifevent.InterfaceEvent, 0, len(raws))
	var diag Diagnostics

	for _, raw := range raws {
		ev, defaulted, err := Record(raw)
		if err != nil {
			diag.Skipped++
			continue
		}
		if defaulted {
			diag.SeverityDefaulted++
		}
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})

	return events, diag
}

// parseTimestamp accepts Unix seconds as any integer or float type, a
// numeric string, or an RFC 3339 string. Timestamps must be >= 0.
func parseTimestamp(v any) (int64, error) {
	var ts int64
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing")
	case int64:
		ts = t
	case int:
		ts = int64(t)
	case int32:
		ts = int64(t)
	case float64:
		ts = int64(t)
	case float32:
		ts = int64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fmt.Errorf("missing")
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			parsed, terr := time.Parse(time.RFC3339, s)
			if terr != nil {
				return 0, fmt.Errorf("unparseable value %q", s)
			}
			n = parsed.Unix()
		}
		ts = n
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}

	if ts < 0 {
		return 0, fmt.Errorf("negative timestamp %d", ts)
	}
	return ts, nil
}

// parseSeverity coerces severity to an int in [0,6]. Out-of-range or
// non-numeric values default to 6 and report defaulted=true.
func parseSeverity(v any) (severity int, defaulted bool) {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		n = int(t)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 6, true
		}
		n = parsed
	default:
		return 6, true
	}

	if n < 0 || n >= ifevent.SeverityLevels {
		return 6, true
	}
	return n, false
}

// stringField returns the named key as a trimmed string, or "" when the
// key is absent or not string-like.
func stringField(raw ifevent.RawRecord, key string) string {
	switch t := raw[key].(type) {
	case string:
		return strings.TrimSpace(t)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return ""
	}
}

package ifevent

// FlapWindow is a sliding-window interval that triggered a flapping flag.
// Start and End are inclusive Unix-second bounds; Transitions is the number
// of state-change events observed inside the window.
type FlapWindow struct {
	Start       int64 `json:"start"`
	End         int64 `json:"end"`
	Transitions int   `json:"transitions"`
}

// FlapReport describes one flagged flapping interface.
type FlapReport struct {
	Interface   string       `json:"interface"`
	Device      string       `json:"device"`
	Location    string       `json:"location,omitempty"`
	Transitions int          `json:"transitions"` // Total state-change events in the request range
	MaxInWindow int          `json:"max_in_window"`
	Windows     []FlapWindow `json:"windows"` // Merged trigger windows, for diagnostics
}

// StabilityRecord is the per-interface output of the stability scorer.
// StabilityScore is in [0,100]; higher is more stable.
type StabilityRecord struct {
	Interface         string  `json:"interface"`
	Device            string  `json:"device"`
	Location          string  `json:"location,omitempty"`
	TotalEvents       int     `json:"total_events"`
	DownCount         int     `json:"down_count"`
	ConfigChangeCount int     `json:"config_change_count"`
	EventFrequency    float64 `json:"event_frequency"` // Events per hour
	StabilityScore    float64 `json:"stability_score"`
}

// InterfaceActivity holds per-interface counters and last-seen state.
type InterfaceActivity struct {
	Interface     string `json:"interface"`
	Device        string `json:"device"`
	Location      string `json:"location,omitempty"`
	TotalEvents   int    `json:"total_events"`
	UpEvents      int    `json:"up_events"`
	DownEvents    int    `json:"down_events"`
	ConfigEvents  int    `json:"config_events"`
	LastSeenState string `json:"last_seen_state"` // "up", "down", or "unknown"
	LastEventAt   int64  `json:"last_event_at"`
}

// ActivityMetrics is the fleet summary returned by compute_metrics.
type ActivityMetrics struct {
	TotalInterfaces    int                 `json:"total_interfaces"`
	ActiveInterfaces   int                 `json:"active_interfaces"`
	DownInterfaces     int                 `json:"down_interfaces"`
	FlappingInterfaces int                 `json:"flapping_interfaces"`
	StatusChanges      int                 `json:"status_changes"`
	ConfigChanges      int                 `json:"config_changes"`
	Interfaces         []InterfaceActivity `json:"interfaces"`
}

// Aggregates is the pure reduction over a normalized event sequence:
// a UTC weekday x hour-of-day heatmap plus category, severity, location,
// and device breakdowns. An empty sequence reduces to zero counts with
// initialized maps and a HealthScore of 100.
type Aggregates struct {
	TotalEvents int                   `json:"total_events"`
	Heatmap     [7][24]int            `json:"heatmap"` // [weekday][hour], Sunday = 0
	ByCategory  map[EventCategory]int `json:"by_category"`
	BySeverity  [SeverityLevels]int   `json:"by_severity"`
	ByLocation  map[string]int        `json:"by_location"`
	ByDevice    map[string]int        `json:"by_device"`
	HealthScore float64               `json:"health_score"` // 0-100, severity-weighted
}

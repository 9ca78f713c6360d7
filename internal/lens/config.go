package lens

import "time"

// LensConfig holds configuration for the lens analysis plugin.
type LensConfig struct {
	// FlapTimeThresholdMinutes is the sliding-window length for the
	// flapping detector.
	FlapTimeThresholdMinutes int `mapstructure:"flap_time_threshold_minutes"`

	// FlapMinTransitions is the number of state changes within one
	// window that flags an interface.
	FlapMinTransitions int `mapstructure:"flap_min_transitions"`

	// FlapLookback is how far back the continuous detector scans when a
	// new batch of events is stored.
	FlapLookback time.Duration `mapstructure:"flap_lookback"`

	// StabilityTopN caps the stability ranking returned by the API when
	// the caller does not pass an explicit limit.
	StabilityTopN int `mapstructure:"stability_top_n"`

	// QueryTimeout bounds each event store query.
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// DefaultConfig returns sensible defaults for the lens module.
func DefaultConfig() LensConfig {
	return LensConfig{
		FlapTimeThresholdMinutes: 30,
		FlapMinTransitions:       3,
		FlapLookback:             1 * time.Hour,
		StabilityTopN:            10,
		QueryTimeout:             30 * time.Second,
	}
}

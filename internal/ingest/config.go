package ingest

import "time"

// IngestConfig holds configuration for the ingest plugin.
type IngestConfig struct {
	MaxBatchSize        int           `mapstructure:"max_batch_size"`
	RetentionPeriod     time.Duration `mapstructure:"retention_period"`
	MaintenanceInterval time.Duration `mapstructure:"maintenance_interval"`
}

// DefaultConfig returns sensible defaults for the ingest module.
func DefaultConfig() IngestConfig {
	return IngestConfig{
		MaxBatchSize:        5000,
		RetentionPeriod:     90 * 24 * time.Hour,
		MaintenanceInterval: 1 * time.Hour,
	}
}

package server

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the server configuration.
type Config struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	DataDir string `mapstructure:"data_dir"`
}

// Addr returns the listen address as host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.data_dir", "./data")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./data/netlens.db")

	// Plugin defaults
	v.SetDefault("plugins.ingest.enabled", true)
	v.SetDefault("plugins.ingest.max_batch_size", 5000)
	v.SetDefault("plugins.ingest.retention_period", "2160h")
	v.SetDefault("plugins.ingest.maintenance_interval", "1h")
	v.SetDefault("plugins.lens.enabled", true)
	v.SetDefault("plugins.lens.flap_time_threshold_minutes", 30)
	v.SetDefault("plugins.lens.flap_min_transitions", 3)
	v.SetDefault("plugins.lens.flap_lookback", "1h")
	v.SetDefault("plugins.lens.stability_top_n", 10)
	v.SetDefault("plugins.lens.query_timeout", "30s")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("netlens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/netlens")
	}

	// Environment variable support: NL_SERVER_PORT=9090
	v.SetEnvPrefix("NL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}

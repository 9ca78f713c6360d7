package server

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	v, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if got := v.GetString("database.driver"); got != "sqlite" {
		t.Errorf("database.driver = %q, want sqlite", got)
	}
	if got := v.GetString("database.dsn"); got != "./data/netlens.db" {
		t.Errorf("database.dsn = %q, want ./data/netlens.db", got)
	}
	if got := v.GetInt("server.port"); got != 8080 {
		t.Errorf("server.port = %d, want 8080", got)
	}
}

func TestLoadConfig_Addr(t *testing.T) {
	cfg := Config{Host: "127.0.0.1", Port: 9090}
	if got := cfg.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9090", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blogem/shift-cycles/cache"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Backend != cache.BackendMemory {
		t.Errorf("expected memory cache backend, got %s", cfg.Cache.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "shift_cycles.db" {
		t.Errorf("expected default db_path, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[server]
port = 9090
environment = "development"

[storage]
db_path = "/tmp/cycles.db"

[cache]
backend = "redis"
redis_addr = "redis:6379"
redis_db = 2
ttl = "15m"

[log]
level = "warn"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":9090" {
		t.Errorf("expected addr :9090, got %s", cfg.Addr())
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("expected development environment, got %s", cfg.Server.Environment)
	}
	if cfg.Storage.DBPath != "/tmp/cycles.db" {
		t.Errorf("expected db_path /tmp/cycles.db, got %s", cfg.Storage.DBPath)
	}

	cc := cfg.LayoutCache()
	if cc.Backend != cache.BackendRedis || cc.RedisAddr != "redis:6379" || cc.RedisDB != 2 {
		t.Errorf("unexpected cache config: %+v", cc)
	}
	if cc.TTL != 15*time.Minute {
		t.Errorf("expected ttl 15m, got %s", cc.TTL)
	}
	// Unset keys keep their defaults
	if cc.MaxEntries != 256 {
		t.Errorf("expected default max_entries 256, got %d", cc.MaxEntries)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Log.Level)
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[server\nport ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CYCLES_PORT", "7000")
	t.Setenv("CYCLES_DB_PATH", "/data/cycles.db")
	t.Setenv("CYCLES_CACHE_BACKEND", "redis")
	t.Setenv("CYCLES_REDIS_ADDR", "cache:6379")
	t.Setenv("CYCLES_CACHE_TTL", "30s")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Storage.DBPath != "/data/cycles.db" {
		t.Errorf("expected db_path override, got %s", cfg.Storage.DBPath)
	}
	if cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("expected redis addr override, got %s", cfg.Cache.RedisAddr)
	}
	if cfg.LayoutCache().TTL != 30*time.Second {
		t.Errorf("expected ttl 30s, got %s", cfg.LayoutCache().TTL)
	}
}

func TestEnvOverrides_BadNumber(t *testing.T) {
	t.Setenv("CYCLES_PORT", "eighty")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, true},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"redis without address", func(c *Config) {
			c.Cache.Backend = cache.BackendRedis
			c.Cache.RedisAddr = ""
		}, true},
		{"bad ttl", func(c *Config) { c.Cache.TTL = "forever" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"debug log level", func(c *Config) { c.Log.Level = "DEBUG" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

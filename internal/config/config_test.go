package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "STORAGE_BACKEND", "REDIS_ENABLED", "FARE_BASE", "FARE_PER_KM", "FARE_PER_MIN", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Storage != StorageMemory {
		t.Errorf("expected memory storage, got %s", cfg.Storage)
	}
	if cfg.Redis.Enabled {
		t.Error("redis should be disabled by default")
	}
	if cfg.Fare != (FareConfig{BaseFare: 50, PerKmRate: 15, PerMinRate: 2}) {
		t.Errorf("unexpected fare defaults: %+v", cfg.Fare)
	}
	if cfg.Database.MaxOpenConns != 50 || cfg.Database.MaxIdleConns != 25 {
		t.Errorf("unexpected pool defaults: %d/%d", cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("FARE_BASE", "40.5")
	t.Setenv("FARE_PER_KM", "12")
	t.Setenv("FARE_PER_MIN", "not-a-number")

	cfg := Load()

	if cfg.Server.Port != "9090" || cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("server overrides not applied: %+v", cfg.Server)
	}
	if cfg.Storage != StoragePostgres {
		t.Errorf("expected postgres, got %s", cfg.Storage)
	}
	if !cfg.Redis.Enabled || cfg.Redis.DB != 2 {
		t.Errorf("redis overrides not applied: %+v", cfg.Redis)
	}
	if cfg.Fare.BaseFare != 40.5 || cfg.Fare.PerKmRate != 12 {
		t.Errorf("fare overrides not applied: %+v", cfg.Fare)
	}
	if cfg.Fare.PerMinRate != 2 {
		t.Errorf("unparsable value should keep the default, got %v", cfg.Fare.PerMinRate)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Storage = "sqlite" }, true},
		{"negative base fare", func(c *Config) { c.Fare.BaseFare = -1 }, true},
		{"negative per minute", func(c *Config) { c.Fare.PerMinRate = -0.5 }, true},
		{"idle above open", func(c *Config) { c.Database.MaxIdleConns = 100 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("STORAGE_BACKEND", "")
			cfg := Load()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "rides", SSLMode: "require"}
	want := "host=db port=5433 user=u password=p dbname=rides sslmode=require"
	if got := c.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

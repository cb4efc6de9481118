package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadServiceConfigDefaultsAndOverrides(t *testing.T) {
	cfg, err := loadServiceConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "bridge.bench" {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	if cfg.Serial.Device != "/dev/ttyACM1" || cfg.Serial.Baud != 921600 {
		t.Fatalf("unexpected serial config: %+v", cfg.Serial)
	}
	if cfg.Serial.ReadTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected read timeout: %s", cfg.Serial.ReadTimeout)
	}
	if !cfg.BlockingWrites {
		t.Fatalf("expected blocking writes")
	}
	if cfg.MaxWriteStalls != 1024 {
		t.Fatalf("max_write_stalls should keep its default, got %d", cfg.MaxWriteStalls)
	}
	if cfg.AdminAddr != "127.0.0.1:9400" {
		t.Fatalf("unexpected admin addr: %q", cfg.AdminAddr)
	}
	if cfg.AdminToken != "bench-secret" {
		t.Fatalf("unexpected admin token: %q", cfg.AdminToken)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %v", cfg.CorsOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("example config should validate: %v", err)
	}
}

func TestLoadServiceConfigErrors(t *testing.T) {
	cases := map[string]string{
		"bad duration": `read_timeout = "fast"`,
		"unknown key":  `heartbeat = "5s"`,
		"bad toml":     `name = `,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := loadServiceConfig(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	_, err := loadServiceConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "load bridge config") {
		t.Fatalf("expected load error, got %v", err)
	}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bridgectl/internal/bridge"
)

type fileConfig struct {
	Name           string   `toml:"name"`
	Device         string   `toml:"device"`
	Baud           int      `toml:"baud"`
	ReadTimeout    string   `toml:"read_timeout"`
	BlockingWrites bool     `toml:"blocking_writes"`
	MaxWriteStalls int      `toml:"max_write_stalls"`
	AdminAddr      string   `toml:"admin_addr"`
	AdminToken     string   `toml:"admin_token"`
	CorsOrigins    []string `toml:"cors_origins"`
}

func loadServiceConfig(path string) (bridge.ServiceConfig, error) {
	cfg := bridge.DefaultServiceConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return bridge.ServiceConfig{}, fmt.Errorf("load bridge config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return bridge.ServiceConfig{}, fmt.Errorf("load bridge config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Name = name
		}
	}

	if meta.IsDefined("device") {
		cfg.Serial.Device = strings.TrimSpace(raw.Device)
	}

	if meta.IsDefined("baud") {
		cfg.Serial.Baud = raw.Baud
	}

	if meta.IsDefined("read_timeout") {
		if v := strings.TrimSpace(raw.ReadTimeout); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return bridge.ServiceConfig{}, fmt.Errorf("parse read_timeout: %w", err)
			}
			cfg.Serial.ReadTimeout = d
		}
	}

	if meta.IsDefined("blocking_writes") {
		cfg.BlockingWrites = raw.BlockingWrites
	}

	if meta.IsDefined("max_write_stalls") {
		cfg.MaxWriteStalls = raw.MaxWriteStalls
	}

	if meta.IsDefined("admin_addr") {
		cfg.AdminAddr = strings.TrimSpace(raw.AdminAddr)
	}

	if meta.IsDefined("admin_token") {
		cfg.AdminToken = strings.TrimSpace(raw.AdminToken)
	}

	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}

	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		if v := strings.TrimSpace(origin); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/danmuck/bridgectl/internal/transport"
	"github.com/pelletier/go-toml/v2"
)

// BridgeConfig mirrors the bridgectl config file.
type BridgeConfig struct {
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

// LoadBridgeConfig reads and validates a bridgectl config file with the same
// rules bridgectl applies at startup. Absent keys keep their defaults; stdio
// runs do not need a serial device.
func LoadBridgeConfig(path string, stdio bool) (BridgeConfig, error) {
	serial := transport.DefaultSerialConfig()
	cfg := BridgeConfig{
		Name:           "bridge.local",
		Device:         serial.Device,
		Baud:           serial.Baud,
		MaxWriteStalls: 1024,
	}
	if err := loadToml(path, &cfg); err != nil {
		return BridgeConfig{}, err
	}
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = "bridge.local"
	}
	if err := ValidateBridgeConfig(cfg, stdio); err != nil {
		return BridgeConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateBridgeConfig(cfg BridgeConfig, stdio bool) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("bridge config missing name")
	}
	if !stdio && strings.TrimSpace(cfg.Device) == "" {
		return fmt.Errorf("bridge config missing device")
	}
	if !stdio && cfg.Baud <= 0 {
		return fmt.Errorf("bridge config baud must be positive")
	}
	if cfg.MaxWriteStalls < 0 {
		return fmt.Errorf("bridge config max_write_stalls must not be negative")
	}
	if raw := strings.TrimSpace(cfg.ReadTimeout); raw != "" {
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf("bridge config read_timeout invalid: %w", err)
		}
	}
	if addr := strings.TrimSpace(cfg.AdminAddr); addr != "" && !strings.Contains(addr, ":") {
		return fmt.Errorf("bridge config admin_addr must be host:port or :port")
	}
	return nil
}

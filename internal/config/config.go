package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ChannelPreset describes the tunables of a Sender/Receiver pair that a
// deployment wants fixed ahead of time rather than set in code: the
// protocol version to speak, the payload ceiling a Receiver enforces, the
// starting frame id, and which stats backend to wire in.
type ChannelPreset struct {
	Name            string `toml:"name"`
	ProtocolVersion uint16 `toml:"protocol_version"`
	MaxPayload      int    `toml:"max_payload"`
	StartID         uint8  `toml:"start_id"`
	StatsBackend    string `toml:"stats_backend"`
}

// LoadChannelPreset reads and validates a ChannelPreset from a TOML file,
// filling in defaults for anything left unset.
func LoadChannelPreset(path string) (ChannelPreset, error) {
	var cfg ChannelPreset
	if err := loadToml(path, &cfg); err != nil {
		return ChannelPreset{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "default"
	}
	if cfg.ProtocolVersion == 0 {
		cfg.ProtocolVersion = 0xFD3F
	}
	if cfg.MaxPayload == 0 {
		cfg.MaxPayload = 64 << 20
	}
	if cfg.StatsBackend == "" {
		cfg.StatsBackend = "none"
	}
	if err := ValidateChannelPreset(cfg); err != nil {
		return ChannelPreset{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateChannelPreset rejects a preset naming a stats backend this build
// doesn't know how to wire, or a payload ceiling too small to ever carry a
// header.
func ValidateChannelPreset(cfg ChannelPreset) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("channel preset missing name")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.StatsBackend)) {
	case "none", "prometheus":
	default:
		return fmt.Errorf("channel preset names unknown stats backend: %s", cfg.StatsBackend)
	}
	if cfg.MaxPayload != 0 && cfg.MaxPayload < 8 {
		return fmt.Errorf("channel preset max_payload too small to carry a header: %d", cfg.MaxPayload)
	}
	return nil
}

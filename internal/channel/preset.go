package channel

import (
	"strings"

	cfgpkg "github.com/danmuck/chanwire/internal/config"
	"github.com/danmuck/chanwire/internal/stats/promstats"
)

// OptionsFromPreset translates a validated config.ChannelPreset into the
// Options a Channel is built from. A preset naming the prometheus stats
// backend gets a promstats.Collector labeled with the preset's name wired
// in as its stats hook; any other backend value (validated to be "none" by
// config.ValidateChannelPreset) leaves the hook unset.
func OptionsFromPreset(cfg cfgpkg.ChannelPreset) []Option {
	opts := []Option{
		WithMaxPayload(cfg.MaxPayload),
		WithStartID(cfg.StartID),
	}
	if cfg.ProtocolVersion != 0 {
		opts = append(opts, WithVersion(cfg.ProtocolVersion))
	}
	if strings.EqualFold(strings.TrimSpace(cfg.StatsBackend), "prometheus") {
		opts = append(opts, WithStatsHook(promstats.New(cfg.Name)))
	}
	return opts
}

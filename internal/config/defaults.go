package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tile2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration, used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:    4,
			WinRank: 11,
		},
		Spawn: SpawnConfig{
			HighTileOdds: 64,
		},
		Runtime: RuntimeConfig{
			TickRate: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "tile2048",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

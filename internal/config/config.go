// Package config loads the YAML configuration for tile2048 and applies
// board presets and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Runtime RuntimeConfig `yaml:"runtime"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig defines the board played when no variant is named.
type BoardConfig struct {
	Size    int   `yaml:"size"`
	WinRank uint8 `yaml:"win_rank"` // Winning tile is 2^win_rank
}

// SpawnConfig defines how new tiles are drawn.
type SpawnConfig struct {
	HighTileOdds int `yaml:"high_tile_odds"` // 1-in-N chance of a 4
}

// RuntimeConfig defines the simulation loop.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Prefix string `yaml:"prefix"`
}

// SSHConfig defines the SSH server started by "serve".
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// maxBoardSize mirrors the engine limit; kept here so config stays free of game imports.
const maxBoardSize = 15

var ErrInvalidConfig = errors.New("config: invalid value")

// Validate rejects values the engine or the platform cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Size < 1 || c.Board.Size > maxBoardSize {
		errs = append(errs, fmt.Errorf("%w: board.size %d (want 1..%d)", ErrInvalidConfig, c.Board.Size, maxBoardSize))
	}
	if c.Board.WinRank == 0 {
		errs = append(errs, fmt.Errorf("%w: board.win_rank must be positive", ErrInvalidConfig))
	}
	if c.Spawn.HighTileOdds < 1 {
		errs = append(errs, fmt.Errorf("%w: spawn.high_tile_odds %d (want >= 1)", ErrInvalidConfig, c.Spawn.HighTileOdds))
	}
	if c.Runtime.TickRate < 1 {
		errs = append(errs, fmt.Errorf("%w: runtime.tick_rate %d (want >= 1)", ErrInvalidConfig, c.Runtime.TickRate))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: ssh.idle_timeout %s", ErrInvalidConfig, c.SSH.IdleTimeout))
	}
	return errors.Join(errs...)
}

// BoardPreset is a named board size.
type BoardPreset string

const (
	PresetSmall   BoardPreset = "small"
	PresetClassic BoardPreset = "classic"
	PresetLarge   BoardPreset = "large"
	PresetHuge    BoardPreset = "huge"
)

// presets maps each preset to its board size and a win rank reachable on it.
var presets = map[BoardPreset]BoardConfig{
	PresetSmall:   {Size: 3, WinRank: 9},
	PresetClassic: {Size: 4, WinRank: 11},
	PresetLarge:   {Size: 5, WinRank: 13},
	PresetHuge:    {Size: 6, WinRank: 15},
}

// ApplyPreset replaces the board section with a named preset.
func ApplyPreset(cfg *Config, preset BoardPreset) error {
	board, ok := presets[BoardPreset(strings.ToLower(string(preset)))]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (want small, classic, large or huge)", ErrInvalidConfig, preset)
	}
	cfg.Board = board
	return nil
}

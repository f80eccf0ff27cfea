// Package config loads the optional console.toml settings file from the XDG
// config directory. Missing file or bad values fall back to the defaults;
// configuration can never stop the application from starting.
package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"stardrift/pkg/engine/console"
)

// configFile is the path searched under the XDG config directories.
const configFile = "stardrift/console.toml"

// Config is the on-disk settings layout.
type Config struct {
	Console ConsoleConfig `toml:"console"`
	Font    FontConfig    `toml:"font"`
}

// ConsoleConfig tunes the console core.
type ConsoleConfig struct {
	MaxLines      int  `toml:"max_lines"`
	HistorySize   int  `toml:"history_size"`
	InputCapacity int  `toml:"input_capacity"`
	Height        int  `toml:"height"`
	BlinkCycle    int  `toml:"blink_cycle"`
	BlinkOnTicks  int  `toml:"blink_on_ticks"`
	Mirror        bool `toml:"mirror_to_terminal"`
}

// FontConfig tunes the console font.
type FontConfig struct {
	Size float64 `toml:"size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Console: ConsoleConfig{
			MaxLines:      console.DefaultMaxLines,
			HistorySize:   console.DefaultHistorySize,
			InputCapacity: console.DefaultInputCapacity,
			Height:        console.DefaultHeight,
			BlinkCycle:    console.DefaultBlinkCycle,
			BlinkOnTicks:  console.DefaultBlinkOnTicks,
		},
		Font: FontConfig{Size: 14},
	}
}

// Load returns the defaults overlaid with whatever console.toml provides.
func Load() Config {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		logrus.WithField("file", configFile).Debug("no config file, using defaults")
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("cannot read config, using defaults")
		return Default()
	}

	cfg, err := parse(data)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("cannot parse config, using defaults")
		return Default()
	}

	logrus.WithField("path", path).Debug("loaded config")
	return cfg
}

// parse decodes TOML over the defaults, so omitted keys keep their built-in
// values, and sanitises anything nonsensical back to the default.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	def := Default()
	if cfg.Console.MaxLines < 1 {
		cfg.Console.MaxLines = def.Console.MaxLines
	}
	if cfg.Console.HistorySize < 1 {
		cfg.Console.HistorySize = def.Console.HistorySize
	}
	if cfg.Console.InputCapacity < 1 {
		cfg.Console.InputCapacity = def.Console.InputCapacity
	}
	if cfg.Console.Height < 1 {
		cfg.Console.Height = def.Console.Height
	}
	if cfg.Console.BlinkCycle < 1 {
		cfg.Console.BlinkCycle = def.Console.BlinkCycle
	}
	if cfg.Console.BlinkOnTicks < 1 || cfg.Console.BlinkOnTicks > cfg.Console.BlinkCycle {
		cfg.Console.BlinkOnTicks = cfg.Console.BlinkCycle / 2
	}
	if cfg.Font.Size <= 0 {
		cfg.Font.Size = def.Font.Size
	}
	return cfg, nil
}

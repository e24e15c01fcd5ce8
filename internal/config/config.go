// Package config handles optional TOML run configuration for the command.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds defaults for a program run; command line flags override it.
type Config struct {
	Cells        int      `toml:"cells"`
	StrictBounds bool     `toml:"strict_bounds"`
	EOF          string   `toml:"eof"`
	Timeout      Duration `toml:"timeout"`
	Trace        bool     `toml:"trace"`
	Dump         bool     `toml:"dump"`
}

// Duration is a time.Duration that decodes from a string like "1m30s".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Cells: 30000,
		EOF:   "unchanged",
	}
}

// Load parses a TOML configuration file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML configuration data over the defaults; name is only used
// in error messages.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", name, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("unknown key %q in %s", undec[0].String(), name)
	}
	if cfg.Cells <= 0 {
		return cfg, fmt.Errorf("invalid cells %v in %s: must be positive", cfg.Cells, name)
	}
	switch cfg.EOF {
	case "unchanged", "zero", "max":
	default:
		return cfg, fmt.Errorf("invalid eof %q in %s: must be one of unchanged, zero, or max", cfg.EOF, name)
	}
	return cfg, nil
}

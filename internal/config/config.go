// Package config provides configuration loading and validation for cadence.
package config

import (
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tessro/cadence/internal/paths"
)

// Duration is a time.Duration that decodes from TOML strings like "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the cadence configuration file
// (~/.config/cadence/config.toml by default).
type Config struct {
	// Defaults apply to every service unless overridden per service.
	Defaults DefaultsConfig `toml:"defaults"`

	// Log controls the shared log file.
	Log LogConfig `toml:"log"`

	// Services maps service names to their definitions.
	Services map[string]ServiceConfig `toml:"services"`
}

// DefaultsConfig holds settings applied to services that don't override them.
type DefaultsConfig struct {
	// Sleep is the minimum gap between work cycles. Empty means cycles
	// run back to back.
	Sleep Duration `toml:"sleep"`

	// PollInterval caps sleeps inside the work loop, bounding shutdown
	// latency. Empty means the lifecycle package default.
	PollInterval Duration `toml:"poll-interval"`

	// CycleTimeout bounds a single command invocation. Empty means no
	// timeout.
	CycleTimeout Duration `toml:"cycle-timeout"`
}

// LogConfig controls log output.
type LogConfig struct {
	// Path overrides the log file location.
	Path string `toml:"path"`

	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// ServiceConfig defines one service: a command run once per work cycle.
type ServiceConfig struct {
	// Command is the executable invoked each cycle. Required.
	Command string `toml:"command"`

	// Args are passed to Command.
	Args []string `toml:"args"`

	// Dir is the working directory for Command. Empty means inherit.
	Dir string `toml:"dir"`

	// Sleep overrides Defaults.Sleep for this service.
	Sleep Duration `toml:"sleep"`

	// PollInterval overrides Defaults.PollInterval for this service.
	PollInterval Duration `toml:"poll-interval"`

	// CycleTimeout overrides Defaults.CycleTimeout for this service.
	CycleTimeout Duration `toml:"cycle-timeout"`

	// PIDFile overrides the marker file path derived from the service name.
	PIDFile string `toml:"pid-file"`
}

// Load reads the cadence config from its default location.
// Returns an empty config (not nil) if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config from a specific path.
// Returns an empty config (not nil) if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Service returns the named service's definition with defaults folded in.
func (c *Config) Service(name string) (ServiceConfig, bool) {
	sc, ok := c.Services[name]
	if !ok {
		return ServiceConfig{}, false
	}
	if sc.Sleep == 0 {
		sc.Sleep = c.Defaults.Sleep
	}
	if sc.PollInterval == 0 {
		sc.PollInterval = c.Defaults.PollInterval
	}
	if sc.CycleTimeout == 0 {
		sc.CycleTimeout = c.Defaults.CycleTimeout
	}
	return sc, true
}

// ServiceNames returns the configured service names in sorted order.
func (c *Config) ServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package config loads the application configuration and watches the
// mapping definition file for edits.
package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/soar/padmap/internal/input"
)

// Config is the application configuration.
type Config struct {
	Listen   string            `mapstructure:"listen"`
	Platform string            `mapstructure:"platform"` // windows/linux/macos, empty = runtime.GOOS
	Mappings string            `mapstructure:"mappings"` // definition path, empty = embedded default
	LogLevel string            `mapstructure:"log_level"`
	Slots    map[string]string `mapstructure:"slots"` // slot number -> pinned device type name
}

// Load reads the configuration file at path; an empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("platform", "")
	v.SetDefault("mappings", "")
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SlotPins converts the configured slot pins to device types.
func (c *Config) SlotPins() (map[int]input.DeviceType, error) {
	pins := make(map[int]input.DeviceType, len(c.Slots))
	for slotName, typeName := range c.Slots {
		slot, err := strconv.Atoi(slotName)
		if err != nil || slot < 1 || slot > input.MaxDevices {
			return nil, fmt.Errorf("slot pin %q: slot must be 1..%d", slotName, input.MaxDevices)
		}
		devType, ok := input.DeviceTypeByName(typeName)
		if !ok {
			return nil, fmt.Errorf("slot pin %q: unknown device type %q", slotName, typeName)
		}
		pins[slot] = devType
	}
	return pins, nil
}

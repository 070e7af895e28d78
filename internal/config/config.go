// Package config handles loading the pomodoro defaults file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Built-in defaults used when neither the config file nor a flag sets a value.
const (
	DefaultCount     = 4
	DefaultWorkTime  = 25
	DefaultBreakTime = 5
)

// Config holds the run defaults.
type Config struct {
	// Count is the number of work sessions in a run.
	Count int
	// WorkTime is the work phase length in minutes.
	WorkTime int
	// BreakTime is the break phase length in minutes.
	BreakTime int
	// Notifications enables desktop notifications.
	Notifications bool
	// Color enables styled terminal output.
	Color bool
}

type fileConfig struct {
	Count         int  `toml:"count"`
	WorkTime      int  `toml:"work-time"`
	BreakTime     int  `toml:"break-time"`
	Notifications bool `toml:"notifications"`
	Color         bool `toml:"color"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Count:         DefaultCount,
		WorkTime:      DefaultWorkTime,
		BreakTime:     DefaultBreakTime,
		Notifications: true,
		Color:         true,
	}
}

// Load reads the config file at path and layers it over the built-in defaults.
// Returns the defaults if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var file fileConfig
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("parse config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Count = mergeInt(meta.IsDefined("count"), file.Count, cfg.Count)
	cfg.WorkTime = mergeInt(meta.IsDefined("work-time"), file.WorkTime, cfg.WorkTime)
	cfg.BreakTime = mergeInt(meta.IsDefined("break-time"), file.BreakTime, cfg.BreakTime)
	cfg.Notifications = mergeBool(meta.IsDefined("notifications"), file.Notifications, cfg.Notifications)
	cfg.Color = mergeBool(meta.IsDefined("color"), file.Color, cfg.Color)

	return cfg, nil
}

func mergeInt(defined bool, value, fallback int) int {
	if defined {
		return value
	}
	return fallback
}

func mergeBool(defined bool, value, fallback bool) bool {
	if defined {
		return value
	}
	return fallback
}

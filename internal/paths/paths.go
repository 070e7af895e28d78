package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default pomodoro config file path.
// XDG_CONFIG_HOME takes precedence over ~/.config when set.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(dir) {
		return filepath.Join(dir, "pomodoro", "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "pomodoro", "config.toml"), nil
}

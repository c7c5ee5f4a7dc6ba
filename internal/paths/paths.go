package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "exn"

// ConfigDir returns the directory holding exn's configuration. Priority:
// 1) $XDG_CONFIG_HOME/exn (if set)
// 2) ~/.config/exn
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// ConfigFile returns the default configuration file path.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StateDir returns the directory for logs and other state. Priority:
// 1) $XDG_STATE_HOME/exn (if set)
// 2) ~/.local/state/exn
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// StatePath resolves name against StateDir unless it is already absolute.
// A leading ~/ is expanded to the home directory.
func StatePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(name, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, name[2:]), nil
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, fallback, appName), nil
}

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths include:
//
//	display
//	workspaces
//	wrap_monitors
//	wrap_workspaces
//	wrap_windows
//	screen_padding.top
//	monitors
//	monitors.<n>
//	log_level
//	logging.file
//	logging.max_size_mb
//	logging.max_files
//	keybindings
//	keybindings.<n>
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	leaf := func(v any) (any, error) {
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown config path %q", path)
		}
		return v, nil
	}

	switch parts[0] {
	case "display":
		return leaf(cfg.Display)
	case "workspaces":
		return leaf(cfg.Workspaces)
	case "wrap_monitors":
		return leaf(cfg.WrapMonitors)
	case "wrap_workspaces":
		return leaf(cfg.WrapWorkspaces)
	case "wrap_windows":
		return leaf(cfg.WrapWindows)
	case "log_level":
		return leaf(cfg.LogLevel)
	case "screen_padding":
		if len(parts) == 1 {
			return cfg.ScreenPadding, nil
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("unknown config path %q", path)
		}
		switch parts[1] {
		case "top":
			return cfg.ScreenPadding.Top, nil
		case "bottom":
			return cfg.ScreenPadding.Bottom, nil
		case "left":
			return cfg.ScreenPadding.Left, nil
		case "right":
			return cfg.ScreenPadding.Right, nil
		}
	case "logging":
		if len(parts) == 1 {
			return cfg.Logging, nil
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("unknown config path %q", path)
		}
		switch parts[1] {
		case "file":
			return cfg.Logging.File, nil
		case "max_size_mb":
			return cfg.Logging.MaxSizeMB, nil
		case "max_files":
			return cfg.Logging.MaxFiles, nil
		}
	case "monitors":
		return indexed(cfg.Monitors, parts, path)
	case "keybindings":
		return indexed(cfg.Keybindings, parts, path)
	}
	return nil, fmt.Errorf("unknown config path %q", path)
}

func indexed[T any](items []T, parts []string, path string) (any, error) {
	if len(parts) == 1 {
		return items, nil
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("unknown config path %q", path)
	}
	i, err := strconv.Atoi(parts[1])
	if err != nil || i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%s: index out of range", path)
	}
	return items[i], nil
}

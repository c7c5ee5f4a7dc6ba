package config

import "strings"

// BuildEffectiveConfig layers raw over the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = strings.TrimSpace(*raw.Display)
	}
	if raw.Workspaces != nil {
		cfg.Workspaces = *raw.Workspaces
	}
	if raw.WrapMonitors != nil {
		cfg.WrapMonitors = *raw.WrapMonitors
	}
	if raw.WrapWorkspaces != nil {
		cfg.WrapWorkspaces = *raw.WrapWorkspaces
	}
	if raw.WrapWindows != nil {
		cfg.WrapWindows = *raw.WrapWindows
	}
	if raw.ScreenPadding != nil {
		cfg.ScreenPadding = mergeMargins(cfg.ScreenPadding, *raw.ScreenPadding)
	}
	if raw.Monitors != nil {
		cfg.Monitors = append([]Monitor(nil), raw.Monitors...)
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
		if cfg.LogLevel == "warn" {
			cfg.LogLevel = "warning"
		}
	}
	if raw.Logging != nil {
		if raw.Logging.File != nil {
			cfg.Logging.File = strings.TrimSpace(*raw.Logging.File)
		}
		if raw.Logging.MaxSizeMB != nil {
			cfg.Logging.MaxSizeMB = *raw.Logging.MaxSizeMB
		}
		if raw.Logging.MaxFiles != nil {
			cfg.Logging.MaxFiles = *raw.Logging.MaxFiles
		}
	}
	if raw.Keybindings != nil {
		cfg.Keybindings = append([]Keybinding{}, (*raw.Keybindings)...)
	}

	return cfg
}

func mergeMargins(base Margins, raw RawMargins) Margins {
	if raw.Top != nil {
		base.Top = *raw.Top
	}
	if raw.Bottom != nil {
		base.Bottom = *raw.Bottom
	}
	if raw.Left != nil {
		base.Left = *raw.Left
	}
	if raw.Right != nil {
		base.Right = *raw.Right
	}
	return base
}

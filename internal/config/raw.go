package config

// RawConfig mirrors Config with optional fields so a file only overrides
// the keys it sets.
type RawConfig struct {
	Display        *string       `yaml:"display"`
	Workspaces     *int          `yaml:"workspaces"`
	WrapMonitors   *bool         `yaml:"wrap_monitors"`
	WrapWorkspaces *bool         `yaml:"wrap_workspaces"`
	WrapWindows    *bool         `yaml:"wrap_windows"`
	ScreenPadding  *RawMargins   `yaml:"screen_padding"`
	Monitors       []Monitor     `yaml:"monitors"`
	LogLevel       *string       `yaml:"log_level"`
	Logging        *RawLogging   `yaml:"logging"`
	Keybindings    *[]Keybinding `yaml:"keybindings"`
}

type RawMargins struct {
	Top    *int `yaml:"top"`
	Bottom *int `yaml:"bottom"`
	Left   *int `yaml:"left"`
	Right  *int `yaml:"right"`
}

type RawLogging struct {
	File      *string `yaml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

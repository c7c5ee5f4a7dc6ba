package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/exnwm/exn/internal/hotkeys"
	"github.com/exnwm/exn/internal/wm"
)

// ErrNoKeybindings is reported when the keybinding list is explicitly empty.
var ErrNoKeybindings = errors.New("keybindings must not be empty")

// Margins reserves space at each edge of every monitor.
type Margins struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Monitor is a statically configured monitor. When any are configured they
// replace the geometry discovered from the display server.
type Monitor struct {
	Name   string `yaml:"name,omitempty"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig controls the optional log file.
type LoggingConfig struct {
	// File is the log file path. Relative paths live under the state
	// directory (~/.local/state/exn). Empty disables file logging.
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Keybinding binds a key sequence like "Mod4-Shift-Tab" to a named action.
type Keybinding struct {
	Keys   string   `yaml:"keys"`
	Action string   `yaml:"action"`
	Args   []string `yaml:"args,omitempty"`
}

// Config holds the window manager configuration.
type Config struct {
	Display        string        `yaml:"display,omitempty"`
	Workspaces     int           `yaml:"workspaces"`
	WrapMonitors   bool          `yaml:"wrap_monitors"`
	WrapWorkspaces bool          `yaml:"wrap_workspaces"`
	WrapWindows    bool          `yaml:"wrap_windows"`
	ScreenPadding  Margins       `yaml:"screen_padding"`
	Monitors       []Monitor     `yaml:"monitors,omitempty"`
	LogLevel       string        `yaml:"log_level"`
	Logging        LoggingConfig `yaml:"logging,omitempty"`
	Keybindings    []Keybinding  `yaml:"keybindings"`
}

const (
	DefaultWorkspaces = 4
	DefaultMaxSizeMB  = 10
	DefaultMaxFiles   = 3
)

func DefaultConfig() *Config {
	return &Config{
		Workspaces:     DefaultWorkspaces,
		WrapMonitors:   false,
		WrapWorkspaces: true,
		WrapWindows:    true,
		LogLevel:       "info",
		Logging: LoggingConfig{
			MaxSizeMB: DefaultMaxSizeMB,
			MaxFiles:  DefaultMaxFiles,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// DefaultKeybindings returns the stock keymap: Super with the arrows moves
// between monitors (left/right) and workspaces (up/down), adding Shift takes
// the focused window along.
func DefaultKeybindings() []Keybinding {
	return []Keybinding{
		{Keys: "Mod4-Right", Action: "focus-next-monitor"},
		{Keys: "Mod4-Left", Action: "focus-prev-monitor"},
		{Keys: "Mod4-Shift-Right", Action: "move-to-next-monitor"},
		{Keys: "Mod4-Shift-Left", Action: "move-to-prev-monitor"},
		{Keys: "Mod4-Down", Action: "focus-next-workspace"},
		{Keys: "Mod4-Up", Action: "focus-prev-workspace"},
		{Keys: "Mod4-Shift-Down", Action: "move-to-next-workspace"},
		{Keys: "Mod4-Shift-Up", Action: "move-to-prev-workspace"},
		{Keys: "Mod4-Tab", Action: "cycle-forward"},
		{Keys: "Mod4-Shift-Tab", Action: "cycle-backward"},
		{Keys: "Mod4-q", Action: "close-window"},
		{Keys: "Mod1-F4", Action: "close-window"},
		{Keys: "Mod4-Shift-q", Action: "end-session"},
		{Keys: "Mod4-t", Action: "spawn", Args: []string{"urxvt"}},
		{Keys: "Mod4-r", Action: "spawn", Args: []string{"spring"}},
		{Keys: "Mod4-w", Action: "spawn", Args: []string{"chromium"}},
	}
}

// ValidationError ties a configuration problem to its YAML path and, when
// known, the file position it came from.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (c *Config) Validate() error {
	if c.Workspaces < 1 {
		return &ValidationError{Path: "workspaces", Err: fmt.Errorf("workspaces must be >= 1")}
	}
	if c.ScreenPadding.Top < 0 || c.ScreenPadding.Bottom < 0 || c.ScreenPadding.Left < 0 || c.ScreenPadding.Right < 0 {
		return &ValidationError{Path: "screen_padding", Err: fmt.Errorf("screen_padding values must be >= 0")}
	}
	for i, m := range c.Monitors {
		if m.Width <= 0 || m.Height <= 0 {
			return &ValidationError{Path: fmt.Sprintf("monitors.%d", i), Err: fmt.Errorf("width and height must be > 0")}
		}
		if m.Width <= c.ScreenPadding.Left+c.ScreenPadding.Right || m.Height <= c.ScreenPadding.Top+c.ScreenPadding.Bottom {
			return &ValidationError{Path: fmt.Sprintf("monitors.%d", i), Err: fmt.Errorf("screen_padding leaves no usable area")}
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	if len(c.Keybindings) == 0 {
		return &ValidationError{Path: "keybindings", Err: ErrNoKeybindings}
	}
	for i, kb := range c.Keybindings {
		if _, err := kb.Compile(); err != nil {
			return &ValidationError{Path: fmt.Sprintf("keybindings.%d", i), Err: err}
		}
	}
	return nil
}

// Compile parses the key sequence and action of kb.
func (kb Keybinding) Compile() (wm.Binding, error) {
	if strings.TrimSpace(kb.Keys) == "" {
		return wm.Binding{}, fmt.Errorf("keys is required")
	}
	chord, err := hotkeys.ParseChord(kb.Keys)
	if err != nil {
		return wm.Binding{}, err
	}
	action, err := wm.ParseAction(kb.Action, kb.Args)
	if err != nil {
		return wm.Binding{}, err
	}
	return wm.Binding{Chord: chord, Action: action}, nil
}

// Bindings compiles every keybinding in order.
func (c *Config) Bindings() ([]wm.Binding, error) {
	out := make([]wm.Binding, 0, len(c.Keybindings))
	for i, kb := range c.Keybindings {
		b, err := kb.Compile()
		if err != nil {
			return nil, &ValidationError{Path: fmt.Sprintf("keybindings.%d", i), Err: err}
		}
		out = append(out, b)
	}
	return out, nil
}

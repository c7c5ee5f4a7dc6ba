package wm

import (
	"errors"
	"fmt"
)

// ActionKind enumerates the operations a keybinding can trigger.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionFocusNextMonitor
	ActionFocusPrevMonitor
	ActionMoveToNextMonitor
	ActionMoveToPrevMonitor
	ActionFocusNextWorkspace
	ActionFocusPrevWorkspace
	ActionMoveToNextWorkspace
	ActionMoveToPrevWorkspace
	ActionCycleForward
	ActionCycleBackward
	ActionCloseWindow
	ActionEndSession
	ActionSpawn
)

var actionNames = map[ActionKind]string{
	ActionFocusNextMonitor:    "focus-next-monitor",
	ActionFocusPrevMonitor:    "focus-prev-monitor",
	ActionMoveToNextMonitor:   "move-to-next-monitor",
	ActionMoveToPrevMonitor:   "move-to-prev-monitor",
	ActionFocusNextWorkspace:  "focus-next-workspace",
	ActionFocusPrevWorkspace:  "focus-prev-workspace",
	ActionMoveToNextWorkspace: "move-to-next-workspace",
	ActionMoveToPrevWorkspace: "move-to-prev-workspace",
	ActionCycleForward:        "cycle-forward",
	ActionCycleBackward:       "cycle-backward",
	ActionCloseWindow:         "close-window",
	ActionEndSession:          "end-session",
	ActionSpawn:               "spawn",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// ParseActionKind resolves a configured action name.
func ParseActionKind(name string) (ActionKind, error) {
	for k, n := range actionNames {
		if n == name {
			return k, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// ActionNames lists every valid action name.
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for k := ActionFocusNextMonitor; k <= ActionSpawn; k++ {
		names = append(names, actionNames[k])
	}
	return names
}

// Action is a bound operation. Args is only used by ActionSpawn, where the
// first element is the program and the rest its arguments.
type Action struct {
	Kind ActionKind
	Args []string
}

func (a Action) String() string {
	if len(a.Args) == 0 {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s %q", a.Kind, a.Args)
}

// ParseAction builds an Action from a configured name and argument list.
func ParseAction(name string, args []string) (Action, error) {
	kind, err := ParseActionKind(name)
	if err != nil {
		return Action{}, err
	}
	if kind == ActionSpawn {
		if len(args) == 0 || args[0] == "" {
			return Action{}, errors.New("spawn requires a program")
		}
	} else if len(args) > 0 {
		return Action{}, fmt.Errorf("action %s takes no arguments", kind)
	}
	return Action{Kind: kind, Args: args}, nil
}

// Apply performs a. Navigation at a boundary and actions with nothing to act
// on are silent no-ops; only backend and launcher failures are returned.
func (m *Manager) Apply(a Action) error {
	switch a.Kind {
	case ActionFocusNextMonitor:
		m.FocusMonitor(1)
	case ActionFocusPrevMonitor:
		m.FocusMonitor(-1)
	case ActionMoveToNextMonitor:
		m.MoveToMonitor(1)
	case ActionMoveToPrevMonitor:
		m.MoveToMonitor(-1)
	case ActionFocusNextWorkspace:
		m.FocusWorkspace(1)
	case ActionFocusPrevWorkspace:
		m.FocusWorkspace(-1)
	case ActionMoveToNextWorkspace:
		m.MoveToWorkspace(1)
	case ActionMoveToPrevWorkspace:
		m.MoveToWorkspace(-1)
	case ActionCycleForward:
		m.CycleWindow(Forward)
	case ActionCycleBackward:
		m.CycleWindow(Backward)
	case ActionCloseWindow:
		return m.CloseFocused()
	case ActionEndSession:
		m.state = StateStopped
	case ActionSpawn:
		if m.launcher == nil {
			return errors.New("no launcher configured")
		}
		if len(a.Args) == 0 {
			return errors.New("spawn requires a program")
		}
		if err := m.launcher.Launch(a.Args[0], a.Args[1:]); err != nil {
			return fmt.Errorf("spawn %s: %w", a.Args[0], err)
		}
	default:
		return fmt.Errorf("unsupported action %s", a.Kind)
	}
	return nil
}

package wm

import (
	"context"
	"errors"
	"fmt"

	"github.com/exnwm/exn/internal/platform"
)

// ErrStopped is returned by Run when called after the session has ended.
var ErrStopped = errors.New("window manager stopped")

// State is the dispatcher's lifecycle state.
type State int

const (
	// StateIdle waits for the next event. It is both initial and recurring.
	StateIdle State = iota
	// StateStopped is terminal and entered only by the end-session action.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Run pulls events from src and handles them one at a time until the
// session ends or ctx is cancelled. A failing event source is fatal unless
// the failure follows cancellation.
func (m *Manager) Run(ctx context.Context, src platform.EventSource) error {
	if m.state == StateStopped {
		return ErrStopped
	}
	m.publishHints()

	for m.state != StateStopped {
		if err := ctx.Err(); err != nil {
			return nil
		}
		ev, err := src.NextEvent()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for event: %w", err)
		}
		m.Handle(ev)
	}
	m.log.Info().Msg("session ended")
	return nil
}

// Handle applies a single event to the data model. It never fails: stale
// references are ignored and backend errors are logged.
func (m *Manager) Handle(ev platform.Event) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Interface("panic", r).Stringer("event", ev).Msg("event handler panicked")
		}
	}()

	switch e := ev.(type) {
	case platform.MapRequest:
		m.onMapRequest(e.Window)
	case platform.DestroyNotify:
		m.onRemoved(e.Window, "destroyed")
	case platform.UnmapNotify:
		m.onRemoved(e.Window, "withdrawn")
	case platform.KeyPress:
		m.onKeyPress(e)
	case platform.ConfigureRequest:
		m.onConfigureRequest(e)
	case platform.ActivateRequest:
		m.onActivate(e.Window)
	default:
		m.log.Debug().Stringer("event", ev).Msg("ignoring event")
		return
	}
	m.publishHints()
}

// admission is what the manager does with a top-level window it is asked
// to show or finds at startup.
type admission int

const (
	admitIgnore admission = iota
	admitMapOnly
	admitManage
)

func (m *Manager) admit(id platform.WindowID) admission {
	attrs, err := m.backend.Attributes(id)
	if err != nil {
		m.log.Debug().Err(err).Uint32("window", uint32(id)).Msg("unreadable window")
		return admitIgnore
	}
	switch {
	case attrs.OverrideRedirect:
		return admitIgnore
	case attrs.Type == platform.WindowTypeDock, attrs.Type == platform.WindowTypeDesktop:
		return admitMapOnly
	default:
		return admitManage
	}
}

func (m *Manager) onMapRequest(id platform.WindowID) {
	switch m.admit(id) {
	case admitIgnore:
		return
	case admitMapOnly:
		m.log.Debug().Uint32("window", uint32(id)).Msg("mapping unmanaged dock or desktop window")
		m.mapWindow(id)
		return
	}
	if _, ok := m.registry.Lookup(id); ok {
		m.mapWindow(id)
		return
	}

	if m.manage(id, m.ActiveWorkspace()) == nil {
		return
	}
	m.mapWindow(id)
	m.Refocus()
}

func (m *Manager) mapWindow(id platform.WindowID) {
	if err := m.backend.Map(id); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(id)).Msg("map window")
	}
}

func (m *Manager) onRemoved(id platform.WindowID, reason string) {
	c, ok := m.registry.Unregister(id)
	if !ok {
		m.log.Debug().Uint32("window", uint32(id)).Str("reason", reason).Msg("ignoring unmanaged window")
		return
	}
	m.log.Info().Uint32("window", uint32(c.ID)).Str("reason", reason).Msg("released window")
	m.Refocus()
}

func (m *Manager) onKeyPress(e platform.KeyPress) {
	if m.keymap == nil {
		return
	}
	a, ok := m.keymap.Lookup(e.Mods, e.Keysym)
	if !ok {
		return
	}
	m.log.Debug().Stringer("action", a).Msg("key binding")
	if err := m.Apply(a); err != nil {
		m.log.Warn().Err(err).Stringer("action", a).Msg("action failed")
	}
}

func (m *Manager) onConfigureRequest(e platform.ConfigureRequest) {
	c, ok := m.registry.Lookup(e.Window)
	if !ok {
		if err := m.backend.Configure(e.Window, e.Bounds); err != nil {
			m.log.Debug().Err(err).Uint32("window", uint32(e.Window)).Msg("configure unmanaged window")
		}
		return
	}
	m.place(c)
}

func (m *Manager) onActivate(id platform.WindowID) {
	c, ok := m.registry.Lookup(id)
	if !ok || c.ws == nil {
		m.log.Debug().Uint32("window", uint32(id)).Msg("ignoring activation of unmanaged window")
		return
	}
	ws := c.ws
	ws.SetCurrent(c)
	if err := m.Select(Selection{Monitor: ws.monitor.Index, Slot: ws.slot}); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(id)).Msg("activate window")
	}
}

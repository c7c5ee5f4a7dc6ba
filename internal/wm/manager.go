package wm

import (
	"errors"
	"fmt"

	"github.com/exnwm/exn/internal/platform"
	"github.com/rs/zerolog"
)

// Launcher starts external programs without waiting for them.
type Launcher interface {
	Launch(name string, args []string) error
}

// Options configures a Manager.
type Options struct {
	// Workspaces is the number of workspace slots per monitor.
	Workspaces int

	WrapMonitors   bool
	WrapWorkspaces bool
	WrapWindows    bool

	Keymap   *Keymap
	Launcher Launcher
	Logger   zerolog.Logger
}

// Manager owns the monitors, their workspaces, the client registry and the
// active selection. It is driven from a single goroutine and does no locking.
type Manager struct {
	backend  platform.Backend
	launcher Launcher
	keymap   *Keymap
	log      zerolog.Logger

	monitors []*Monitor
	registry *Registry
	sel      Selection
	slots    int
	state    State

	wrapMonitors   bool
	wrapWorkspaces bool
	wrapWindows    bool
}

// New builds a manager for the given displays, in navigation order.
func New(backend platform.Backend, displays []platform.Display, opts Options) (*Manager, error) {
	if len(displays) == 0 {
		return nil, errors.New("no displays to manage")
	}
	if opts.Workspaces < 1 {
		return nil, fmt.Errorf("invalid workspace count %d", opts.Workspaces)
	}

	m := &Manager{
		backend:        backend,
		launcher:       opts.Launcher,
		keymap:         opts.Keymap,
		log:            opts.Logger,
		registry:       NewRegistry(),
		slots:          opts.Workspaces,
		state:          StateIdle,
		wrapMonitors:   opts.WrapMonitors,
		wrapWorkspaces: opts.WrapWorkspaces,
		wrapWindows:    opts.WrapWindows,
	}
	for i, d := range displays {
		m.monitors = append(m.monitors, newMonitor(i, d, opts.Workspaces))
	}
	return m, nil
}

// Monitors returns the monitors in navigation order.
func (m *Manager) Monitors() []*Monitor { return m.monitors }

// Registry returns the client registry.
func (m *Manager) Registry() *Registry { return m.registry }

// Selection returns the active (monitor, slot) pair.
func (m *Manager) Selection() Selection { return m.sel }

// State returns the dispatcher state.
func (m *Manager) State() State { return m.state }

// ActiveMonitor returns the selected monitor.
func (m *Manager) ActiveMonitor() *Monitor {
	return m.monitors[m.sel.Monitor]
}

// ActiveWorkspace returns the workspace whose current client holds focus.
func (m *Manager) ActiveWorkspace() *Workspace {
	return m.monitors[m.sel.Monitor].workspaces[m.sel.Slot]
}

// Select makes sel the active pair, swapping visible workspaces when the
// slot changes, and refocuses.
func (m *Manager) Select(sel Selection) error {
	if sel.Monitor < 0 || sel.Monitor >= len(m.monitors) {
		return fmt.Errorf("monitor %d out of range", sel.Monitor)
	}
	if sel.Slot < 0 || sel.Slot >= m.slots {
		return fmt.Errorf("workspace slot %d out of range", sel.Slot)
	}
	if sel.Slot != m.sel.Slot {
		m.switchSlot(sel.Slot)
	}
	m.sel.Monitor = sel.Monitor
	m.Refocus()
	return nil
}

// switchSlot shows slot on every monitor and hides the previous one.
func (m *Manager) switchSlot(slot int) {
	old := m.sel.Slot
	for _, mon := range m.monitors {
		if err := mon.workspaces[slot].Show(m.backend); err != nil {
			m.log.Warn().Err(err).Int("monitor", mon.Index).Int("slot", slot).Msg("show workspace")
		}
		if err := mon.workspaces[old].Hide(m.backend); err != nil {
			m.log.Warn().Err(err).Int("monitor", mon.Index).Int("slot", old).Msg("hide workspace")
		}
	}
	m.sel.Slot = slot
}

// place moves a client to where its workspace currently shows it.
func (m *Manager) place(c *Client) {
	if c.ws == nil {
		return
	}
	r := c.ws.Placement(c.ws.slot == m.sel.Slot)
	if err := m.backend.MoveResize(c.ID, r); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.ID)).Msg("move window")
	}
}

// manage registers id on ws and positions it. It returns nil if the window
// is already managed.
func (m *Manager) manage(id platform.WindowID, ws *Workspace) *Client {
	c, ok := m.registry.Register(id, ws)
	if !ok {
		return nil
	}
	m.place(c)
	m.log.Info().
		Uint32("window", uint32(id)).
		Int("monitor", ws.monitor.Index).
		Int("slot", ws.slot).
		Msg("managing window")
	return c
}

// Adopt manages windows that were already mapped when the manager started.
// Each lands on the active slot of the monitor containing its centre.
// Windows a map request would not manage, such as docks, are left alone.
func (m *Manager) Adopt(windows []platform.Window) int {
	adopted := 0
	for _, w := range windows {
		if m.admit(w.ID) != admitManage {
			continue
		}
		mon := m.monitorAt(w.Bounds)
		if m.manage(w.ID, mon.workspaces[m.sel.Slot]) != nil {
			adopted++
		}
	}
	if adopted > 0 {
		m.Refocus()
	}
	return adopted
}

func (m *Manager) monitorAt(r platform.Rect) *Monitor {
	x, y := r.Center()
	for _, mon := range m.monitors {
		if mon.Bounds.Contains(x, y) {
			return mon
		}
	}
	return m.ActiveMonitor()
}

// Hints returns the desktop state to advertise.
func (m *Manager) Hints() platform.Hints {
	h := platform.Hints{
		Clients:  m.registry.IDs(),
		Desktop:  m.sel.Slot,
		Desktops: m.slots,
	}
	if c := m.ActiveWorkspace().Current(); c != nil {
		h.Active = c.ID
	}
	return h
}

func (m *Manager) publishHints() {
	if err := m.backend.PublishHints(m.Hints()); err != nil {
		m.log.Debug().Err(err).Msg("publish hints")
	}
}

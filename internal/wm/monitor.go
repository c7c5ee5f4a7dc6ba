package wm

import "github.com/exnwm/exn/internal/platform"

// Monitor is a fixed display region hosting one workspace per slot.
type Monitor struct {
	Index  int
	Name   string
	Bounds platform.Rect
	Usable platform.Rect

	workspaces []*Workspace
}

func newMonitor(index int, d platform.Display, slots int) *Monitor {
	m := &Monitor{
		Index:  index,
		Name:   d.Name,
		Bounds: d.Bounds,
		Usable: d.Usable,
	}
	if m.Usable.Width <= 0 || m.Usable.Height <= 0 {
		m.Usable = m.Bounds
	}
	m.workspaces = make([]*Workspace, slots)
	for i := range m.workspaces {
		m.workspaces[i] = newWorkspace(m, i)
	}
	return m
}

// Workspace returns the workspace for slot, or nil if slot is out of range.
func (m *Monitor) Workspace(slot int) *Workspace {
	if slot < 0 || slot >= len(m.workspaces) {
		return nil
	}
	return m.workspaces[slot]
}

// Workspaces returns all of the monitor's workspaces in slot order.
func (m *Monitor) Workspaces() []*Workspace {
	return m.workspaces
}

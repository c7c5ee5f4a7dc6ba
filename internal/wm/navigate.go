package wm

// FocusMonitor selects the monitor delta steps away. At either end it wraps
// or stays put depending on the monitor wrap policy.
func (m *Manager) FocusMonitor(delta int) bool {
	next := step(m.sel.Monitor, delta, len(m.monitors), m.wrapMonitors)
	if next == m.sel.Monitor {
		return false
	}
	m.sel.Monitor = next
	m.Refocus()
	return true
}

// FocusWorkspace switches every monitor to the slot delta steps away.
func (m *Manager) FocusWorkspace(delta int) bool {
	next := step(m.sel.Slot, delta, m.slots, m.wrapWorkspaces)
	if next == m.sel.Slot {
		return false
	}
	m.switchSlot(next)
	m.Refocus()
	return true
}

// CycleWindow moves the active workspace's current client one step in dir.
func (m *Manager) CycleWindow(dir Direction) bool {
	if !m.ActiveWorkspace().Cycle(dir, m.wrapWindows) {
		return false
	}
	m.Refocus()
	return true
}

// CloseFocused asks the focused client to close. The client is removed only
// once the display server confirms it is gone.
func (m *Manager) CloseFocused() error {
	c := m.ActiveWorkspace().Current()
	if c == nil {
		return nil
	}
	return m.backend.Close(c.ID)
}

package wm

// MoveToMonitor sends the focused client to the same slot on the monitor
// delta steps away, and follows it there.
func (m *Manager) MoveToMonitor(delta int) bool {
	dest := step(m.sel.Monitor, delta, len(m.monitors), m.wrapMonitors)
	if dest == m.sel.Monitor {
		return false
	}
	return m.migrate(Selection{Monitor: dest, Slot: m.sel.Slot})
}

// MoveToWorkspace sends the focused client to the slot delta steps away on
// the active monitor, and switches to that slot.
func (m *Manager) MoveToWorkspace(delta int) bool {
	dest := step(m.sel.Slot, delta, m.slots, m.wrapWorkspaces)
	if dest == m.sel.Slot {
		return false
	}
	return m.migrate(Selection{Monitor: m.sel.Monitor, Slot: dest})
}

// migrate moves the active workspace's current client to the workspace at
// dest. The client is detached before the selection changes and attached
// after, so it is never in two workspaces and never in none while the
// selection points somewhere else.
func (m *Manager) migrate(dest Selection) bool {
	src := m.ActiveWorkspace()
	c := src.Current()
	if c == nil {
		return false
	}
	src.Remove(c)

	if dest.Slot != m.sel.Slot {
		m.switchSlot(dest.Slot)
	}
	m.sel.Monitor = dest.Monitor

	m.ActiveWorkspace().InsertFront(c)
	m.place(c)
	m.log.Info().
		Uint32("window", uint32(c.ID)).
		Int("monitor", dest.Monitor).
		Int("slot", dest.Slot).
		Msg("moved window")

	m.Refocus()
	return true
}

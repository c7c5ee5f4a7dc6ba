package wm

// Refocus raises and focuses the active workspace's current client, or
// drops focus to the pointer root when the workspace is empty. It is the
// only place that issues raise and focus requests, and it is safe to call
// any number of times.
func (m *Manager) Refocus() {
	ws := m.ActiveWorkspace()
	if ws.repair() {
		m.log.Debug().
			Int("monitor", m.sel.Monitor).
			Int("slot", m.sel.Slot).
			Msg("repaired missing current client")
	}

	c := ws.Current()
	if c == nil {
		if err := m.backend.FocusNone(); err != nil {
			m.log.Warn().Err(err).Msg("focus pointer root")
		}
		return
	}

	if err := m.backend.Raise(c.ID); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.ID)).Msg("raise window")
	}
	if err := m.backend.Focus(c.ID); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.ID)).Msg("focus window")
	}
}

package wm

import (
	"slices"

	"github.com/exnwm/exn/internal/platform"
)

// Direction selects the neighbour when cycling through a workspace.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Workspace is the ordered set of clients for one (monitor, slot) pair.
// Index 0 is the front. current is -1 exactly when clients is empty.
type Workspace struct {
	monitor *Monitor
	slot    int
	clients []*Client
	current int
}

func newWorkspace(m *Monitor, slot int) *Workspace {
	return &Workspace{monitor: m, slot: slot, current: -1}
}

// Monitor returns the monitor hosting this workspace.
func (w *Workspace) Monitor() *Monitor { return w.monitor }

// Slot returns the workspace slot index.
func (w *Workspace) Slot() int { return w.slot }

// Len returns the number of clients.
func (w *Workspace) Len() int { return len(w.clients) }

// Current returns the focused client of this workspace, or nil if empty.
func (w *Workspace) Current() *Client {
	if w.current < 0 || w.current >= len(w.clients) {
		return nil
	}
	return w.clients[w.current]
}

// Clients returns the clients front to back.
func (w *Workspace) Clients() []*Client {
	return slices.Clone(w.clients)
}

// Contains reports whether a client for id lives here.
func (w *Workspace) Contains(id platform.WindowID) bool {
	for _, c := range w.clients {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (w *Workspace) index(c *Client) int {
	return slices.Index(w.clients, c)
}

// InsertFront adds c at the head and makes it current. New windows always
// take focus.
func (w *Workspace) InsertFront(c *Client) {
	w.clients = slices.Insert(w.clients, 0, c)
	w.current = 0
	c.ws = w
}

// Remove unlinks c. When c was current, the client that followed it takes
// over, or the one before it if c was last.
func (w *Workspace) Remove(c *Client) bool {
	i := w.index(c)
	if i < 0 {
		return false
	}
	w.clients = slices.Delete(w.clients, i, i+1)
	c.ws = nil

	switch {
	case len(w.clients) == 0:
		w.current = -1
	case i < w.current:
		w.current--
	case i == w.current && i == len(w.clients):
		w.current = i - 1
	}
	return true
}

// SetCurrent makes c the current client if it belongs here.
func (w *Workspace) SetCurrent(c *Client) bool {
	i := w.index(c)
	if i < 0 {
		return false
	}
	w.current = i
	return true
}

// Cycle moves current one step in dir. Past either end it wraps when wrap
// is set and stays put otherwise. It reports whether current changed.
func (w *Workspace) Cycle(dir Direction, wrap bool) bool {
	n := len(w.clients)
	if n <= 1 {
		return false
	}
	next := step(w.current, int(dir), n, wrap)
	if next == w.current {
		return false
	}
	w.current = next
	return true
}

// repair points current at the front when the workspace has clients but no
// current one.
func (w *Workspace) repair() bool {
	if len(w.clients) > 0 && (w.current < 0 || w.current >= len(w.clients)) {
		w.current = 0
		return true
	}
	return false
}

// Placement returns where the workspace's windows go: the monitor's usable
// area when visible, the same size parked left of every monitor otherwise.
func (w *Workspace) Placement(visible bool) platform.Rect {
	r := w.monitor.Usable
	if !visible {
		r.X = -2 * r.Width
	}
	return r
}

// Show moves every client onto the monitor.
func (w *Workspace) Show(backend platform.Backend) error {
	return w.placeAll(backend, w.Placement(true))
}

// Hide parks every client off-screen. Clients stay managed and mapped.
func (w *Workspace) Hide(backend platform.Backend) error {
	return w.placeAll(backend, w.Placement(false))
}

func (w *Workspace) placeAll(backend platform.Backend, r platform.Rect) error {
	var err error
	for _, c := range w.clients {
		// Keep going so one stale window does not strand the others.
		if perr := backend.MoveResize(c.ID, r); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

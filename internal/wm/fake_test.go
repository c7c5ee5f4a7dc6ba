package wm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/exnwm/exn/internal/platform"
	"github.com/rs/zerolog"
)

type call struct {
	op   string
	id   platform.WindowID
	rect platform.Rect
}

func (c call) String() string {
	return fmt.Sprintf("%s(0x%x)", c.op, uint32(c.id))
}

// fakeBackend records every request and keeps the last geometry per window.
type fakeBackend struct {
	calls     []call
	attrs     map[platform.WindowID]platform.Attributes
	geometry  map[platform.WindowID]platform.Rect
	focused   platform.WindowID
	hints     []platform.Hints
	closeErr  error
	moveFails map[platform.WindowID]bool
	gone      map[platform.WindowID]bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		attrs:     make(map[platform.WindowID]platform.Attributes),
		geometry:  make(map[platform.WindowID]platform.Rect),
		moveFails: make(map[platform.WindowID]bool),
		gone:      make(map[platform.WindowID]bool),
	}
}

func (f *fakeBackend) record(op string, id platform.WindowID, r platform.Rect) {
	f.calls = append(f.calls, call{op: op, id: id, rect: r})
}

func (f *fakeBackend) reset() { f.calls = nil }

func (f *fakeBackend) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (f *fakeBackend) Displays() ([]platform.Display, error) { return nil, nil }

func (f *fakeBackend) Attributes(id platform.WindowID) (platform.Attributes, error) {
	if f.gone[id] {
		return platform.Attributes{}, fmt.Errorf("window 0x%x: bad window", uint32(id))
	}
	return f.attrs[id], nil
}

func (f *fakeBackend) MoveResize(id platform.WindowID, r platform.Rect) error {
	f.record("move", id, r)
	if f.moveFails[id] {
		return errors.New("bad window")
	}
	f.geometry[id] = r
	return nil
}

func (f *fakeBackend) Configure(id platform.WindowID, r platform.Rect) error {
	f.record("configure", id, r)
	f.geometry[id] = r
	return nil
}

func (f *fakeBackend) Map(id platform.WindowID) error {
	f.record("map", id, platform.Rect{})
	return nil
}

func (f *fakeBackend) Raise(id platform.WindowID) error {
	f.record("raise", id, platform.Rect{})
	return nil
}

func (f *fakeBackend) Focus(id platform.WindowID) error {
	f.record("focus", id, platform.Rect{})
	f.focused = id
	return nil
}

func (f *fakeBackend) FocusNone() error {
	f.record("focus-none", 0, platform.Rect{})
	f.focused = 0
	return nil
}

func (f *fakeBackend) Close(id platform.WindowID) error {
	f.record("close", id, platform.Rect{})
	return f.closeErr
}

func (f *fakeBackend) ExistingWindows() ([]platform.Window, error) { return nil, nil }

func (f *fakeBackend) PublishHints(h platform.Hints) error {
	f.hints = append(f.hints, h)
	return nil
}

type fakeLauncher struct {
	launched [][]string
	err      error
}

func (l *fakeLauncher) Launch(name string, args []string) error {
	l.launched = append(l.launched, append([]string{name}, args...))
	return l.err
}

// scriptedSource replays events and then reports the connection closed.
type scriptedSource struct {
	events []platform.Event
}

func (s *scriptedSource) NextEvent() (platform.Event, error) {
	if len(s.events) == 0 {
		return nil, platform.ErrConnectionClosed
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

var (
	leftHead  = platform.Display{ID: 0, Name: "left", Bounds: platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}
	rightHead = platform.Display{ID: 1, Name: "right", Bounds: platform.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}}
)

func newTestManager(t *testing.T, displays []platform.Display, opts Options) (*Manager, *fakeBackend) {
	t.Helper()
	if opts.Workspaces == 0 {
		opts.Workspaces = 2
	}
	opts.Logger = zerolog.Nop()
	b := newFakeBackend()
	m, err := New(b, displays, opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m, b
}

func mapWindows(m *Manager, ids ...platform.WindowID) {
	for _, id := range ids {
		m.Handle(platform.MapRequest{Window: id})
	}
}

func clientIDs(ws *Workspace) []platform.WindowID {
	var ids []platform.WindowID
	for _, c := range ws.Clients() {
		ids = append(ids, c.ID)
	}
	return ids
}

func currentID(ws *Workspace) platform.WindowID {
	if c := ws.Current(); c != nil {
		return c.ID
	}
	return 0
}

// checkInvariants verifies that no window lives in two workspaces, every
// workspace's current is valid, the registry matches workspace membership
// and the selection is in range.
func checkInvariants(t *testing.T, m *Manager) {
	t.Helper()
	seen := make(map[platform.WindowID]*Workspace)
	for _, mon := range m.Monitors() {
		for _, ws := range mon.Workspaces() {
			if ws.Len() == 0 {
				if ws.Current() != nil {
					t.Fatalf("empty workspace %d/%d has a current client", mon.Index, ws.Slot())
				}
				continue
			}
			cur := ws.Current()
			if cur == nil || !ws.Contains(cur.ID) {
				t.Fatalf("workspace %d/%d current is not a member", mon.Index, ws.Slot())
			}
			for _, c := range ws.Clients() {
				if prev, dup := seen[c.ID]; dup {
					t.Fatalf("window 0x%x in workspaces %d/%d and %d/%d", uint32(c.ID),
						prev.Monitor().Index, prev.Slot(), mon.Index, ws.Slot())
				}
				seen[c.ID] = ws
				if c.Workspace() != ws {
					t.Fatalf("window 0x%x back link does not match its workspace", uint32(c.ID))
				}
				if _, ok := m.Registry().Lookup(c.ID); !ok {
					t.Fatalf("window 0x%x in a workspace but not registered", uint32(c.ID))
				}
			}
		}
	}
	if len(seen) != m.Registry().Len() {
		t.Fatalf("registry has %d clients, workspaces hold %d", m.Registry().Len(), len(seen))
	}
	sel := m.Selection()
	if sel.Monitor < 0 || sel.Monitor >= len(m.Monitors()) || sel.Slot < 0 || sel.Slot >= m.slots {
		t.Fatalf("selection %+v out of range", sel)
	}
}

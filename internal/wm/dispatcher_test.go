package wm

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/exnwm/exn/internal/platform"
)

const (
	mod4     uint16 = 1 << 6
	shift    uint16 = 1 << 0
	lockMask uint16 = 1 << 1
	numLock  uint16 = 1 << 4

	symTab uint32 = 0xff09
	symQ   uint32 = 0x0071
	symT   uint32 = 0x0074
)

func TestMapRequestIgnoresOverrideRedirect(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
	b.attrs[9] = platform.Attributes{OverrideRedirect: true}

	m.Handle(platform.MapRequest{Window: 9})
	if m.Registry().Len() != 0 {
		t.Fatal("override-redirect window was registered")
	}
	if len(b.calls) != 0 {
		t.Fatalf("backend calls = %v, want none", b.calls)
	}
}

func TestMapRequestDockIsMappedNotManaged(t *testing.T) {
	for _, typ := range []platform.WindowType{platform.WindowTypeDock, platform.WindowTypeDesktop} {
		m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
		b.attrs[4] = platform.Attributes{Type: typ}

		m.Handle(platform.MapRequest{Window: 4})
		if _, ok := m.Registry().Lookup(4); ok {
			t.Fatalf("window type %d was managed", typ)
		}
		if b.count("map") != 1 || b.count("focus") != 0 {
			t.Fatalf("calls = %v, want a single map", b.calls)
		}
	}
}

func TestMapRequestUnreadableWindowIsIgnored(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
	b.gone[4] = true

	m.Handle(platform.MapRequest{Window: 4})
	if m.Registry().Len() != 0 {
		t.Fatal("unreadable window was managed")
	}
	if b.count("map") != 0 || b.count("move") != 0 {
		t.Fatalf("calls = %v, want none for the window", b.calls)
	}
}

func TestMapRequestManagesWindow(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})

	m.Handle(platform.MapRequest{Window: 1})
	if _, ok := m.Registry().Lookup(1); !ok {
		t.Fatal("window not registered")
	}
	want := []string{"move", "map", "raise", "focus"}
	var got []string
	for _, c := range b.calls {
		got = append(got, c.op)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	if b.geometry[1] != leftHead.Bounds {
		t.Fatalf("geometry = %+v, want %+v", b.geometry[1], leftHead.Bounds)
	}
	if len(b.hints) != 1 || b.hints[0].Active != 1 {
		t.Fatalf("hints = %+v, want active window 1", b.hints)
	}
}

func TestMapRequestDuplicateIsIdempotent(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead, rightHead}, Options{})
	mapWindows(m, 1, 2)
	m.FocusMonitor(1)
	b.reset()

	m.Handle(platform.MapRequest{Window: 1})
	if m.Registry().Len() != 2 {
		t.Fatalf("registry has %d clients, want 2", m.Registry().Len())
	}
	if m.ActiveWorkspace().Len() != 0 {
		t.Fatal("duplicate map request attached the window to another workspace")
	}
	if b.count("map") != 1 || b.count("move") != 0 {
		t.Fatalf("calls = %v, want only a re-map", b.calls)
	}
	checkInvariants(t, m)
}

func TestDestroyUnknownWindowIsIgnored(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
	mapWindows(m, 1)
	b.reset()

	m.Handle(platform.DestroyNotify{Window: 42})
	if m.Registry().Len() != 1 || currentID(m.ActiveWorkspace()) != 1 {
		t.Fatal("destroy of an unknown window changed state")
	}
	if len(b.calls) != 0 {
		t.Fatalf("backend calls = %v, want none", b.calls)
	}
}

func TestDestroyRefocuses(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
	mapWindows(m, 1, 2)

	m.Handle(platform.DestroyNotify{Window: 2})
	if b.focused != 1 {
		t.Fatalf("focused = %d, want 1", b.focused)
	}
	m.Handle(platform.DestroyNotify{Window: 1})
	if b.calls[len(b.calls)-1].op != "focus-none" {
		t.Fatalf("last call = %v, want focus-none", b.calls[len(b.calls)-1])
	}
	checkInvariants(t, m)
}

func TestUnmapReleasesWindow(t *testing.T) {
	m, _ := newTestManager(t, []platform.Display{leftHead}, Options{})
	mapWindows(m, 1)

	m.Handle(platform.UnmapNotify{Window: 1})
	if m.Registry().Len() != 0 || m.ActiveWorkspace().Len() != 0 {
		t.Fatal("withdrawn window still managed")
	}
}

func TestConfigureRequest(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
	mapWindows(m, 1)
	b.reset()

	req := platform.Rect{X: 10, Y: 20, Width: 300, Height: 200}
	m.Handle(platform.ConfigureRequest{Window: 8, Bounds: req})
	if b.geometry[8] != req || b.count("configure") != 1 {
		t.Fatalf("unmanaged window not configured as requested: %v", b.calls)
	}

	m.Handle(platform.ConfigureRequest{Window: 1, Bounds: req})
	if b.geometry[1] != leftHead.Bounds {
		t.Fatalf("managed window at %+v, want %+v", b.geometry[1], leftHead.Bounds)
	}
}

func TestActivateRequest(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead, rightHead}, Options{Workspaces: 3})
	mapWindows(m, 1, 2)
	if err := m.Select(Selection{Monitor: 1, Slot: 2}); err != nil {
		t.Fatal(err)
	}
	mapWindows(m, 3)

	m.Handle(platform.ActivateRequest{Window: 1})
	if m.Selection() != (Selection{Monitor: 0, Slot: 0}) {
		t.Fatalf("selection = %+v, want 0/0", m.Selection())
	}
	if currentID(m.ActiveWorkspace()) != 1 || b.focused != 1 {
		t.Fatalf("current = %d focused = %d, want 1", currentID(m.ActiveWorkspace()), b.focused)
	}

	sel := m.Selection()
	m.Handle(platform.ActivateRequest{Window: 77})
	if m.Selection() != sel {
		t.Fatal("activation of an unknown window changed the selection")
	}
	checkInvariants(t, m)
}

func TestKeyPressDispatch(t *testing.T) {
	km := NewKeymap([]Binding{
		{Chord: Chord{Mods: mod4, Keysym: symTab}, Action: Action{Kind: ActionCycleForward}},
		{Chord: Chord{Mods: mod4 | shift, Keysym: symTab}, Action: Action{Kind: ActionCycleBackward}},
	}, lockMask, numLock)
	m, _ := newTestManager(t, []platform.Display{leftHead}, Options{Keymap: km})
	mapWindows(m, 1, 2, 3)

	m.Handle(platform.KeyPress{Mods: mod4 | numLock | lockMask, Keysym: symTab})
	if currentID(m.ActiveWorkspace()) != 2 {
		t.Fatalf("current = %d, want 2", currentID(m.ActiveWorkspace()))
	}
	m.Handle(platform.KeyPress{Mods: mod4 | shift, Keysym: symTab})
	if currentID(m.ActiveWorkspace()) != 3 {
		t.Fatalf("current = %d, want 3", currentID(m.ActiveWorkspace()))
	}
	m.Handle(platform.KeyPress{Mods: shift, Keysym: symTab})
	if currentID(m.ActiveWorkspace()) != 3 {
		t.Fatal("unbound chord changed state")
	}
}

func TestRunStopsOnEndSession(t *testing.T) {
	km := NewKeymap([]Binding{
		{Chord: Chord{Mods: mod4 | shift, Keysym: symQ}, Action: Action{Kind: ActionEndSession}},
	})
	m, _ := newTestManager(t, []platform.Display{leftHead}, Options{Keymap: km})
	src := &scriptedSource{events: []platform.Event{
		platform.MapRequest{Window: 1},
		platform.KeyPress{Mods: mod4 | shift, Keysym: symQ},
		platform.MapRequest{Window: 2},
	}}

	if err := m.Run(context.Background(), src); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if m.State() != StateStopped {
		t.Fatalf("state = %s, want stopped", m.State())
	}
	if len(src.events) != 1 {
		t.Fatalf("%d events left, want the one after end-session", len(src.events))
	}
	if err := m.Run(context.Background(), src); !errors.Is(err, ErrStopped) {
		t.Fatalf("Run() after stop = %v, want ErrStopped", err)
	}
}

func TestRunFailsWhenSourceFails(t *testing.T) {
	m, _ := newTestManager(t, []platform.Display{leftHead}, Options{})
	src := &scriptedSource{events: []platform.Event{platform.MapRequest{Window: 1}}}

	err := m.Run(context.Background(), src)
	if !errors.Is(err, platform.ErrConnectionClosed) {
		t.Fatalf("Run() = %v, want ErrConnectionClosed", err)
	}
	if m.Registry().Len() != 1 {
		t.Fatal("event before the failure was not handled")
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	m, _ := newTestManager(t, []platform.Display{leftHead}, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.Run(ctx, &scriptedSource{}); err != nil {
		t.Fatalf("Run() = %v, want nil after cancel", err)
	}
	if m.State() != StateIdle {
		t.Fatalf("state = %s, want idle", m.State())
	}
}

func TestHandleSurvivesBackendErrors(t *testing.T) {
	m, b := newTestManager(t, []platform.Display{leftHead}, Options{})
	b.moveFails[1] = true

	m.Handle(platform.MapRequest{Window: 1})
	if _, ok := m.Registry().Lookup(1); !ok {
		t.Fatal("window not managed after a failed move")
	}
	if b.focused != 1 {
		t.Fatalf("focused = %d, want 1", b.focused)
	}
}

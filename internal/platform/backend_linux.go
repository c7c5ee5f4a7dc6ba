//go:build linux

package platform

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/exnwm/exn/internal/x11"
	"github.com/rs/zerolog"
)

// LinuxBackend wraps an existing X11 connection behind the platform interfaces.
type LinuxBackend struct {
	conn *x11.Connection
	log  zerolog.Logger

	// lost is set once the server side of the connection is gone.
	lost atomic.Bool
}

var (
	_ Backend     = (*LinuxBackend)(nil)
	_ EventSource = (*LinuxBackend)(nil)
	_ KeyGrabber  = (*LinuxBackend)(nil)
)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, log zerolog.Logger) *LinuxBackend {
	return &LinuxBackend{conn: conn, log: log}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection to display and
// takes over window management on its root window.
func NewLinuxBackendFromDisplay(display string, log zerolog.Logger) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	if err := conn.BecomeWM(); err != nil {
		conn.Close()
		return nil, err
	}
	if err := conn.AnnounceSupported(); err != nil {
		log.Warn().Err(err).Msg("EWMH support not announced")
	}
	return &LinuxBackend{conn: conn, log: log}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b == nil || b.conn == nil {
		return
	}
	if !b.lost.Load() {
		if err := b.conn.UngrabAllKeys(); err != nil {
			b.log.Debug().Err(err).Msg("failed to release key grabs")
		}
	}
	b.conn.Close()
}

// Displays returns all active displays.
func (b *LinuxBackend) Displays() ([]Display, error) {
	monitors, err := b.conn.Monitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, displayFromMonitor(m))
	}

	sort.Slice(displays, func(i, j int) bool {
		return displays[i].ID < displays[j].ID
	})
	return displays, nil
}

// Attributes reports the override-redirect flag and EWMH type of a window.
func (b *LinuxBackend) Attributes(id WindowID) (Attributes, error) {
	override, err := b.conn.OverrideRedirect(xproto.Window(id))
	if err != nil {
		return Attributes{}, err
	}
	attrs := Attributes{OverrideRedirect: override}
	for _, t := range b.conn.WindowTypes(xproto.Window(id)) {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DOCK":
			attrs.Type = WindowTypeDock
		case "_NET_WM_WINDOW_TYPE_DESKTOP":
			attrs.Type = WindowTypeDesktop
		}
	}
	return attrs, nil
}

// MoveResize moves and resizes a window to the specified bounds.
func (b *LinuxBackend) MoveResize(id WindowID, bounds Rect) error {
	return b.conn.MoveResizeWindow(xproto.Window(id), bounds.X, bounds.Y, bounds.Width, bounds.Height)
}

// Configure applies a geometry requested by an unmanaged window.
func (b *LinuxBackend) Configure(id WindowID, bounds Rect) error {
	return b.conn.ConfigureWindow(xproto.Window(id), bounds.X, bounds.Y, bounds.Width, bounds.Height)
}

// Map makes a window viewable.
func (b *LinuxBackend) Map(id WindowID) error {
	return b.conn.MapWindow(xproto.Window(id))
}

// Raise puts a window on top of the stacking order.
func (b *LinuxBackend) Raise(id WindowID) error {
	return b.conn.RaiseWindow(xproto.Window(id))
}

// Focus transfers the input focus to a window.
func (b *LinuxBackend) Focus(id WindowID) error {
	return b.conn.FocusWindow(xproto.Window(id))
}

// FocusNone reverts the input focus to the pointer root.
func (b *LinuxBackend) FocusNone() error {
	return b.conn.FocusPointerRoot()
}

// Close requests graceful window close via WM_DELETE_WINDOW.
func (b *LinuxBackend) Close(id WindowID) error {
	return b.conn.CloseWindow(xproto.Window(id))
}

// ExistingWindows lists the top-level windows mapped before startup.
func (b *LinuxBackend) ExistingWindows() ([]Window, error) {
	tops, err := b.conn.TopLevelWindows()
	if err != nil {
		return nil, err
	}
	windows := make([]Window, 0, len(tops))
	for _, t := range tops {
		windows = append(windows, Window{
			ID: WindowID(t.Window),
			Bounds: Rect{
				X:      t.X,
				Y:      t.Y,
				Width:  t.Width,
				Height: t.Height,
			},
		})
	}
	return windows, nil
}

// PublishHints writes the EWMH desktop state to the root window.
func (b *LinuxBackend) PublishHints(h Hints) error {
	clients := make([]xproto.Window, 0, len(h.Clients))
	for _, id := range h.Clients {
		clients = append(clients, xproto.Window(id))
	}
	return b.conn.SetDesktopHints(xproto.Window(h.Active), clients, h.Desktop, h.Desktops)
}

// GrabKey grabs every keycode producing keysym with exactly mods held.
func (b *LinuxBackend) GrabKey(mods uint16, keysym uint32) error {
	codes := b.conn.KeycodesFor(xproto.Keysym(keysym))
	if len(codes) == 0 {
		return fmt.Errorf("no keycode for keysym 0x%x", keysym)
	}
	for _, code := range codes {
		if err := b.conn.GrabKey(mods, code); err != nil {
			return fmt.Errorf("failed to grab keycode %d: %w", code, err)
		}
	}
	return nil
}

// LockMasks returns the modifier bits ignored when matching key presses.
func (b *LinuxBackend) LockMasks() []uint16 {
	return b.conn.LockMasks()
}

// NextEvent blocks until an event the manager handles arrives. Asynchronous
// protocol errors (usually requests racing a destroyed window) are logged
// and skipped.
func (b *LinuxBackend) NextEvent() (Event, error) {
	for {
		xev, xerr := b.conn.WaitForEvent()
		if xev == nil && xerr == nil {
			b.lost.Store(true)
			return nil, ErrConnectionClosed
		}
		if xerr != nil {
			b.log.Debug().Str("error", xerr.Error()).Msg("X protocol error")
			continue
		}

		switch e := xev.(type) {
		case xproto.MapRequestEvent:
			return MapRequest{Window: WindowID(e.Window)}, nil
		case xproto.DestroyNotifyEvent:
			return DestroyNotify{Window: WindowID(e.Window)}, nil
		case xproto.UnmapNotifyEvent:
			return UnmapNotify{Window: WindowID(e.Window)}, nil
		case xproto.KeyPressEvent:
			return KeyPress{
				Mods:   e.State,
				Keysym: uint32(b.conn.KeysymFor(e.Detail)),
			}, nil
		case xproto.ConfigureRequestEvent:
			return ConfigureRequest{
				Window: WindowID(e.Window),
				Bounds: Rect{
					X:      int(e.X),
					Y:      int(e.Y),
					Width:  int(e.Width),
					Height: int(e.Height),
				},
			}, nil
		case xproto.ClientMessageEvent:
			if b.conn.AtomName(e.Type) == "_NET_ACTIVE_WINDOW" {
				return ActivateRequest{Window: WindowID(e.Window)}, nil
			}
		}
	}
}

func displayFromMonitor(m x11.Monitor) Display {
	bounds := Rect{
		X:      m.X,
		Y:      m.Y,
		Width:  m.Width,
		Height: m.Height,
	}
	return Display{
		ID:     m.ID,
		Name:   m.Name,
		Bounds: bounds,
		Usable: bounds,
	}
}

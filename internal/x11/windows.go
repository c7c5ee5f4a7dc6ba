package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// TopLevel is a mapped child of the root window found at startup.
type TopLevel struct {
	Window xproto.Window
	X      int
	Y      int
	Width  int
	Height int
}

// OverrideRedirect reports whether the window asked to bypass the manager.
func (c *Connection) OverrideRedirect(windowID xproto.Window) (bool, error) {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false, fmt.Errorf("failed to get window attributes: %w", err)
	}
	return attrs.OverrideRedirect, nil
}

// WindowTypes returns the _NET_WM_WINDOW_TYPE atoms set on a window.
func (c *Connection) WindowTypes(windowID xproto.Window) []string {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return types
}

// MoveResizeWindow moves and resizes a window to the specified geometry.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	if err := c.ConfigureWindow(windowID, x, y, width, height); err != nil {
		return fmt.Errorf("failed to move window 0x%x: %w", windowID, err)
	}
	return nil
}

// ConfigureWindow applies a client's requested geometry verbatim.
func (c *Connection) ConfigureWindow(windowID xproto.Window, x, y, width, height int) error {
	return xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.ConfigWindowX|
			xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight,
		[]uint32{
			uint32(int32(x)),
			uint32(int32(y)),
			uint32(width),
			uint32(height),
		},
	).Check()
}

// MapWindow makes a window viewable.
func (c *Connection) MapWindow(windowID xproto.Window) error {
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check(); err != nil {
		return fmt.Errorf("failed to map window 0x%x: %w", windowID, err)
	}
	return nil
}

// RaiseWindow puts a window on top of the stack.
func (c *Connection) RaiseWindow(windowID xproto.Window) error {
	return xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	).Check()
}

// FocusWindow gives a window the input focus, reverting to the pointer root.
func (c *Connection) FocusWindow(windowID xproto.Window) error {
	return xproto.SetInputFocusChecked(
		c.XUtil.Conn(),
		xproto.InputFocusPointerRoot,
		windowID,
		xproto.TimeCurrentTime,
	).Check()
}

// FocusPointerRoot drops the input focus so that no client holds it.
func (c *Connection) FocusPointerRoot() error {
	return xproto.SetInputFocusChecked(
		c.XUtil.Conn(),
		xproto.InputFocusPointerRoot,
		xproto.Window(xproto.InputFocusPointerRoot),
		xproto.TimeCurrentTime,
	).Check()
}

// CloseWindow requests graceful window close via WM_DELETE_WINDOW. Windows
// that do not speak the protocol are killed.
func (c *Connection) CloseWindow(windowID xproto.Window) error {
	protocols, err := icccm.WmProtocolsGet(c.XUtil, windowID)
	if err == nil {
		for _, p := range protocols {
			if p == "WM_DELETE_WINDOW" {
				return c.sendDeleteWindow(windowID)
			}
		}
	}
	return xproto.KillClientChecked(c.XUtil.Conn(), uint32(windowID)).Check()
}

func (c *Connection) sendDeleteWindow(windowID xproto.Window) error {
	protocols, err := xprop.Atm(c.XUtil, "WM_PROTOCOLS")
	if err != nil {
		return err
	}
	deleteWindow, err := xprop.Atm(c.XUtil, "WM_DELETE_WINDOW")
	if err != nil {
		return err
	}

	// ICCCM 4.2.8 ClientMessage
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   protocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(deleteWindow),
			xproto.TimeCurrentTime,
			0,
			0,
			0,
		}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		windowID,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check()
}

// TopLevelWindows lists viewable, non-override-redirect children of the root.
func (c *Connection) TopLevelWindows() ([]TopLevel, error) {
	tree, err := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query window tree: %w", err)
	}

	var windows []TopLevel
	for _, child := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), child).Reply()
		if err != nil {
			continue
		}
		if attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		geom, err := xwindow.New(c.XUtil, child).Geometry()
		if err != nil {
			continue
		}
		windows = append(windows, TopLevel{
			Window: child,
			X:      geom.X(),
			Y:      geom.Y(),
			Width:  geom.Width(),
			Height: geom.Height(),
		})
	}
	return windows, nil
}

// AtomName resolves an atom to its name, or "" if unknown.
func (c *Connection) AtomName(atom xproto.Atom) string {
	name, err := xprop.AtomName(c.XUtil, atom)
	if err != nil {
		return ""
	}
	return name
}

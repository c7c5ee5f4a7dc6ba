package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// supportedHints lists the EWMH atoms this manager maintains.
var supportedHints = []string{
	"_NET_SUPPORTED",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_CURRENT_DESKTOP",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
}

// AnnounceSupported sets _NET_SUPPORTED on the root window.
func (c *Connection) AnnounceSupported() error {
	if err := ewmh.SupportedSet(c.XUtil, supportedHints); err != nil {
		return fmt.Errorf("failed to set _NET_SUPPORTED: %w", err)
	}
	return nil
}

// SetDesktopHints publishes the active window, client list and desktop
// numbering on the root window.
func (c *Connection) SetDesktopHints(active xproto.Window, clients []xproto.Window, desktop, desktops int) error {
	if err := ewmh.NumberOfDesktopsSet(c.XUtil, uint(desktops)); err != nil {
		return fmt.Errorf("failed to set _NET_NUMBER_OF_DESKTOPS: %w", err)
	}
	if err := ewmh.CurrentDesktopSet(c.XUtil, uint(desktop)); err != nil {
		return fmt.Errorf("failed to set _NET_CURRENT_DESKTOP: %w", err)
	}
	if err := ewmh.ClientListSet(c.XUtil, clients); err != nil {
		return fmt.Errorf("failed to set _NET_CLIENT_LIST: %w", err)
	}
	if err := ewmh.ActiveWindowSet(c.XUtil, active); err != nil {
		return fmt.Errorf("failed to set _NET_ACTIVE_WINDOW: %w", err)
	}
	return nil
}

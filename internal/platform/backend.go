package platform

import "errors"

// ErrConnectionClosed is returned by an EventSource once the display
// connection is gone.
var ErrConnectionClosed = errors.New("display connection closed")

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the midpoint of r.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Display describes a physical display and its usable work area.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
	Usable Rect
}

// WindowType is the subset of _NET_WM_WINDOW_TYPE values the manager cares about.
type WindowType int

const (
	WindowTypeNormal WindowType = iota
	WindowTypeDock
	WindowTypeDesktop
)

// Attributes holds what the manager needs to know about a window before
// deciding to manage it.
type Attributes struct {
	OverrideRedirect bool
	Type             WindowType
}

// Window is a top-level window that existed before the manager started.
type Window struct {
	ID     WindowID
	Bounds Rect
}

// Hints is the desktop state advertised to pagers and bars.
type Hints struct {
	Active   WindowID // 0 if nothing is focused
	Clients  []WindowID
	Desktop  int
	Desktops int
}

// Backend abstracts the display-server operations the window manager performs.
type Backend interface {
	Displays() ([]Display, error)
	Attributes(id WindowID) (Attributes, error)
	MoveResize(id WindowID, bounds Rect) error
	Configure(id WindowID, bounds Rect) error
	Map(id WindowID) error
	Raise(id WindowID) error
	Focus(id WindowID) error
	FocusNone() error
	Close(id WindowID) error
	ExistingWindows() ([]Window, error)
	PublishHints(h Hints) error
}

// EventSource yields display-server notifications one at a time.
type EventSource interface {
	NextEvent() (Event, error)
}

// KeyGrabber registers global hotkeys with the display server.
type KeyGrabber interface {
	GrabKey(mods uint16, keysym uint32) error
	LockMasks() []uint16
}

package platform

import "fmt"

// Event is a display-server notification translated into platform terms.
type Event interface {
	fmt.Stringer
	isEvent()
}

// MapRequest is sent when a top-level window asks to be shown.
type MapRequest struct {
	Window WindowID
}

// DestroyNotify is sent after a window has been destroyed.
type DestroyNotify struct {
	Window WindowID
}

// UnmapNotify is sent after a window has been unmapped.
type UnmapNotify struct {
	Window WindowID
}

// KeyPress is a grabbed key combination. Keysym is resolved from the
// unshifted column of the keyboard map.
type KeyPress struct {
	Mods   uint16
	Keysym uint32
}

// ConfigureRequest is a window asking for a new geometry.
type ConfigureRequest struct {
	Window WindowID
	Bounds Rect
}

// ActivateRequest is a _NET_ACTIVE_WINDOW request from a pager or client.
type ActivateRequest struct {
	Window WindowID
}

func (MapRequest) isEvent()       {}
func (DestroyNotify) isEvent()    {}
func (UnmapNotify) isEvent()      {}
func (KeyPress) isEvent()         {}
func (ConfigureRequest) isEvent() {}
func (ActivateRequest) isEvent()  {}

func (e MapRequest) String() string    { return fmt.Sprintf("MapRequest(0x%x)", uint32(e.Window)) }
func (e DestroyNotify) String() string { return fmt.Sprintf("DestroyNotify(0x%x)", uint32(e.Window)) }
func (e UnmapNotify) String() string   { return fmt.Sprintf("UnmapNotify(0x%x)", uint32(e.Window)) }
func (e KeyPress) String() string      { return fmt.Sprintf("KeyPress(mods=0x%x sym=0x%x)", e.Mods, e.Keysym) }
func (e ConfigureRequest) String() string {
	return fmt.Sprintf("ConfigureRequest(0x%x %dx%d+%d+%d)", uint32(e.Window),
		e.Bounds.Width, e.Bounds.Height, e.Bounds.X, e.Bounds.Y)
}
func (e ActivateRequest) String() string {
	return fmt.Sprintf("ActivateRequest(0x%x)", uint32(e.Window))
}

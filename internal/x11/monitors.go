package x11

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/randr"
	xgbxinerama "github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xinerama"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Monitors returns the physical heads ordered left to right, then top to
// bottom. XRandR is preferred; Xinerama and finally the root window geometry
// are used when it reports nothing.
func (c *Connection) Monitors() ([]Monitor, error) {
	monitors, err := c.randrMonitors()
	if err != nil || len(monitors) == 0 {
		monitors, err = c.xineramaMonitors()
	}
	if err != nil || len(monitors) == 0 {
		root, gerr := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
		if gerr != nil {
			return nil, fmt.Errorf("failed to get root geometry: %w", gerr)
		}
		monitors = []Monitor{{
			Name:   "root",
			Width:  int(root.Width),
			Height: int(root.Height),
		}}
	}

	monitors = dedupeMonitors(monitors)
	sort.SliceStable(monitors, func(i, j int) bool {
		if monitors[i].X != monitors[j].X {
			return monitors[i].X < monitors[j].X
		}
		return monitors[i].Y < monitors[j].Y
	})
	for i := range monitors {
		monitors[i].ID = i
	}
	return monitors, nil
}

func (c *Connection) randrMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}
	return monitors, nil
}

func (c *Connection) xineramaMonitors() ([]Monitor, error) {
	if err := xgbxinerama.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("xinerama init failed: %w", err)
	}
	heads, err := xinerama.PhysicalHeads(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to query xinerama heads: %w", err)
	}
	monitors := make([]Monitor, 0, len(heads))
	for i, head := range heads {
		monitors = append(monitors, Monitor{
			Name:   fmt.Sprintf("head%d", i),
			X:      head.X(),
			Y:      head.Y(),
			Width:  head.Width(),
			Height: head.Height(),
		})
	}
	return monitors, nil
}

// dedupeMonitors drops mirrored outputs, which share one geometry.
func dedupeMonitors(monitors []Monitor) []Monitor {
	type geom struct{ x, y, w, h int }
	seen := make(map[geom]struct{}, len(monitors))
	out := monitors[:0]
	for _, m := range monitors {
		g := geom{m.X, m.Y, m.Width, m.Height}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, m)
	}
	return out
}

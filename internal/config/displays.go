package config

import "github.com/exnwm/exn/internal/platform"

// Displays returns the monitors to manage: the configured static monitors
// when there are any, otherwise the discovered ones. Screen padding is
// applied to each display's usable area.
func (c *Config) Displays(discovered []platform.Display) []platform.Display {
	var out []platform.Display
	if len(c.Monitors) > 0 {
		for i, m := range c.Monitors {
			bounds := platform.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
			out = append(out, platform.Display{ID: i, Name: m.Name, Bounds: bounds, Usable: bounds})
		}
	} else {
		out = append(out, discovered...)
	}

	for i := range out {
		out[i].Usable = c.ScreenPadding.apply(out[i].Usable)
	}
	return out
}

func (m Margins) apply(r platform.Rect) platform.Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return r
	}
	padded := platform.Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - m.Left - m.Right,
		Height: r.Height - m.Top - m.Bottom,
	}
	if padded.Width <= 0 || padded.Height <= 0 {
		return r
	}
	return padded
}

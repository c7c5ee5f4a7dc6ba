package x11

import "testing"

func TestDedupeMonitors(t *testing.T) {
	in := []Monitor{
		{ID: 0, Name: "eDP-1", X: 0, Y: 0, Width: 1920, Height: 1080},
		{ID: 1, Name: "HDMI-1", X: 0, Y: 0, Width: 1920, Height: 1080},
		{ID: 2, Name: "DP-1", X: 1920, Y: 0, Width: 2560, Height: 1440},
	}

	got := dedupeMonitors(in)
	if len(got) != 2 {
		t.Fatalf("got %d monitors, want 2", len(got))
	}
	if got[0].Name != "eDP-1" || got[1].Name != "DP-1" {
		t.Fatalf("kept %q and %q, want eDP-1 and DP-1", got[0].Name, got[1].Name)
	}
}

func TestDedupeMonitorsEmpty(t *testing.T) {
	if got := dedupeMonitors(nil); len(got) != 0 {
		t.Fatalf("got %d monitors, want 0", len(got))
	}
}

package hotkeys

import (
	"errors"
	"slices"
	"testing"

	"github.com/exnwm/exn/internal/wm"
	"github.com/rs/zerolog"
)

type grab struct {
	mods   uint16
	keysym uint32
}

type fakeGrabber struct {
	locks  []uint16
	grabs  []grab
	failOn uint32
}

func (g *fakeGrabber) GrabKey(mods uint16, keysym uint32) error {
	if keysym == g.failOn {
		return errors.New("BadAccess")
	}
	g.grabs = append(g.grabs, grab{mods, keysym})
	return nil
}

func (g *fakeGrabber) LockMasks() []uint16 { return g.locks }

func TestParseChord(t *testing.T) {
	tests := []struct {
		seq     string
		mods    uint16
		keysym  uint32
		wantErr bool
	}{
		{"Mod4-Right", 0x40, xkRight, false},
		{"Mod4-Shift-Tab", 0x41, xkTab, false},
		{"mod1-F4", 0x08, xkF1 + 3, false},
		{"Control-Alt-Delete", 0x0c, xkDelete, false},
		{"Super-Q", 0x40, 'q', false},
		{"Mod4-t", 0x40, 't', false},
		{"Return", 0, xkReturn, false},
		{"Mod4-minus", 0x40, '-', false},
		{"XF86AudioMute", 0, xkAudioMute, false},
		{"Mod4-", 0, 0, true},
		{"", 0, 0, true},
		{"Hyper-t", 0, 0, true},
		{"Mod4-NoSuchKey", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			got, err := ParseChord(tt.seq)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseChord(%q) = %+v, want error", tt.seq, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChord(%q) error: %v", tt.seq, err)
			}
			if got.Mods != tt.mods || got.Keysym != tt.keysym {
				t.Fatalf("ParseChord(%q) = {0x%x 0x%x}, want {0x%x 0x%x}",
					tt.seq, got.Mods, got.Keysym, tt.mods, tt.keysym)
			}
		})
	}
}

func TestFormatChordRoundTrip(t *testing.T) {
	for _, seq := range []string{"Mod4-Shift-Tab", "Mod1-F4", "Mod4-Control-Left", "Prior", "Mod4-q"} {
		c, err := ParseChord(seq)
		if err != nil {
			t.Fatalf("ParseChord(%q) error: %v", seq, err)
		}
		back, err := ParseChord(FormatChord(c))
		if err != nil {
			t.Fatalf("ParseChord(FormatChord(%q)) error: %v", seq, err)
		}
		if back != c {
			t.Fatalf("%q formatted as %q parses differently", seq, FormatChord(c))
		}
	}
}

func TestIgnoreCombinations(t *testing.T) {
	got := ignoreCombinations([]uint16{0x02, 0x10, 0x10, 0})
	slices.Sort(got)
	want := []uint16{0, 0x02, 0x10, 0x12}
	if !slices.Equal(got, want) {
		t.Fatalf("ignoreCombinations() = %v, want %v", got, want)
	}
}

func TestRegisterGrabsLockVariants(t *testing.T) {
	g := &fakeGrabber{locks: []uint16{0x02, 0x10}}
	km := wm.NewKeymap([]wm.Binding{
		{Chord: wm.Chord{Mods: 0x40, Keysym: xkTab}, Action: wm.Action{Kind: wm.ActionCycleForward}},
		{Chord: wm.Chord{Mods: 0x40, Keysym: xkTab}, Action: wm.Action{Kind: wm.ActionCycleBackward}},
	})

	if err := NewHandler(g, zerolog.Nop()).Register(km); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if len(g.grabs) != 4 {
		t.Fatalf("grabs = %v, want 4 lock variants of one chord", g.grabs)
	}
	for _, gr := range g.grabs {
		if gr.keysym != xkTab || gr.mods&0x40 == 0 {
			t.Fatalf("unexpected grab %+v", gr)
		}
	}
	if a, ok := km.Lookup(0x40|0x12, xkTab); !ok || a.Kind != wm.ActionCycleForward {
		t.Fatal("keymap does not ignore the lock masks after Register")
	}
}

func TestRegisterReportsFailures(t *testing.T) {
	g := &fakeGrabber{failOn: 'q'}
	km := wm.NewKeymap([]wm.Binding{
		{Chord: wm.Chord{Mods: 0x40, Keysym: 'q'}, Action: wm.Action{Kind: wm.ActionCloseWindow}},
		{Chord: wm.Chord{Mods: 0x40, Keysym: 't'}, Action: wm.Action{Kind: wm.ActionSpawn, Args: []string{"urxvt"}}},
	})

	err := NewHandler(g, zerolog.Nop()).Register(km)
	if err == nil {
		t.Fatal("Register() error = nil, want the failed grab")
	}
	if len(g.grabs) != 1 || g.grabs[0].keysym != 't' {
		t.Fatalf("grabs = %v, want the remaining binding grabbed", g.grabs)
	}
}

package hotkeys

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/exnwm/exn/internal/wm"
)

var modifierNames = map[string]uint16{
	"shift":   xproto.ModMaskShift,
	"lock":    xproto.ModMaskLock,
	"control": xproto.ModMaskControl,
	"ctrl":    xproto.ModMaskControl,
	"mod1":    xproto.ModMask1,
	"alt":     xproto.ModMask1,
	"mod2":    xproto.ModMask2,
	"mod3":    xproto.ModMask3,
	"mod4":    xproto.ModMask4,
	"super":   xproto.ModMask4,
	"mod5":    xproto.ModMask5,
}

// canonical modifier order for FormatChord.
var modifierOrder = []struct {
	mask uint16
	name string
}{
	{xproto.ModMask4, "Mod4"},
	{xproto.ModMask1, "Mod1"},
	{xproto.ModMaskControl, "Control"},
	{xproto.ModMaskShift, "Shift"},
	{xproto.ModMask2, "Mod2"},
	{xproto.ModMask3, "Mod3"},
	{xproto.ModMask5, "Mod5"},
	{xproto.ModMaskLock, "Lock"},
}

// ParseChord parses a key sequence such as "Mod4-Shift-Tab". Modifiers are
// case-insensitive; the final element is a key name.
func ParseChord(seq string) (wm.Chord, error) {
	parts := strings.Split(strings.TrimSpace(seq), "-")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return wm.Chord{}, fmt.Errorf("key sequence %q has no key", seq)
	}

	var mods uint16
	for _, p := range parts[:len(parts)-1] {
		mask, ok := modifierNames[strings.ToLower(p)]
		if !ok {
			return wm.Chord{}, fmt.Errorf("key sequence %q: unknown modifier %q", seq, p)
		}
		mods |= mask
	}

	key := parts[len(parts)-1]
	sym, ok := lookupKeysym(key)
	if !ok {
		return wm.Chord{}, fmt.Errorf("key sequence %q: unknown key %q", seq, key)
	}
	return wm.Chord{Mods: mods, Keysym: sym}, nil
}

// FormatChord renders c in the syntax ParseChord accepts.
func FormatChord(c wm.Chord) string {
	var b strings.Builder
	for _, m := range modifierOrder {
		if c.Mods&m.mask != 0 {
			b.WriteString(m.name)
			b.WriteByte('-')
		}
	}
	b.WriteString(keysymName(c.Keysym))
	return b.String()
}

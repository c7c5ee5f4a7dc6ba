package hotkeys

import "fmt"

// Keysym values from X11 keysymdef.h and XF86keysym.h. Only names usable as
// the unshifted symbol of a key are listed, since key presses are resolved
// from the first column of the keyboard map.
const (
	xkBackSpace = 0xff08
	xkTab       = 0xff09
	xkReturn    = 0xff0d
	xkPause     = 0xff13
	xkEscape    = 0xff1b
	xkHome      = 0xff50
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
	xkPageUp    = 0xff55
	xkPageDown  = 0xff56
	xkEnd       = 0xff57
	xkPrint     = 0xff61
	xkInsert    = 0xff63
	xkMenu      = 0xff67
	xkF1        = 0xffbe
	xkDelete    = 0xffff

	xkMonBrightnessUp   = 0x1008ff02
	xkMonBrightnessDown = 0x1008ff03
	xkAudioLowerVolume  = 0x1008ff11
	xkAudioMute         = 0x1008ff12
	xkAudioRaiseVolume  = 0x1008ff13
	xkAudioPlay         = 0x1008ff14
	xkAudioStop         = 0x1008ff15
	xkAudioPrev         = 0x1008ff16
	xkAudioNext         = 0x1008ff17
)

var namedKeysyms = map[string]uint32{
	"BackSpace": xkBackSpace,
	"Tab":       xkTab,
	"Return":    xkReturn,
	"Pause":     xkPause,
	"Escape":    xkEscape,
	"Home":      xkHome,
	"Left":      xkLeft,
	"Up":        xkUp,
	"Right":     xkRight,
	"Down":      xkDown,
	"Prior":     xkPageUp,
	"Page_Up":   xkPageUp,
	"Next":      xkPageDown,
	"Page_Down": xkPageDown,
	"End":       xkEnd,
	"Print":     xkPrint,
	"Insert":    xkInsert,
	"Menu":      xkMenu,
	"Delete":    xkDelete,

	"space":        ' ',
	"apostrophe":   '\'',
	"comma":        ',',
	"minus":        '-',
	"period":       '.',
	"slash":        '/',
	"semicolon":    ';',
	"equal":        '=',
	"bracketleft":  '[',
	"backslash":    '\\',
	"bracketright": ']',
	"grave":        '`',

	"XF86MonBrightnessUp":   xkMonBrightnessUp,
	"XF86MonBrightnessDown": xkMonBrightnessDown,
	"XF86AudioLowerVolume":  xkAudioLowerVolume,
	"XF86AudioMute":         xkAudioMute,
	"XF86AudioRaiseVolume":  xkAudioRaiseVolume,
	"XF86AudioPlay":         xkAudioPlay,
	"XF86AudioStop":         xkAudioStop,
	"XF86AudioPrev":         xkAudioPrev,
	"XF86AudioNext":         xkAudioNext,
}

func init() {
	for i := 0; i < 24; i++ {
		namedKeysyms[fmt.Sprintf("F%d", i+1)] = uint32(xkF1 + i)
	}
}

// lookupKeysym resolves a key name. Single letters and digits map to their
// lowercase Latin-1 keysym; anything else must be a known name.
func lookupKeysym(name string) (uint32, bool) {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return uint32(c), true
		case c >= 'A' && c <= 'Z':
			return uint32(c - 'A' + 'a'), true
		}
	}
	sym, ok := namedKeysyms[name]
	return sym, ok
}

// keysymName returns the canonical name for sym, for logs and error messages.
func keysymName(sym uint32) string {
	if (sym >= 'a' && sym <= 'z') || (sym >= '0' && sym <= '9') {
		return string(rune(sym))
	}
	best := ""
	for name, s := range namedKeysyms {
		// Prefer the shorter alias so Prior/Page_Up prints stably.
		if s == sym && (best == "" || len(name) < len(best) || (len(name) == len(best) && name < best)) {
			best = name
		}
	}
	if best == "" {
		return fmt.Sprintf("0x%x", sym)
	}
	return best
}

package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// KeysymFor translates a keycode using the unshifted column of the keyboard map.
func (c *Connection) KeysymFor(keycode xproto.Keycode) xproto.Keysym {
	return keybind.KeysymGet(c.XUtil, keycode, 0)
}

// KeycodesFor returns every keycode whose unshifted keysym is sym.
func (c *Connection) KeycodesFor(sym xproto.Keysym) []xproto.Keycode {
	setup := xproto.Setup(c.XUtil.Conn())
	var codes []xproto.Keycode
	for kc := int(setup.MinKeycode); kc <= int(setup.MaxKeycode); kc++ {
		if keybind.KeysymGet(c.XUtil, xproto.Keycode(kc), 0) == sym {
			codes = append(codes, xproto.Keycode(kc))
		}
	}
	return codes
}

// GrabKey grabs a key combination on the root window.
func (c *Connection) GrabKey(mods uint16, keycode xproto.Keycode) error {
	return xproto.GrabKeyChecked(
		c.XUtil.Conn(),
		true,
		c.Root,
		mods,
		keycode,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
	).Check()
}

// UngrabAllKeys releases every key grab held on the root window.
func (c *Connection) UngrabAllKeys() error {
	return xproto.UngrabKeyChecked(
		c.XUtil.Conn(),
		xproto.GrabAny,
		c.Root,
		xproto.ModMaskAny,
	).Check()
}

// LockMasks returns the modifier bits of CapsLock, NumLock and ScrollLock
// that are bound on this keyboard.
func (c *Connection) LockMasks() []uint16 {
	masks := []uint16{xproto.ModMaskLock}
	for _, name := range []string{"Num_Lock", "Scroll_Lock"} {
		mask := c.modMaskForKeysym(name)
		if mask == 0 {
			continue
		}
		dup := false
		for _, m := range masks {
			if m == mask {
				dup = true
				break
			}
		}
		if !dup {
			masks = append(masks, mask)
		}
	}
	return masks
}

func (c *Connection) modMaskForKeysym(keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(c.XUtil, keysym) {
		if mask := keybind.ModGet(c.XUtil, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

package hotkeys

import (
	"errors"
	"fmt"
	"slices"

	"github.com/exnwm/exn/internal/platform"
	"github.com/exnwm/exn/internal/wm"
	"github.com/rs/zerolog"
)

// Handler grabs the keys of a keymap on the display server.
type Handler struct {
	grabber platform.KeyGrabber
	log     zerolog.Logger
}

// NewHandler creates a hotkey handler.
func NewHandler(grabber platform.KeyGrabber, log zerolog.Logger) *Handler {
	return &Handler{grabber: grabber, log: log}
}

// Register grabs every binding once per combination of lock modifiers, so
// the server delivers the key whether CapsLock or NumLock is on. It keeps
// going after a failed grab and returns all failures joined.
func (h *Handler) Register(keymap *wm.Keymap) error {
	locks := h.grabber.LockMasks()
	keymap.SetLockMasks(locks...)
	variants := ignoreCombinations(locks)

	var errs []error
	seen := make(map[wm.Chord]bool)
	for _, b := range keymap.Bindings() {
		if seen[b.Chord] {
			h.log.Warn().Str("keys", FormatChord(b.Chord)).Msg("duplicate key binding ignored")
			continue
		}
		seen[b.Chord] = true

		if err := h.grab(b.Chord, variants); err != nil {
			errs = append(errs, err)
			h.log.Warn().Err(err).Msg("failed to grab key")
			continue
		}
		h.log.Debug().Str("keys", FormatChord(b.Chord)).Stringer("action", b.Action).Msg("registered hotkey")
	}
	return errors.Join(errs...)
}

func (h *Handler) grab(c wm.Chord, variants []uint16) error {
	for _, extra := range variants {
		if err := h.grabber.GrabKey(c.Mods|extra, c.Keysym); err != nil {
			return fmt.Errorf("grab %s: %w", FormatChord(c), err)
		}
	}
	return nil
}

// ignoreCombinations returns every OR-combination of the lock masks,
// including none.
func ignoreCombinations(locks []uint16) []uint16 {
	var base []uint16
	for _, m := range locks {
		if m != 0 && !slices.Contains(base, m) {
			base = append(base, m)
		}
	}

	out := []uint16{0}
	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		out = append(out, mask)
	}
	return out
}

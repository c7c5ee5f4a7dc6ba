package wm

import "slices"

// keyMods keeps the Shift, Lock, Control and Mod1-Mod5 bits of a key event
// state and drops the pointer button bits.
const keyMods uint16 = 0x00ff

// Chord is a modifier mask and keysym pair.
type Chord struct {
	Mods   uint16
	Keysym uint32
}

// Binding maps a chord to an action.
type Binding struct {
	Chord  Chord
	Action Action
}

// Keymap resolves key presses to actions. Lock modifiers (CapsLock, NumLock,
// ScrollLock) are stripped from both sides before comparing, so bindings
// fire regardless of lock state.
type Keymap struct {
	bindings []Binding
	ignore   uint16
}

// NewKeymap builds a keymap. The first binding for a chord wins.
func NewKeymap(bindings []Binding, lockMasks ...uint16) *Keymap {
	k := &Keymap{bindings: slices.Clone(bindings)}
	k.SetLockMasks(lockMasks...)
	return k
}

// SetLockMasks replaces the set of modifier bits ignored when matching.
func (k *Keymap) SetLockMasks(masks ...uint16) {
	k.ignore = 0
	for _, m := range masks {
		k.ignore |= m
	}
}

// Bindings returns the bindings in lookup order.
func (k *Keymap) Bindings() []Binding {
	return slices.Clone(k.bindings)
}

func (k *Keymap) clean(mods uint16) uint16 {
	return mods &^ k.ignore & keyMods
}

// Lookup returns the action bound to the pressed chord.
func (k *Keymap) Lookup(mods uint16, keysym uint32) (Action, bool) {
	mods = k.clean(mods)
	for _, b := range k.bindings {
		if b.Chord.Keysym == keysym && k.clean(b.Chord.Mods) == mods {
			return b.Action, true
		}
	}
	return Action{}, false
}

// Package input translates the terminal event stream into the per-tick
// held-key snapshots the simulation consumes.
package input

import "github.com/gdamore/tcell/v2"

// Key identifies a logical key independent of the event that carried it.
// Printable keys carry tcell.KeyRune plus the rune; special keys carry the
// tcell key code alone. Comparable, so it works as a map key.
type Key struct {
	code tcell.Key
	r    rune
}

// KeyRune builds the Key for a printable character.
func KeyRune(r rune) Key {
	return Key{code: tcell.KeyRune, r: r}
}

// KeyCode builds the Key for a special key (arrows, control keys).
func KeyCode(code tcell.Key) Key {
	return Key{code: code}
}

// KeyFromEvent normalizes a tcell key event to its logical Key.
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return KeyRune(ev.Rune())
	}
	return KeyCode(ev.Key())
}

// Bindings are the keys the simulation reacts to.
type Bindings struct {
	P1Up, P1Down Key
	P2Up, P2Down Key
	Reset        Key
}

// DefaultBindings returns w/s for the left paddle, the arrow keys for the
// right one, and r for the manual reset.
func DefaultBindings() Bindings {
	return Bindings{
		P1Up:   KeyRune('w'),
		P1Down: KeyRune('s'),
		P2Up:   KeyCode(tcell.KeyUp),
		P2Down: KeyCode(tcell.KeyDown),
		Reset:  KeyRune('r'),
	}
}

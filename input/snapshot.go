package input

import "github.com/gdamore/tcell/v2"

// Snapshot is the set of keys held during one tick, with the modifier state
// of each key's latest event. A snapshot is owned by the caller for the
// duration of a single update call; the collector never retains it.
type Snapshot map[Key]tcell.ModMask

// Held reports whether the key is currently down. Level-triggered: a key
// held across ticks appears in every snapshot.
func (s Snapshot) Held(k Key) bool {
	_, ok := s[k]
	return ok
}

// Mod returns the modifier mask of the key's latest event, or zero when the
// key is not held. The simulation ignores modifiers; they are carried for
// the driver.
func (s Snapshot) Mod(k Key) tcell.ModMask {
	return s[k]
}

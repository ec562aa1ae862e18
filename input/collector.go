package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/constant"
)

// Collector turns the blocking tcell event stream into per-tick held-key
// snapshots. Events are pumped on a dedicated goroutine; everything else
// runs on the single driver thread, so no locking is needed.
//
// Terminals deliver key autorepeat rather than press/release pairs. A key
// therefore counts as held until the hold window elapses after its last
// event, which reproduces drain-the-queue polling while tolerating the
// initial autorepeat delay.
type Collector struct {
	events chan tcell.Event

	held   map[Key]heldKey
	now    func() time.Time
	window time.Duration

	quitRequested bool
	resized       bool
}

type heldKey struct {
	mod  tcell.ModMask
	last time.Time
}

// NewCollector starts draining events from the screen.
func NewCollector(screen tcell.Screen) *Collector {
	c := newCollector()
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized, stop pumping
				return
			}
			c.events <- ev
		}
	}()
	return c
}

func newCollector() *Collector {
	return &Collector{
		events: make(chan tcell.Event, 64),
		held:   make(map[Key]heldKey),
		now:    time.Now,
		window: constant.KeyHoldWindow,
	}
}

// Snapshot drains pending events and returns the currently-held key set.
// The snapshot is valid for one tick only; a fresh one must be taken each
// tick.
func (c *Collector) Snapshot() Snapshot {
	now := c.now()

drain:
	for {
		select {
		case ev := <-c.events:
			c.absorb(ev, now)
		default:
			break drain
		}
	}

	snap := make(Snapshot, len(c.held))
	for k, h := range c.held {
		if now.Sub(h.last) > c.window {
			delete(c.held, k)
			continue
		}
		snap[k] = h.mod
	}
	return snap
}

func (c *Collector) absorb(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			c.quitRequested = true
		}
		c.held[KeyFromEvent(ev)] = heldKey{mod: ev.Modifiers(), last: now}
	case *tcell.EventResize:
		c.resized = true
	}
}

// QuitRequested reports whether Ctrl+C has been seen. Latches; the driver
// is expected to exit once it observes it.
func (c *Collector) QuitRequested() bool {
	return c.quitRequested
}

// TakeResize reports and clears a pending terminal resize.
func (c *Collector) TakeResize() bool {
	r := c.resized
	c.resized = false
	return r
}

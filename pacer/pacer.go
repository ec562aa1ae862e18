// Package pacer provides the fixed-rate tick source driving the game loop.
// It is the only place the process blocks.
package pacer

import "time"

// Pacer delivers one tick per fixed time slice and reports the measured
// wall-clock duration between ticks. The simulation takes the measured dt,
// not the nominal one, so a late frame integrates the time it actually
// covered.
type Pacer struct {
	ticker *time.Ticker
	last   time.Time
	frame  uint64
}

// New creates a pacer firing fps times per second.
func New(fps int) *Pacer {
	return &Pacer{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		last:   time.Now(),
	}
}

// Wait blocks until the next tick and returns the elapsed duration since
// the previous one along with the frame index, counting from zero.
func (p *Pacer) Wait() (dt time.Duration, frame uint64) {
	t := <-p.ticker.C
	dt = t.Sub(p.last)
	p.last = t
	frame = p.frame
	p.frame++
	return dt, frame
}

// Stop releases the ticker. Wait must not be called afterwards.
func (p *Pacer) Stop() {
	p.ticker.Stop()
}

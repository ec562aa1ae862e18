// Package render draws engine snapshots to the terminal. It owns no game
// state; everything it paints comes from the snapshot of the current tick.
package render

import "github.com/lixenwraith/term-pong/engine"

// Renderer draws one frame per tick. A failed frame is reported to the
// caller but must leave the simulation untouched.
type Renderer interface {
	RenderFrame(snap engine.Snapshot) error
}

// Package engine holds the fixed-step pong simulation: two paddles, a ball,
// scores, and the per-tick update that advances them. It mutates state in
// place on a single thread and never blocks.
package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/term-pong/constant"
	"github.com/lixenwraith/term-pong/core"
	"github.com/lixenwraith/term-pong/input"
)

// Paddle is a single-column vertical segment controlled by two keys. The
// velocity is fixed at construction; held keys only pick the sign of the
// displacement.
type Paddle struct {
	extendUp   int
	extendDown int
	keyUp      input.Key
	keyDown    input.Key
	position   core.Position
	velocity   core.Velocity
}

// NewPaddle creates a paddle with the standard fixed velocity.
func NewPaddle(extendUp, extendDown int, keyUp, keyDown input.Key, pos core.Position) *Paddle {
	return &Paddle{
		extendUp:   extendUp,
		extendDown: extendDown,
		keyUp:      keyUp,
		keyDown:    keyDown,
		position:   pos,
		velocity:   core.Velocity{VX: 0, VY: constant.PaddleSpeed},
	}
}

// Position returns the paddle center.
func (p *Paddle) Position() core.Position {
	return p.position
}

// UpdatePosition displaces the paddle by its held keys and clamps y into
// [extendDown, maxHeight-extendUp]. Holding both keys cancels out. The full
// velocity vector is applied, not just y; vx is zero in practice but the
// axis coupling is intentional.
func (p *Paddle) UpdatePosition(maxHeight float64, held input.Snapshot, dt time.Duration) {
	step := dt.Seconds()
	if held.Held(p.keyUp) {
		p.position = p.position.Add(p.velocity, step)
	}
	if held.Held(p.keyDown) {
		p.position = p.position.Add(p.velocity, -step)
	}

	p.position.Y = math.Min(p.position.Y, maxHeight-float64(p.extendUp))
	p.position.Y = math.Max(p.position.Y, float64(p.extendDown))
}

// CollidesWith reports whether the grid cell of pos lies on the paddle's
// column within its vertical reach. The paddle occupies a single column of
// extendDown+extendUp+1 cells.
func (p *Paddle) CollidesWith(pos core.Position) bool {
	cell := pos.ToDiscrete()
	own := p.position.ToDiscrete()
	return cell.X == own.X &&
		cell.Y >= own.Y-p.extendDown &&
		cell.Y <= own.Y+p.extendUp
}

// Cells returns the discrete cells the paddle occupies, bottom to top.
func (p *Paddle) Cells() []core.DiscretePosition {
	own := p.position.ToDiscrete()
	cells := make([]core.DiscretePosition, 0, p.extendDown+p.extendUp+1)
	for y := own.Y - p.extendDown; y <= own.Y+p.extendUp; y++ {
		cells = append(cells, core.DiscretePosition{X: own.X, Y: y})
	}
	return cells
}

func (p *Paddle) setPosition(pos core.Position) {
	p.position = pos
}

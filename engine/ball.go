package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/term-pong/constant"
	"github.com/lixenwraith/term-pong/core"
)

// Ball owns the ball's continuous position and mutable velocity. Bounces
// flip a velocity sign; the magnitude only ever grows.
type Ball struct {
	position core.Position
	velocity core.Velocity
}

// NewBall creates a ball at pos with a random serve velocity drawn from rng.
func NewBall(pos core.Position, rng *rand.Rand) *Ball {
	return &Ball{
		position: pos,
		velocity: RandomServeVelocity(rng),
	}
}

// Position returns the ball's continuous position.
func (b *Ball) Position() core.Position {
	return b.position
}

// Velocity returns the ball's current velocity.
func (b *Ball) Velocity() core.Velocity {
	return b.velocity
}

// UpdatePosition advances the ball one tick, in this order: wall check
// against the predicted next position, paddle check toward whichever paddle
// the ball travels to, position integration with the possibly flipped
// velocity, then speed escalation. Returns which bounces occurred.
func (b *Ball) UpdatePosition(maxHeight float64, paddle1, paddle2 *Paddle, dt time.Duration) (wall, paddle bool) {
	wall = b.bounceOffWalls(maxHeight, dt)

	// The sign of vx picks the only reachable paddle. vx == 0 reaches
	// neither and would make the ray-cast divide by zero, so it skips.
	if b.velocity.VX < 0 {
		paddle = b.bounceOffLeftPaddle(paddle1, dt)
	} else if b.velocity.VX > 0 {
		paddle = b.bounceOffRightPaddle(paddle2, dt)
	}

	b.position = b.nextPosition(dt)
	b.velocity.VX *= constant.SpeedEscalation
	b.velocity.VY *= constant.SpeedEscalation
	return wall, paddle
}

func (b *Ball) bounceOffWalls(maxHeight float64, dt time.Duration) bool {
	next := b.nextPosition(dt)
	if next.Y <= 0 || next.Y >= maxHeight {
		b.velocity.VY = -b.velocity.VY
		return true
	}
	return false
}

func (b *Ball) bounceOffLeftPaddle(paddle *Paddle, dt time.Duration) bool {
	hit := b.collisionPointWith(paddle)
	next := b.nextPosition(dt)
	if hit.X >= next.X && paddle.CollidesWith(hit) {
		b.velocity.VX = -b.velocity.VX
		return true
	}
	return false
}

func (b *Ball) bounceOffRightPaddle(paddle *Paddle, dt time.Duration) bool {
	hit := b.collisionPointWith(paddle)
	next := b.nextPosition(dt)
	if hit.X <= next.X && paddle.CollidesWith(hit) {
		b.velocity.VX = -b.velocity.VX
		return true
	}
	return false
}

// collisionPointWith extends the ball's path to the paddle's column and
// returns the continuous crossing point. As speed escalates the ball covers
// several cells per tick; testing the crossing point instead of the
// end-of-step cell keeps a fast ball from tunneling through the paddle.
func (b *Ball) collisionPointWith(paddle *Paddle) core.Position {
	r := (paddle.Position().X - b.position.X) / b.velocity.VX
	return b.position.Add(b.velocity, r)
}

func (b *Ball) nextPosition(dt time.Duration) core.Position {
	return b.position.Add(b.velocity, dt.Seconds())
}

func (b *Ball) setPosition(pos core.Position) {
	b.position = pos
}

func (b *Ball) setVelocity(v core.Velocity) {
	b.velocity = v
}

// RandomServeVelocity draws a serve velocity: horizontal magnitude uniform
// in [10,20) with a coin-flip sign so the ball always has significant
// horizontal motion, vertical uniform in [-6,6).
func RandomServeVelocity(rng *rand.Rand) core.Velocity {
	vx := constant.ServeSpeedXMin + rng.Float64()*(constant.ServeSpeedXMax-constant.ServeSpeedXMin)
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	vy := -constant.ServeSpeedYMax + rng.Float64()*(2*constant.ServeSpeedYMax)
	return core.Velocity{VX: vx, VY: vy}
}

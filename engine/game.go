package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/term-pong/core"
	"github.com/lixenwraith/term-pong/input"
)

// TickEvents reports what one Update call did. Collaborators (audio, the
// driver) react to it without reaching into simulation state.
type TickEvents struct {
	WallBounce   bool
	PaddleBounce bool

	// Scorer is 0 for no goal, 1 for the left player, 2 for the right
	Scorer int

	// Reset is set on both goals and manual resets
	Reset bool
}

// GameState owns the field, both paddles, the ball, and the scores. It is
// constructed once; paddles and ball are reset in place and keep their
// identity for the process lifetime.
type GameState struct {
	width  int
	height int

	score1 int
	score2 int

	paddle1 *Paddle
	paddle2 *Paddle
	ball    *Ball

	keyReset input.Key
	rng      *rand.Rand
}

// NewGameState builds the initial layout: paddles centered on the left and
// right edges, ball in the middle with a random serve. A nil rng gets a
// time-seeded one; tests inject a fixed source for determinism.
func NewGameState(width, height, extendUp, extendDown int, binds input.Bindings, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &GameState{
		width:    width,
		height:   height,
		keyReset: binds.Reset,
		rng:      rng,
	}
	g.paddle1 = NewPaddle(extendUp, extendDown, binds.P1Up, binds.P1Down, g.initialPaddle1Position())
	g.paddle2 = NewPaddle(extendUp, extendDown, binds.P2Up, binds.P2Down, g.initialPaddle2Position())
	g.ball = NewBall(g.initialBallPosition(), rng)
	return g
}

// Update advances the simulation by one tick covering dt. Order: manual
// reset short-circuits everything; otherwise paddle1, paddle2, then the
// ball against the post-movement paddles, then the score check.
func (g *GameState) Update(held input.Snapshot, dt time.Duration) TickEvents {
	if held.Held(g.keyReset) {
		g.resetBallAndPaddles()
		return TickEvents{Reset: true}
	}

	maxHeight := float64(g.height)
	g.paddle1.UpdatePosition(maxHeight, held, dt)
	g.paddle2.UpdatePosition(maxHeight, held, dt)

	wall, paddle := g.ball.UpdatePosition(maxHeight, g.paddle1, g.paddle2, dt)

	ev := TickEvents{WallBounce: wall, PaddleBounce: paddle}
	g.applyScore(&ev)
	return ev
}

// Reset restores the initial layout with a fresh serve, leaving the scores
// untouched.
func (g *GameState) Reset() {
	g.resetBallAndPaddles()
}

// Scores returns the left and right player scores.
func (g *GameState) Scores() (int, int) {
	return g.score1, g.score2
}

func (g *GameState) applyScore(ev *TickEvents) {
	v := g.ball.Velocity()
	pos := g.ball.Position()

	switch {
	case v.VX <= 0 && pos.X < g.paddle1.Position().X:
		g.score2++
		ev.Scorer = 2
	case v.VX > 0 && pos.X > g.paddle2.Position().X:
		g.score1++
		ev.Scorer = 1
	default:
		return
	}

	ev.Reset = true
	g.resetBallAndPaddles()
}

func (g *GameState) resetBallAndPaddles() {
	g.paddle1.setPosition(g.initialPaddle1Position())
	g.paddle2.setPosition(g.initialPaddle2Position())
	g.ball.setPosition(g.initialBallPosition())
	g.ball.setVelocity(RandomServeVelocity(g.rng))
}

func (g *GameState) initialPaddle1Position() core.Position {
	return core.Position{X: 0, Y: float64(g.height) / 2}
}

func (g *GameState) initialPaddle2Position() core.Position {
	return core.Position{X: float64(g.width), Y: float64(g.height) / 2}
}

func (g *GameState) initialBallPosition() core.Position {
	return core.Position{X: float64(g.width) / 2, Y: float64(g.height) / 2}
}

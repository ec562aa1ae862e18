package engine

import "github.com/lixenwraith/term-pong/core"

// Snapshot is the read-only render view of one tick: field geometry, scores,
// and the discrete cells everything occupies. It shares nothing with the
// live state, so a renderer can hold it across the next update.
type Snapshot struct {
	Width  int
	Height int

	Score1 int
	Score2 int

	Paddle1Cells []core.DiscretePosition
	Paddle2Cells []core.DiscretePosition
	BallCell     core.DiscretePosition
}

// Snapshot captures the current state for rendering.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Width:        g.width,
		Height:       g.height,
		Score1:       g.score1,
		Score2:       g.score2,
		Paddle1Cells: g.paddle1.Cells(),
		Paddle2Cells: g.paddle2.Cells(),
		BallCell:     g.ball.Position().ToDiscrete(),
	}
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/constant"
	"github.com/lixenwraith/term-pong/engine"
)

// Screen layout rows. World y points up, so field rows are flipped at draw
// time: world y maps to screen row fieldTopRow + (height - y).
const (
	scoreRow   = 0
	topWallRow = 2
	// first field row (world y == height) sits directly under the top wall
	fieldTopRow = topWallRow + 1
)

var (
	styleDefault = tcell.StyleDefault
	stylePaddle1 = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePaddle2 = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleBall    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// TerminalRenderer draws the field to a tcell screen: score line on top,
// the field framed by full-width wall rows, paddles and ball inside.
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer wraps an initialized screen.
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws one snapshot. tcell buffers internally; the frame hits
// the terminal on Show.
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) error {
	r.screen.Clear()
	r.screen.HideCursor()

	r.drawScoreLine(snap)
	r.drawWalls(snap)
	r.drawPaddles(snap)
	r.drawBall(snap)

	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) drawScoreLine(snap engine.Snapshot) {
	line := fmt.Sprintf("Player 1: %d   Player 2: %d", snap.Score1, snap.Score2)
	for i, ch := range line {
		r.screen.SetContent(i, scoreRow, ch, nil, styleDefault)
	}
}

func (r *TerminalRenderer) drawWalls(snap engine.Snapshot) {
	bottomWallRow := fieldTopRow + snap.Height + 1
	for x := 0; x <= snap.Width; x++ {
		r.screen.SetContent(x, topWallRow, constant.BlockChar, nil, styleDefault)
		r.screen.SetContent(x, bottomWallRow, constant.BlockChar, nil, styleDefault)
	}
}

func (r *TerminalRenderer) drawPaddles(snap engine.Snapshot) {
	for _, cell := range snap.Paddle1Cells {
		r.drawCell(snap, cell.X, cell.Y, constant.BlockChar, stylePaddle1)
	}
	for _, cell := range snap.Paddle2Cells {
		r.drawCell(snap, cell.X, cell.Y, constant.BlockChar, stylePaddle2)
	}
}

func (r *TerminalRenderer) drawBall(snap engine.Snapshot) {
	r.drawCell(snap, snap.BallCell.X, snap.BallCell.Y, constant.BallChar, styleBall)
}

// drawCell paints one field cell, dropping anything outside the field. The
// ball can sit outside for the tick a goal is detected on.
func (r *TerminalRenderer) drawCell(snap engine.Snapshot, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x > snap.Width || y < 0 || y > snap.Height {
		return
	}
	r.screen.SetContent(x, fieldTopRow+(snap.Height-y), ch, nil, style)
}

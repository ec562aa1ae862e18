package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/term-pong/core"
	"github.com/lixenwraith/term-pong/input"
)

const testDt = 100 * time.Millisecond

func newTestPaddle(x, y float64) *Paddle {
	binds := input.DefaultBindings()
	return NewPaddle(1, 1, binds.P1Up, binds.P1Down, core.Position{X: x, Y: y})
}

// TestPaddleMovesWithHeldKeys verifies held keys displace by velocity*dt
func TestPaddleMovesWithHeldKeys(t *testing.T) {
	binds := input.DefaultBindings()
	p := newTestPaddle(0, 9)

	p.UpdatePosition(18, input.Snapshot{binds.P1Up: 0}, testDt)
	if got := p.Position().Y; math.Abs(got-10.2) > 1e-9 {
		t.Errorf("Expected y 10.2 after one up tick, got %v", got)
	}

	p.UpdatePosition(18, input.Snapshot{binds.P1Down: 0}, testDt)
	if got := p.Position().Y; math.Abs(got-9) > 1e-9 {
		t.Errorf("Expected y back at 9 after one down tick, got %v", got)
	}
}

// TestPaddleBothKeysCancel verifies up and down held together cancel out
func TestPaddleBothKeysCancel(t *testing.T) {
	binds := input.DefaultBindings()
	p := newTestPaddle(0, 9)

	held := input.Snapshot{binds.P1Up: 0, binds.P1Down: 0}
	p.UpdatePosition(18, held, testDt)

	if got := p.Position().Y; got != 9 {
		t.Errorf("Expected y unchanged at 9, got %v", got)
	}
}

// TestPaddleIgnoresOtherPaddleKeys verifies a paddle only reacts to its own keys
func TestPaddleIgnoresOtherPaddleKeys(t *testing.T) {
	binds := input.DefaultBindings()
	p := newTestPaddle(0, 9)

	p.UpdatePosition(18, input.Snapshot{binds.P2Up: 0, binds.Reset: 0}, testDt)
	if got := p.Position().Y; got != 9 {
		t.Errorf("Expected y unchanged at 9, got %v", got)
	}
}

// TestPaddleClampsToField verifies y never leaves [extendDown, height-extendUp]
// no matter how long a key is held
func TestPaddleClampsToField(t *testing.T) {
	binds := input.DefaultBindings()
	p := newTestPaddle(0, 9)

	up := input.Snapshot{binds.P1Up: 0}
	for i := 0; i < 100; i++ {
		p.UpdatePosition(18, up, testDt)
		if y := p.Position().Y; y < 1 || y > 17 {
			t.Fatalf("Tick %d: y %v escaped [1,17]", i, y)
		}
	}
	if got := p.Position().Y; got != 17 {
		t.Errorf("Expected y pinned at 17, got %v", got)
	}

	down := input.Snapshot{binds.P1Down: 0}
	for i := 0; i < 100; i++ {
		p.UpdatePosition(18, down, testDt)
	}
	if got := p.Position().Y; got != 1 {
		t.Errorf("Expected y pinned at 1, got %v", got)
	}
}

// TestPaddleCollidesWithColumn verifies the single-column discrete hit test
func TestPaddleCollidesWithColumn(t *testing.T) {
	p := newTestPaddle(0, 9)

	hits := []core.Position{
		{X: 0, Y: 8},
		{X: 0, Y: 9},
		{X: 0, Y: 10},
		{X: 0.4, Y: 9.4},   // rounds onto the paddle
		{X: -0.3, Y: 10.2}, // rounds onto the top cell
	}
	for _, pos := range hits {
		if !p.CollidesWith(pos) {
			t.Errorf("Expected collision at %v", pos)
		}
	}

	misses := []core.Position{
		{X: 0, Y: 7},
		{X: 0, Y: 11},
		{X: 1, Y: 9},
		{X: 0.6, Y: 9}, // rounds off the column
	}
	for _, pos := range misses {
		if p.CollidesWith(pos) {
			t.Errorf("Expected no collision at %v", pos)
		}
	}
}

// TestPaddleCells verifies the occupied cells span reach down to reach up
func TestPaddleCells(t *testing.T) {
	p := newTestPaddle(0, 9)

	cells := p.Cells()
	want := []core.DiscretePosition{{X: 0, Y: 8}, {X: 0, Y: 9}, {X: 0, Y: 10}}
	if len(cells) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(cells))
	}
	for i, cell := range cells {
		if cell != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], cell)
		}
	}
}

package audio

import "testing"

// TestSilentEngineIsNoOp verifies every cue is safe without a speaker; CI
// has no audio device, so only the silent path is exercised here
func TestSilentEngineIsNoOp(t *testing.T) {
	e := Silent()

	e.WallBounce()
	e.PaddleBounce()
	e.Goal()
	e.Close()
}

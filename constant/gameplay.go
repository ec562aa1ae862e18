package constant

import "time"

// Field geometry defaults, overridable from the command line
const (
	DefaultFieldWidth  = 60
	DefaultFieldHeight = 18

	// DefaultExtendUp / DefaultExtendDown are the paddle reach above and
	// below its center, in cells
	DefaultExtendUp   = 1
	DefaultExtendDown = 1
)

// Simulation tuning
const (
	// PaddleSpeed is the fixed paddle speed in cells per second. Held keys
	// only choose the sign of motion; the magnitude never changes.
	PaddleSpeed = 12.0

	// SpeedEscalation multiplies both ball velocity components every tick,
	// bounce or not. Unbounded growth is the difficulty ramp.
	SpeedEscalation = 1.003

	// Serve velocity ranges: horizontal magnitude uniform in
	// [ServeSpeedXMin, ServeSpeedXMax) with a coin-flip sign, vertical
	// uniform in [-ServeSpeedYMax, ServeSpeedYMax)
	ServeSpeedXMin = 10.0
	ServeSpeedXMax = 20.0
	ServeSpeedYMax = 6.0
)

// Loop timing
const (
	// DefaultFPS is the simulation and render tick rate
	DefaultFPS = 10

	// KeyHoldWindow is how long after its last terminal event a key still
	// counts as held. Terminals report autorepeat, not key release, so the
	// window must cover the repeat delay at the default tick rate.
	KeyHoldWindow = 200 * time.Millisecond
)

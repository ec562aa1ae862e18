// Package core provides the continuous and discrete coordinate types shared
// by the simulation and its collaborators. It has no dependencies so the
// geometry stays trivially testable.
package core

import "math"

// Position is a continuous point in field coordinates. The origin is the
// bottom-left corner of the field; x grows to the right, y grows upward.
type Position struct {
	X, Y float64
}

// Velocity is a displacement rate in field cells per second.
type Velocity struct {
	VX, VY float64
}

// DiscretePosition is a grid cell. It exists only for collision tests and
// rendering; the simulation itself stays continuous.
type DiscretePosition struct {
	X, Y int
}

// ToDiscrete rounds to the nearest grid cell. The round trip through
// ToContinuous is lossy, which is fine for its only uses.
func (p Position) ToDiscrete() DiscretePosition {
	return DiscretePosition{
		X: int(math.Round(p.X)),
		Y: int(math.Round(p.Y)),
	}
}

// Add returns the position displaced by v over dt seconds.
func (p Position) Add(v Velocity, dt float64) Position {
	return Position{
		X: p.X + v.VX*dt,
		Y: p.Y + v.VY*dt,
	}
}

// ToContinuous places the position at the cell's exact coordinates.
func (d DiscretePosition) ToContinuous() Position {
	return Position{
		X: float64(d.X),
		Y: float64(d.Y),
	}
}

package core

import "testing"

// TestToDiscreteRoundsToNearest verifies rounding to the nearest grid cell
func TestToDiscreteRoundsToNearest(t *testing.T) {
	cases := []struct {
		pos  Position
		want DiscretePosition
	}{
		{Position{X: 0, Y: 0}, DiscretePosition{X: 0, Y: 0}},
		{Position{X: 0.4, Y: 0.4}, DiscretePosition{X: 0, Y: 0}},
		{Position{X: 0.5, Y: 0.5}, DiscretePosition{X: 1, Y: 1}},
		{Position{X: 2.6, Y: 17.5}, DiscretePosition{X: 3, Y: 18}},
		{Position{X: 29.49, Y: 9.51}, DiscretePosition{X: 29, Y: 10}},
	}

	for _, c := range cases {
		got := c.pos.ToDiscrete()
		if got != c.want {
			t.Errorf("ToDiscrete(%v): expected %v, got %v", c.pos, c.want, got)
		}
	}
}

// TestRoundTripIsLossy verifies continuous→discrete→continuous snaps to the
// cell, losing the fraction
func TestRoundTripIsLossy(t *testing.T) {
	p := Position{X: 1.4, Y: 2.7}
	back := p.ToDiscrete().ToContinuous()

	if back.X != 1 || back.Y != 3 {
		t.Errorf("Expected round trip to land on (1,3), got (%v,%v)", back.X, back.Y)
	}
}

// TestAddDisplacesByVelocity verifies the v*dt displacement on both axes
func TestAddDisplacesByVelocity(t *testing.T) {
	p := Position{X: 10, Y: 5}
	v := Velocity{VX: 30, VY: -12}

	got := p.Add(v, 0.1)
	if got.X != 13 || got.Y != 3.8 {
		t.Errorf("Expected (13,3.8), got (%v,%v)", got.X, got.Y)
	}

	// Negative dt moves backwards along the path
	back := got.Add(v, -0.1)
	if back.X != 10 {
		t.Errorf("Expected X back at 10, got %v", back.X)
	}
}

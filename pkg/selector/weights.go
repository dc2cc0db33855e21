// Package selector maps a knob inside a fixed triangle to the three rule weights.
// Each corner stands for one rule; the closer the knob is to a corner, the
// heavier that rule weighs.
package selector

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock/pkg/geometry"
)

const (
	// slope of the two slanted edges (tan 60°)
	slope = 1.73205161514
	// distance from a corner at which its weight drops to 1
	scale = 67.37
)

// Corners and start position of the knob, in selector-local pixels.
var (
	Separation = geometry.Vector2D{X: 22.265, Y: 25}
	Alignment  = geometry.Vector2D{X: 137.735, Y: 25}
	Cohesion   = geometry.Vector2D{X: 80, Y: 125}
	Center     = geometry.Vector2D{X: 80, Y: 58.33}
)

// Weights are the separation, alignment and cohesion weights for a knob position.
type Weights struct {
	Separation float64
	Alignment  float64
	Cohesion   float64
}

func (w Weights) String() string {
	return fmt.Sprintf("sep %.2f ali %.2f coh %.2f", w.Separation, w.Alignment, w.Cohesion)
}

// Update turns the weights into the parameter update sent to the world.
func (w Weights) Update() flock.ParamUpdate {
	return flock.WeightsUpdate(w.Separation, w.Alignment, w.Cohesion)
}

// WeightsAt computes the weights for a knob at p: 2 - dist(p, corner)/67.37 each.
func WeightsAt(p geometry.Vector2D) Weights {
	return Weights{
		Separation: 2 - p.DistanceTo(Separation)/scale,
		Alignment:  2 - p.DistanceTo(Alignment)/scale,
		Cohesion:   2 - p.DistanceTo(Cohesion)/scale,
	}
}

// Selector holds the knob position. The zero value is not usable, call New.
type Selector struct {
	knob geometry.Vector2D
}

func New() *Selector {
	return &Selector{knob: Center}
}

// Knob returns the current knob position.
func (s *Selector) Knob() geometry.Vector2D {
	return s.knob
}

// Weights returns the weights for the current knob position.
func (s *Selector) Weights() Weights {
	return WeightsAt(s.knob)
}

// Reset puts the knob back at its start position.
func (s *Selector) Reset() {
	s.knob = Center
}

// Move tries to bring the knob to (x, y). Each axis is accepted on its own,
// and only when the target point lies strictly inside the triangle for that
// axis, so dragging along an edge slides the knob instead of blocking it.
// It returns the weights for the resulting position.
func (s *Selector) Move(x, y float64) Weights {
	if x > Separation.X && x < Alignment.X {
		if (x-Separation.X) > (y-Separation.Y)/slope && (x-Alignment.X) < (y-Alignment.Y)/-slope {
			s.knob.X = x
		}
	}
	if y > Separation.Y && y < Cohesion.Y {
		if (y-Separation.Y) < (x-Separation.X)*slope && (y-Alignment.Y) < (x-Alignment.X)*-slope {
			s.knob.Y = y
		}
	}
	return s.Weights()
}

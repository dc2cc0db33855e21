package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock/pkg/geometry"
)

const (
	DefaultPopulation   = 70
	DefaultPredatorLife = 30
	DefaultWidth        = 1000.0
	DefaultHeight       = 700.0
	DefaultBuffer       = 20.0
)

// Params are the tunables read by every tick.
// ViewAngle is the width of the cone that is NOT excluded: the blind zone
// behind a boid is Pi - ViewAngle/2 wide on each side of its tail.
type Params struct {
	SeparationWeight   float64
	AlignmentWeight    float64
	CohesionWeight     float64
	Inertia            float64 // share of the steering added to the velocity, [0, 1]
	Speed              float64 // velocity magnitude after each tick
	NeighborhoodRadius float64
	ViewAngle          float64 // radians
}

// DefaultParams returns the values the world starts with and restores on Reset.
func DefaultParams() Params {
	return Params{
		SeparationWeight:   1,
		AlignmentWeight:    1,
		CohesionWeight:     1,
		Inertia:            0.5,
		Speed:              4.0,
		NeighborhoodRadius: 100,
		ViewAngle:          5 * math.Pi / 3,
	}
}

// ParamUpdate names a subset of Params to overwrite; nil fields are left alone.
type ParamUpdate struct {
	SeparationWeight   *float64
	AlignmentWeight    *float64
	CohesionWeight     *float64
	Inertia            *float64
	Speed              *float64
	NeighborhoodRadius *float64
	ViewAngle          *float64
}

// Float returns a pointer to v, handy to fill a ParamUpdate literal.
func Float(v float64) *float64 {
	return &v
}

// WeightsUpdate is the update produced by the weight selector.
func WeightsUpdate(separation, alignment, cohesion float64) ParamUpdate {
	return ParamUpdate{
		SeparationWeight: Float(separation),
		AlignmentWeight:  Float(alignment),
		CohesionWeight:   Float(cohesion),
	}
}

// IsEmpty reports whether the update names no field at all.
func (u ParamUpdate) IsEmpty() bool {
	return u.SeparationWeight == nil && u.AlignmentWeight == nil && u.CohesionWeight == nil &&
		u.Inertia == nil && u.Speed == nil && u.NeighborhoodRadius == nil && u.ViewAngle == nil
}

// Apply returns p with the named fields of u overwritten.
func (u ParamUpdate) Apply(p Params) Params {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.SeparationWeight, u.SeparationWeight)
	set(&p.AlignmentWeight, u.AlignmentWeight)
	set(&p.CohesionWeight, u.CohesionWeight)
	set(&p.Inertia, u.Inertia)
	set(&p.Speed, u.Speed)
	set(&p.NeighborhoodRadius, u.NeighborhoodRadius)
	set(&p.ViewAngle, u.ViewAngle)
	return p
}

// Bounds is the toroidal world: a boid further than Buffer outside
// [0, Width] x [0, Height] reappears Buffer outside the opposite edge.
type Bounds struct {
	Width  float64
	Height float64
	Buffer float64
}

// DefaultBounds is a 1000x700 canvas with a 20 unit wrap buffer.
func DefaultBounds() Bounds {
	return Bounds{Width: DefaultWidth, Height: DefaultHeight, Buffer: DefaultBuffer}
}

// Wrap applies the wraparound to each axis independently.
func (b Bounds) Wrap(p geometry.Vector2D) geometry.Vector2D {
	p.X = wrapAxis(p.X, b.Width, b.Buffer)
	p.Y = wrapAxis(p.Y, b.Height, b.Buffer)
	return p
}

func wrapAxis(v, bound, buffer float64) float64 {
	if v > bound+buffer {
		return -buffer
	} else if v < -buffer {
		return bound + buffer
	}
	return v
}

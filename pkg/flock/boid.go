package flock

import (
	"math"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flock/pkg/geometry"
)

// Boid is a single member of the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds. The name "boid" is a
// shortened "bird-oid object". https://en.wikipedia.org/wiki/Boids
//
// Identity is the pointer (and the ID derived from it at creation), never the value:
// two boids at the same place with the same velocity are still two boids.
type Boid struct {
	ID      string
	Pos     geometry.Vector2D
	Vel     geometry.Vector2D
	Heading float64 // radians in [0, 2*Pi), refreshed by each tick

	// neighborhood is rebuilt by the world before the rules are evaluated
	neighborhood []*Boid
	// slot is the index of the boid in the world slice when the tick copy was taken
	slot int
}

// NewBoid creates a boid with the given state; Heading stays 0 until its first tick.
func NewBoid(x, y, velX, velY float64) *Boid {
	return &Boid{
		ID:  uuid.NewString(),
		Pos: geometry.Vector2D{X: x, Y: y},
		Vel: geometry.Vector2D{X: velX, Y: velY},
	}
}

// Neighborhood returns the neighbors computed for the last tick.
func (b *Boid) Neighborhood() []*Boid {
	return b.neighborhood
}

// SetNeighborhood replaces the neighbors the rules will read.
func (b *Boid) SetNeighborhood(ns []*Boid) {
	b.neighborhood = ns
}

// Separation steers away from crowding neighbors. Each neighbor pushes with a
// strength of radius/d along the unit vector towards b, so closer ones count more.
func (b *Boid) Separation(radius float64) geometry.Vector2D {
	var vec geometry.Vector2D
	for _, n := range b.neighborhood {
		d := b.Pos.DistanceTo(n.Pos)
		if d <= 0 {
			continue
		}
		dx := n.Pos.X - b.Pos.X
		dy := n.Pos.Y - b.Pos.Y
		if math.Abs(dx) > 0 {
			vec.X -= (dx / d) * (radius / d)
		}
		if math.Abs(dy) > 0 {
			vec.Y -= (dy / d) * (radius / d)
		}
	}
	return vec.NormalizeTo(1)
}

// Alignment steers towards the summed velocity of the neighbors.
func (b *Boid) Alignment() geometry.Vector2D {
	var vec geometry.Vector2D
	for _, n := range b.neighborhood {
		vec.X += n.Vel.X
		vec.Y += n.Vel.Y
	}
	return vec.NormalizeTo(1)
}

// Cohesion steers towards the centroid of the neighbors.
func (b *Boid) Cohesion() geometry.Vector2D {
	if len(b.neighborhood) == 0 {
		return geometry.Zero
	}
	var center geometry.Vector2D
	for _, n := range b.neighborhood {
		center.X += n.Pos.X
		center.Y += n.Pos.Y
	}
	count := float64(len(b.neighborhood))
	center.X /= count
	center.Y /= count
	return center.Sub(b.Pos).NormalizeTo(1)
}

// Guidance flees an active predator. Distance plays no part, only direction.
func (b *Boid) Guidance(p Predator) geometry.Vector2D {
	if !p.Active() {
		return geometry.Zero
	}
	return b.Pos.Sub(p.Pos).NormalizeTo(1)
}

// Steering blends the four rules with the weights and inertia of p.
// Guidance is never weighted.
func (b *Boid) Steering(p Params, pred Predator) geometry.Vector2D {
	sep := b.Separation(p.NeighborhoodRadius)
	ali := b.Alignment()
	coh := b.Cohesion()
	gui := b.Guidance(pred)
	return geometry.Vector2D{
		X: p.Inertia * ((sep.X * p.SeparationWeight) + (ali.X * p.AlignmentWeight) + (coh.X * p.CohesionWeight) + gui.X),
		Y: p.Inertia * ((sep.Y * p.SeparationWeight) + (ali.Y * p.AlignmentWeight) + (coh.Y * p.CohesionWeight) + gui.Y),
	}
}

// Integrate adds the steering to the velocity, renormalizes it to speed,
// moves the boid, refreshes its heading and wraps it inside bounds.
func (b *Boid) Integrate(steer geometry.Vector2D, speed float64, bounds Bounds) {
	b.Vel = b.Vel.Add(steer).NormalizeTo(speed)
	b.Pos = b.Pos.Add(b.Vel)
	b.Heading = b.Vel.Heading()
	b.Pos = bounds.Wrap(b.Pos)
}

func (b *Boid) state() BoidState {
	s := BoidState{
		ID:      b.ID,
		Pos:     b.Pos,
		Vel:     b.Vel,
		Heading: b.Heading,
	}
	if len(b.neighborhood) > 0 {
		s.NeighborIDs = make([]string, len(b.neighborhood))
		for i, n := range b.neighborhood {
			s.NeighborIDs[i] = n.ID
		}
	}
	return s
}

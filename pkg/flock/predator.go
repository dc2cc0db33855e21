package flock

import "github.com/lao-tseu-is-alive/go-flock/pkg/geometry"

// Predator is a transient point the boids flee while Life > 0.
type Predator struct {
	Pos  geometry.Vector2D
	Life int // remaining ticks
}

// Active reports whether the predator still repels and should be drawn.
func (p Predator) Active() bool {
	return p.Life > 0
}

// decay consumes one tick of life, never going below zero.
func (p *Predator) decay() {
	if p.Life > 0 {
		p.Life--
	}
}

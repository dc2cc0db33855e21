package flock

import "github.com/lao-tseu-is-alive/go-flock/pkg/geometry"

// BoidState is a read-only copy of a boid for renderers.
type BoidState struct {
	ID          string
	Pos         geometry.Vector2D
	Vel         geometry.Vector2D
	Heading     float64
	NeighborIDs []string // neighborhood of the last tick
}

// Snapshot is a deep copy of the world between two ticks.
// Mutating it has no effect on the world.
type Snapshot struct {
	Boids    []BoidState
	Predator Predator
	Params   Params
	Bounds   Bounds
	Tick     uint64
}

package flock

import (
	"math/rand/v2"

	golog "github.com/tochemey/goakt/v3/log"
)

// Mode selects how a tick reads the population.
type Mode int

const (
	// ModeSnapshot evaluates every boid against a copy of the population taken
	// before the tick, so the processing order does not matter.
	ModeSnapshot Mode = iota
	// ModeSequential updates boids in place in slice order: boids processed
	// later in a tick already see the new positions of the earlier ones.
	ModeSequential
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	default:
		return "snapshot"
	}
}

// ParseMode maps "snapshot" or "sequential" to a Mode; anything else is ModeSnapshot.
func ParseMode(s string) Mode {
	if s == "sequential" {
		return ModeSequential
	}
	return ModeSnapshot
}

// World owns the flock, the tunables and the predator.
// It is not safe for concurrent use: callers serialize ticks and commands
// (see simulation.FlockActor).
type World struct {
	boids    []*Boid
	params   Params
	defaults Params
	bounds   Bounds
	predator Predator

	population   int
	predatorLife int
	mode         Mode
	index        Index
	rng          *rand.Rand
	logger       golog.Logger
	ticks        uint64

	// per tick scratch, reused across ticks
	frame     []Boid
	framePtrs []*Boid
}

// Option configures a World.
type Option func(*World)

// WithParams sets the starting parameters, also restored by Reset.
func WithParams(p Params) Option {
	return func(w *World) {
		w.params = p
		w.defaults = p
	}
}

// WithBounds sets the world size used for wraparound.
func WithBounds(b Bounds) Option {
	return func(w *World) { w.bounds = b }
}

// WithPopulation sets how many boids Reset seeds.
func WithPopulation(n int) Option {
	return func(w *World) { w.population = n }
}

// WithPredatorLife sets how many ticks a predator stays active.
func WithPredatorLife(ticks int) Option {
	return func(w *World) { w.predatorLife = ticks }
}

// WithMode selects snapshot or sequential updates.
func WithMode(m Mode) Option {
	return func(w *World) { w.mode = m }
}

// WithIndex replaces the neighborhood index used in ModeSnapshot.
// ModeSequential always scans the live population.
func WithIndex(idx Index) Option {
	return func(w *World) { w.index = idx }
}

// WithRand injects the random source used for seeding and spawning.
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithLogger sets the logger; the default, also used for nil, discards everything.
func WithLogger(l golog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates an empty world. Call Reset to seed the initial population.
func NewWorld(opts ...Option) *World {
	w := &World{
		params:       DefaultParams(),
		defaults:     DefaultParams(),
		bounds:       DefaultBounds(),
		population:   DefaultPopulation,
		predatorLife: DefaultPredatorLife,
		mode:         ModeSnapshot,
		logger:       golog.DiscardLogger,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.index == nil {
		w.index = NewGridIndex()
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return w
}

// Tick advances the simulation by one step.
func (w *World) Tick() {
	switch w.mode {
	case ModeSequential:
		w.tickSequential()
	default:
		w.tickSnapshot()
	}
	// once per tick, whatever the population
	w.predator.decay()
	w.ticks++
}

func (w *World) tickSequential() {
	p := w.params
	for _, b := range w.boids {
		b.neighborhood = Neighbors(b, w.boids, p.NeighborhoodRadius, p.ViewAngle)
		b.Integrate(b.Steering(p, w.predator), p.Speed, w.bounds)
	}
}

func (w *World) tickSnapshot() {
	p := w.params
	n := len(w.boids)

	w.frame = w.frame[:0]
	for i, b := range w.boids {
		w.frame = append(w.frame, Boid{ID: b.ID, Pos: b.Pos, Vel: b.Vel, Heading: b.Heading, slot: i})
	}
	w.framePtrs = w.framePtrs[:0]
	for i := range w.frame {
		w.framePtrs = append(w.framePtrs, &w.frame[i])
	}
	w.index.Rebuild(w.framePtrs, p.NeighborhoodRadius)

	for i := 0; i < n; i++ {
		before := w.framePtrs[i]
		before.neighborhood = w.index.Neighbors(before, p.NeighborhoodRadius, p.ViewAngle)
		steer := before.Steering(p, w.predator)

		b := w.boids[i]
		b.neighborhood = make([]*Boid, len(before.neighborhood))
		for j, nb := range before.neighborhood {
			b.neighborhood[j] = w.boids[nb.slot]
		}
		b.Integrate(steer, p.Speed, w.bounds)
	}
}

// SpawnBoid appends a boid; its heading is computed on its first tick.
func (w *World) SpawnBoid(x, y, velX, velY float64) *Boid {
	b := NewBoid(x, y, velX, velY)
	w.boids = append(w.boids, b)
	return b
}

// SpawnBoidRandom appends a boid at (x, y) with a random velocity in [-3, 3)^2.
func (w *World) SpawnBoidRandom(x, y float64) *Boid {
	vx, vy := w.RandomVelocity()
	return w.SpawnBoid(x, y, vx, vy)
}

// RandomVelocity draws each component in [-3, 3).
func (w *World) RandomVelocity() (float64, float64) {
	return w.rng.Float64()*6 - 3, w.rng.Float64()*6 - 3
}

// SetPredatorTarget moves the predator and (re)activates it for the configured life.
func (w *World) SetPredatorTarget(x, y float64) {
	w.predator.Pos.X = x
	w.predator.Pos.Y = y
	w.predator.Life = w.predatorLife
}

// SetParameters overwrites the named parameters; the next tick uses them.
func (w *World) SetParameters(u ParamUpdate) {
	w.params = u.Apply(w.params)
	w.logger.Debugf("parameters updated: %+v", w.params)
}

// Reset removes every boid, restores the default parameters and seeds a new population.
func (w *World) Reset() {
	w.boids = nil
	w.frame = w.frame[:0]
	w.framePtrs = w.framePtrs[:0]
	w.params = w.defaults
	w.Seed(w.population)
	w.logger.Infof("world reset: %d boids in %.0fx%.0f (%s mode)", len(w.boids), w.bounds.Width, w.bounds.Height, w.mode)
}

// Seed adds n boids at random positions inside a 50 unit margin.
func (w *World) Seed(n int) {
	spanX := w.bounds.Width - 100
	spanY := w.bounds.Height - 100
	for i := 0; i < n; i++ {
		x := 50 + w.rng.Float64()*spanX
		y := 50 + w.rng.Float64()*spanY
		w.SpawnBoidRandom(x, y)
	}
}

// Params returns the current parameters.
func (w *World) Params() Params {
	return w.params
}

// Predator returns the current predator state.
func (w *World) Predator() Predator {
	return w.predator
}

// Bounds returns the world size.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Mode returns the update mode.
func (w *World) Mode() Mode {
	return w.mode
}

// Len returns the number of boids.
func (w *World) Len() int {
	return len(w.boids)
}

// TickCount returns how many ticks ran since the world was created.
func (w *World) TickCount() uint64 {
	return w.ticks
}

// Boids exposes the live population, for tests and benchmarks in this module.
// Renderers must use Snapshot.
func (w *World) Boids() []*Boid {
	return w.boids
}

// Snapshot copies the world state for readers.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Boids:    make([]BoidState, len(w.boids)),
		Predator: w.predator,
		Params:   w.params,
		Bounds:   w.bounds,
		Tick:     w.ticks,
	}
	for i, b := range w.boids {
		s.Boids[i] = b.state()
	}
	return s
}

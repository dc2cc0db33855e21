package flock

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock/pkg/geometry"
)

func newTestWorld(opts ...Option) *World {
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(42, 1024)))}, opts...)
	return NewWorld(opts...)
}

func TestWorld_ResetSeedsPopulation(t *testing.T) {
	w := newTestWorld(WithPopulation(70))
	w.Reset()

	if got := w.Len(); got != 70 {
		t.Fatalf("Len() after Reset = %d; want 70", got)
	}
	b := w.Bounds()
	for _, boid := range w.Boids() {
		if boid.Pos.X < 50 || boid.Pos.X >= b.Width-50 || boid.Pos.Y < 50 || boid.Pos.Y >= b.Height-50 {
			t.Errorf("seeded boid at %v outside the 50 unit margin", boid.Pos)
		}
		if math.Abs(boid.Vel.X) > 3 || math.Abs(boid.Vel.Y) > 3 {
			t.Errorf("seeded velocity %v outside [-3, 3)", boid.Vel)
		}
	}
}

func TestWorld_ResetRestoresDefaults(t *testing.T) {
	start := DefaultParams()
	start.Speed = 6
	w := newTestWorld(WithParams(start), WithPopulation(10))
	w.Reset()
	w.SpawnBoid(1, 1, 1, 1)
	w.SetParameters(ParamUpdate{Speed: Float(1), Inertia: Float(0.9)})

	w.Reset()
	if got := w.Params(); got != start {
		t.Errorf("Params() after Reset = %+v; want %+v", got, start)
	}
	if got := w.Len(); got != 10 {
		t.Errorf("Len() after Reset = %d; want 10 (spawned boids are cleared)", got)
	}
}

func TestWorld_SpeedInvariant(t *testing.T) {
	w := newTestWorld(WithPopulation(120))
	w.Reset()
	w.SetPredatorTarget(500, 350)

	for tick := 0; tick < 50; tick++ {
		w.Tick()
		speed := w.Params().Speed
		for _, b := range w.Boids() {
			if got := b.Vel.Len(); math.Abs(got-speed) > 1e-9 {
				t.Fatalf("tick %d: |vel| = %v; want %v", tick, got, speed)
			}
			if b.Heading < 0 || b.Heading >= 2*math.Pi {
				t.Fatalf("tick %d: heading %v outside [0, 2Pi)", tick, b.Heading)
			}
		}
	}
}

func TestWorld_ZeroSpeedDoesNotCrash(t *testing.T) {
	w := newTestWorld(WithPopulation(20))
	w.Reset()
	w.SetParameters(ParamUpdate{Speed: Float(0)})
	w.Tick()
	for _, b := range w.Boids() {
		if !b.Vel.IsZero() {
			t.Fatalf("speed 0: vel = %v; want (0,0)", b.Vel)
		}
		if b.Heading != 0 {
			t.Fatalf("speed 0: heading = %v; want 0", b.Heading)
		}
	}
}

func TestWorld_NeverSelfNeighbor(t *testing.T) {
	for _, mode := range []Mode{ModeSnapshot, ModeSequential} {
		w := newTestWorld(WithPopulation(80), WithMode(mode))
		w.Reset()
		for tick := 0; tick < 10; tick++ {
			w.Tick()
			for _, b := range w.Boids() {
				for _, n := range b.Neighborhood() {
					if n == b {
						t.Fatalf("%s mode: boid %s is its own neighbor", mode, b.ID)
					}
				}
			}
		}
	}
}

func TestWorld_PredatorLife(t *testing.T) {
	w := newTestWorld(WithPopulation(5))
	w.Reset()
	w.SetPredatorTarget(200, 200)

	if got := w.Predator().Life; got != DefaultPredatorLife {
		t.Fatalf("Life after SetPredatorTarget = %d; want %d", got, DefaultPredatorLife)
	}
	for k := 1; k <= DefaultPredatorLife; k++ {
		w.Tick()
		if got, want := w.Predator().Life, DefaultPredatorLife-k; got != want {
			t.Fatalf("after %d ticks Life = %d; want %d", k, got, want)
		}
	}
	for k := 0; k < 3; k++ {
		w.Tick()
		if got := w.Predator().Life; got != 0 {
			t.Fatalf("Life must floor at 0, got %d", got)
		}
	}
	for _, b := range w.Boids() {
		if g := b.Guidance(w.Predator()); !g.IsZero() {
			t.Errorf("guidance after expiry = %v; want (0,0)", g)
		}
	}
}

func TestWorld_PredatorDecaysOncePerTickWithAnyPopulation(t *testing.T) {
	for _, n := range []int{0, 1, 50} {
		w := newTestWorld(WithPopulation(n), WithPredatorLife(10))
		w.Reset()
		w.SetPredatorTarget(1, 1)
		w.Tick()
		if got := w.Predator().Life; got != 9 {
			t.Errorf("population %d: Life after one tick = %d; want 9", n, got)
		}
	}
}

func TestWorld_PredatorRetargetResetsLife(t *testing.T) {
	w := newTestWorld(WithPopulation(0))
	w.SetPredatorTarget(1, 1)
	for i := 0; i < 12; i++ {
		w.Tick()
	}
	w.SetPredatorTarget(300, 400)
	p := w.Predator()
	if p.Life != DefaultPredatorLife || p.Pos != (geometry.Vector2D{X: 300, Y: 400}) {
		t.Errorf("Predator() = %+v; want life %d at (300, 400)", p, DefaultPredatorLife)
	}
}

func TestWorld_SingleBoid(t *testing.T) {
	w := newTestWorld(WithPopulation(0))
	b := w.SpawnBoid(500, 300, 3, 4)

	w.Tick()
	if len(b.Neighborhood()) != 0 {
		t.Fatalf("lonely boid has neighbors: %v", b.Neighborhood())
	}
	if want := (geometry.Vector2D{X: 2.4, Y: 3.2}); !vecNear(b.Vel, want) {
		t.Errorf("Vel = %v; want %v (same direction, renormalized)", b.Vel, want)
	}
	if want := (geometry.Vector2D{X: 502.4, Y: 303.2}); !vecNear(b.Pos, want) {
		t.Errorf("Pos = %v; want %v", b.Pos, want)
	}

	// an active predator is the only thing that bends its path
	w.SetPredatorTarget(b.Pos.X, b.Pos.Y+100)
	w.Tick()
	if b.Vel.Y >= 3.2 {
		t.Errorf("Vel.Y = %v; want it to drop while fleeing a predator below", b.Vel.Y)
	}
}

func TestWorld_Wraparound(t *testing.T) {
	bounds := Bounds{Width: 1000, Height: 700, Buffer: 20}

	tests := []struct {
		name     string
		pos, vel geometry.Vector2D
		want     geometry.Vector2D
	}{
		{"past right edge", geometry.Vector2D{X: 1019, Y: 100}, geometry.Vector2D{X: 4, Y: 0}, geometry.Vector2D{X: -20, Y: 100}},
		{"past left edge", geometry.Vector2D{X: -19, Y: 100}, geometry.Vector2D{X: -4, Y: 0}, geometry.Vector2D{X: 1020, Y: 100}},
		{"past bottom edge", geometry.Vector2D{X: 100, Y: 719}, geometry.Vector2D{X: 0, Y: 4}, geometry.Vector2D{X: 100, Y: -20}},
		{"past top edge", geometry.Vector2D{X: 100, Y: -19}, geometry.Vector2D{X: 0, Y: -4}, geometry.Vector2D{X: 100, Y: 720}},
		{"landing exactly on the limit stays", geometry.Vector2D{X: 1016, Y: 100}, geometry.Vector2D{X: 4, Y: 0}, geometry.Vector2D{X: 1020, Y: 100}},
		{"inside the buffer stays", geometry.Vector2D{X: -10, Y: 100}, geometry.Vector2D{X: -4, Y: 0}, geometry.Vector2D{X: -14, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(WithPopulation(0), WithBounds(bounds))
			b := w.SpawnBoid(tt.pos.X, tt.pos.Y, tt.vel.X, tt.vel.Y)
			w.Tick()
			if !vecNear(b.Pos, tt.want) {
				t.Errorf("Pos = %v; want %v", b.Pos, tt.want)
			}
		})
	}
}

func TestBounds_Wrap(t *testing.T) {
	b := Bounds{Width: 100, Height: 50, Buffer: 10}
	tests := []struct {
		in, want geometry.Vector2D
	}{
		{geometry.Vector2D{X: 111, Y: 0}, geometry.Vector2D{X: -10, Y: 0}},
		{geometry.Vector2D{X: 110, Y: 0}, geometry.Vector2D{X: 110, Y: 0}},
		{geometry.Vector2D{X: -10.5, Y: 0}, geometry.Vector2D{X: 110, Y: 0}},
		{geometry.Vector2D{X: -10, Y: 0}, geometry.Vector2D{X: -10, Y: 0}},
		{geometry.Vector2D{X: 200, Y: 61}, geometry.Vector2D{X: -10, Y: -10}},
		{geometry.Vector2D{X: 50, Y: -11}, geometry.Vector2D{X: 50, Y: 60}},
	}
	for _, tt := range tests {
		if got := b.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestWorld_SetParametersTakesEffectNextTick(t *testing.T) {
	w := newTestWorld(WithPopulation(30))
	w.Reset()
	w.Tick()

	w.SetParameters(ParamUpdate{Speed: Float(7.5)})
	if got := w.Params(); got.Speed != 7.5 || got.Inertia != DefaultParams().Inertia {
		t.Fatalf("Params() = %+v; want only Speed changed", got)
	}
	w.Tick()
	for _, b := range w.Boids() {
		if got := b.Vel.Len(); math.Abs(got-7.5) > 1e-9 {
			t.Fatalf("|vel| = %v right after SetParameters; want 7.5", got)
		}
	}
}

func TestParamUpdate_Apply(t *testing.T) {
	base := DefaultParams()

	if got := (ParamUpdate{}).Apply(base); got != base {
		t.Errorf("empty update changed params: %+v", got)
	}
	if !(ParamUpdate{}).IsEmpty() {
		t.Error("ParamUpdate{}.IsEmpty() = false")
	}

	got := WeightsUpdate(0.5, 1.5, 2).Apply(base)
	want := base
	want.SeparationWeight, want.AlignmentWeight, want.CohesionWeight = 0.5, 1.5, 2
	if got != want {
		t.Errorf("WeightsUpdate.Apply = %+v; want %+v", got, want)
	}

	all := ParamUpdate{
		SeparationWeight:   Float(0),
		AlignmentWeight:    Float(0),
		CohesionWeight:     Float(0),
		Inertia:            Float(1),
		Speed:              Float(2),
		NeighborhoodRadius: Float(30),
		ViewAngle:          Float(math.Pi),
	}
	want = Params{Inertia: 1, Speed: 2, NeighborhoodRadius: 30, ViewAngle: math.Pi}
	if got := all.Apply(base); got != want {
		t.Errorf("full update = %+v; want %+v", got, want)
	}
}

// Reversing the slice must not change where any boid ends up.
func TestWorld_SnapshotModeIsOrderIndependent(t *testing.T) {
	src := newTestWorld(WithPopulation(60))
	src.Reset()
	for i := 0; i < 5; i++ {
		src.Tick()
	}

	forward := newTestWorld(WithPopulation(0))
	backward := newTestWorld(WithPopulation(0))
	boids := src.Boids()
	for i := range boids {
		f := forward.SpawnBoid(boids[i].Pos.X, boids[i].Pos.Y, boids[i].Vel.X, boids[i].Vel.Y)
		f.ID, f.Heading = boids[i].ID, boids[i].Heading

		j := len(boids) - 1 - i
		r := backward.SpawnBoid(boids[j].Pos.X, boids[j].Pos.Y, boids[j].Vel.X, boids[j].Vel.Y)
		r.ID, r.Heading = boids[j].ID, boids[j].Heading
	}

	for tick := 0; tick < 3; tick++ {
		forward.Tick()
		backward.Tick()
	}

	byID := make(map[string]*Boid)
	for _, b := range backward.Boids() {
		byID[b.ID] = b
	}
	for _, f := range forward.Boids() {
		r := byID[f.ID]
		if math.Abs(f.Pos.X-r.Pos.X) > 1e-6 || math.Abs(f.Pos.Y-r.Pos.Y) > 1e-6 {
			t.Fatalf("boid %s: forward %v, backward %v", f.ID, f.Pos, r.Pos)
		}
	}
}

// In sequential mode the first boid has already moved when the second one
// looks for neighbors.
func TestWorld_SequentialModeLeaksMovedBoids(t *testing.T) {
	setup := func(mode Mode) (*Boid, *Boid) {
		p := DefaultParams()
		p.NeighborhoodRadius = 10
		p.CohesionWeight = 0
		w := newTestWorld(WithPopulation(0), WithMode(mode), WithParams(p))
		a := w.SpawnBoid(100, 100, 4, 0)
		b := w.SpawnBoid(113, 103, -4, 0)
		b.Heading = math.Pi
		w.Tick()
		return a, b
	}

	_, snapB := setup(ModeSnapshot)
	if n := len(snapB.Neighborhood()); n != 0 {
		t.Errorf("snapshot mode: b has %d neighbors; want 0 (a was 13.3 away before the tick)", n)
	}
	if want := (geometry.Vector2D{X: -4, Y: 0}); !vecNear(snapB.Vel, want) {
		t.Errorf("snapshot mode: b.Vel = %v; want %v", snapB.Vel, want)
	}

	seqA, seqB := setup(ModeSequential)
	if n := len(seqB.Neighborhood()); n != 1 || seqB.Neighborhood()[0] != seqA {
		t.Errorf("sequential mode: b neighbors = %v; want [a]", seqB.Neighborhood())
	}
	if vecNear(seqB.Vel, geometry.Vector2D{X: -4, Y: 0}) {
		t.Errorf("sequential mode: b.Vel = %v; want it bent by a", seqB.Vel)
	}
}

func TestWorld_SnapshotIsACopy(t *testing.T) {
	w := newTestWorld(WithPopulation(10))
	w.Reset()
	w.Tick()
	w.SetPredatorTarget(5, 5)

	snap := w.Snapshot()
	if len(snap.Boids) != 10 || snap.Tick != 1 || snap.Predator.Life != DefaultPredatorLife {
		t.Fatalf("Snapshot() = %d boids, tick %d, predator %+v", len(snap.Boids), snap.Tick, snap.Predator)
	}
	before := w.Boids()[0].Pos
	snap.Boids[0].Pos.X += 1000
	snap.Predator.Life = 0
	snap.Params.Speed = 99

	if w.Boids()[0].Pos != before {
		t.Error("mutating the snapshot moved a boid")
	}
	if w.Predator().Life != DefaultPredatorLife || w.Params().Speed == 99 {
		t.Error("mutating the snapshot changed the world")
	}
}

func TestWorld_SnapshotNeighborIDs(t *testing.T) {
	w := newTestWorld(WithPopulation(0))
	a := w.SpawnBoid(100, 100, 1, 0)
	b := w.SpawnBoid(130, 100, 1, 0)
	w.Tick()

	snap := w.Snapshot()
	if got := snap.Boids[0].NeighborIDs; len(got) != 1 || got[0] != b.ID {
		t.Errorf("NeighborIDs of a = %v; want [%s]", got, b.ID)
	}
	if got := snap.Boids[1].NeighborIDs; len(got) != 0 {
		t.Errorf("NeighborIDs of b = %v; want none (a is behind b)", got)
	}
	if snap.Boids[0].ID != a.ID {
		t.Errorf("Snapshot order changed: got %s first", snap.Boids[0].ID)
	}
}

func TestWorld_GridAndScanAgree(t *testing.T) {
	grid := newTestWorld(WithPopulation(100), WithIndex(NewGridIndex()))
	scan := newTestWorld(WithPopulation(100), WithIndex(NewScanIndex()))
	grid.Reset()
	scan.Reset()
	for i, g := range grid.Boids() {
		s := scan.Boids()[i]
		s.ID = g.ID
		if g.Pos != s.Pos || g.Vel != s.Vel {
			t.Fatal("same seed must give the same population")
		}
	}

	for tick := 0; tick < 20; tick++ {
		grid.Tick()
		scan.Tick()
	}
	for i, g := range grid.Boids() {
		s := scan.Boids()[i]
		if math.Abs(g.Pos.X-s.Pos.X) > 1e-6 || math.Abs(g.Pos.Y-s.Pos.Y) > 1e-6 {
			t.Fatalf("boid %d: grid %v, scan %v", i, g.Pos, s.Pos)
		}
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("sequential") != ModeSequential || ParseMode("snapshot") != ModeSnapshot || ParseMode("") != ModeSnapshot {
		t.Error("ParseMode does not round trip")
	}
	if ModeSequential.String() != "sequential" || ModeSnapshot.String() != "snapshot" {
		t.Error("Mode.String does not round trip")
	}
}

func BenchmarkWorld_Tick(b *testing.B) {
	for _, mode := range []Mode{ModeSnapshot, ModeSequential} {
		b.Run(mode.String(), func(b *testing.B) {
			w := newTestWorld(WithPopulation(200), WithMode(mode))
			w.Reset()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w.Tick()
			}
		})
	}
}

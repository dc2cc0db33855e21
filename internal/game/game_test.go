package game

import (
	"context"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("GameTest", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		t.Fatalf("NewActorSystem() error = %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })

	cfg := simulation.DefaultConfig()
	cfg.Population = 0
	cfg.Seed = 7
	client, err := simulation.SpawnFlock(ctx, system, "flock", cfg.NewWorld(nil), nil)
	if err != nil {
		t.Fatalf("SpawnFlock() error = %v", err)
	}
	return New(ctx, client, nil, cfg, nil)
}

func snapshot(t *testing.T, g *Game) *pb.WorldSnapshot {
	t.Helper()
	snap, err := g.client.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	return snap
}

func TestGame_CreateMode(t *testing.T) {
	g := newTestGame(t)
	if g.Mode() != ModeCreate || !g.widgetCreate.Active || g.widgetScatter.Active {
		t.Fatal("a new game starts in create mode")
	}

	g.handleWorldInput(100, 100, true, true)
	// held: the cooldown runs out after spawnCooldown frames, then one more boid
	for i := 0; i < spawnCooldown+1; i++ {
		g.handleWorldInput(100, 100, false, true)
	}
	// released: nothing
	g.handleWorldInput(100, 100, false, false)

	snap := snapshot(t, g)
	if got := len(snap.GetBoids()); got != 2 {
		t.Fatalf("got %d boids; want 2", got)
	}
	for _, b := range snap.GetBoids() {
		v := b.GetVelocity()
		if math.Abs(v.GetX()) > 3 || math.Abs(v.GetY()) > 3 {
			t.Errorf("spawn velocity %v outside [-3, 3)", v)
		}
	}
}

func TestGame_ScatterMode(t *testing.T) {
	g := newTestGame(t)
	g.setMode(ModeScatter)

	g.handleWorldInput(250, 300, false, true)
	if snapshot(t, g).GetPredator().GetLife() != 0 {
		t.Fatal("holding the button without a new press must not move the predator")
	}

	g.handleWorldInput(250, 300, true, true)
	p := snapshot(t, g).GetPredator()
	if p.GetLife() != flock.DefaultPredatorLife {
		t.Errorf("predator life = %d; want %d", p.GetLife(), flock.DefaultPredatorLife)
	}
	if p.GetPosition().GetX() != 250 || p.GetPosition().GetY() != 300 {
		t.Errorf("predator at %v; want (250, 300)", p.GetPosition())
	}
	if len(snapshot(t, g).GetBoids()) != 0 {
		t.Error("scatter mode must not spawn boids")
	}
}

func TestGame_ParametersFollowWidgets(t *testing.T) {
	g := newTestGame(t)
	g.widgetSpeed.Set(60)
	g.widgetInertia.Set(80)
	g.sendParameters()

	params := snapshot(t, g).GetParameters()
	if params.GetSpeed() != 6 {
		t.Errorf("speed = %v; want 6", params.GetSpeed())
	}
	if math.Abs(params.GetInertia()-0.2) > 1e-12 {
		t.Errorf("inertia = %v; want 0.2", params.GetInertia())
	}

	g.reset()
	if g.widgetSpeed.Value != 40 || g.widgetInertia.Value != 50 {
		t.Errorf("widgets after reset = %v, %v; want 40, 50", g.widgetSpeed.Value, g.widgetInertia.Value)
	}
	params = snapshot(t, g).GetParameters()
	if params.GetSpeed() != 4 || params.GetInertia() != 0.5 {
		t.Errorf("params after reset = speed %v inertia %v; want 4 and 0.5", params.GetSpeed(), params.GetInertia())
	}
}

func TestSliderMapping(t *testing.T) {
	tests := []struct {
		slider, speed, inertia float64
	}{
		{0, 0, 1},
		{40, 4, 0.6},
		{50, 5, 0.5},
		{100, 10, 0},
	}
	for _, tt := range tests {
		if got := SpeedFromSlider(tt.slider); math.Abs(got-tt.speed) > 1e-12 {
			t.Errorf("SpeedFromSlider(%v) = %v; want %v", tt.slider, got, tt.speed)
		}
		if got := InertiaFromSlider(tt.slider); math.Abs(got-tt.inertia) > 1e-12 {
			t.Errorf("InertiaFromSlider(%v) = %v; want %v", tt.slider, got, tt.inertia)
		}
		if got := SliderFromSpeed(tt.speed); math.Abs(got-tt.slider) > 1e-9 {
			t.Errorf("SliderFromSpeed(%v) = %v; want %v", tt.speed, got, tt.slider)
		}
		if got := SliderFromInertia(tt.inertia); math.Abs(got-tt.slider) > 1e-9 {
			t.Errorf("SliderFromInertia(%v) = %v; want %v", tt.inertia, got, tt.slider)
		}
	}
}

func TestPredatorAlpha(t *testing.T) {
	tests := []struct {
		life int32
		want uint8
	}{
		{30, 255},
		{20, 255},
		{10, 128},
		{1, 13},
		{0, 0},
	}
	for _, tt := range tests {
		if got := PredatorAlpha(tt.life); got != tt.want {
			t.Errorf("PredatorAlpha(%d) = %d; want %d", tt.life, got, tt.want)
		}
	}
}

func TestBoidVertices(t *testing.T) {
	pts := BoidVertices(100, 50, math.Pi/2)
	want := [4][2]float64{{100, 60}, {94, 40}, {100, 42}, {106, 40}}
	for i := range pts {
		if math.Abs(pts[i][0]-want[i][0]) > 1e-9 || math.Abs(pts[i][1]-want[i][1]) > 1e-9 {
			t.Errorf("vertex %d = %v; want %v", i, pts[i], want[i])
		}
	}
}

func TestNeighborPositions(t *testing.T) {
	state := &pb.WorldSnapshot{Boids: []*pb.BoidState{
		{Id: "a", Position: &pb.Vector2D{X: 1, Y: 1}, NeighborIds: []string{"c", "gone"}},
		{Id: "b", Position: &pb.Vector2D{X: 2, Y: 2}},
		{Id: "c", Position: &pb.Vector2D{X: 3, Y: 3}},
	}}
	got := NeighborPositions(state, state.Boids[0])
	if len(got) != 1 || got[0].GetX() != 3 {
		t.Errorf("NeighborPositions() = %v; want only c at (3, 3)", got)
	}
	if NeighborPositions(state, state.Boids[1]) != nil {
		t.Error("a boid without neighbors has no positions")
	}
}

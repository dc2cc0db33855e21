package simulation

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"google.golang.org/protobuf/proto"
)

func TestToProtoSnapshot(t *testing.T) {
	w := flock.NewWorld(flock.WithPopulation(0), flock.WithRand(rand.New(rand.NewPCG(1, 2))))
	a := w.SpawnBoid(100, 100, 1, 0)
	b := w.SpawnBoid(130, 100, 1, 0)
	w.SetPredatorTarget(400, 300)
	w.Tick()

	got := ToProtoSnapshot(w.Snapshot())
	if len(got.GetBoids()) != 2 || got.GetTick() != 1 {
		t.Fatalf("snapshot has %d boids at tick %d; want 2 at tick 1", len(got.GetBoids()), got.GetTick())
	}
	if got.GetBoids()[0].GetId() != a.ID || got.GetBoids()[1].GetId() != b.ID {
		t.Errorf("boid ids not carried over")
	}
	if ids := got.GetBoids()[0].GetNeighborIds(); len(ids) != 1 || ids[0] != b.ID {
		t.Errorf("NeighborIds = %v; want [%s]", ids, b.ID)
	}
	if p := got.GetPredator(); p.GetLife() != flock.DefaultPredatorLife-1 || p.GetPosition().GetX() != 400 {
		t.Errorf("Predator = %v; want life %d at x=400", p, flock.DefaultPredatorLife-1)
	}
	if got.GetWidth() != flock.DefaultWidth || got.GetHeight() != flock.DefaultHeight {
		t.Errorf("size = %vx%v", got.GetWidth(), got.GetHeight())
	}
	if FromProtoParams(got.GetParameters()) != w.Params() {
		t.Errorf("Parameters = %v; want %+v", got.GetParameters(), w.Params())
	}
	if pos := got.GetBoids()[1].GetPosition(); pos.GetX() != b.Pos.X || pos.GetY() != b.Pos.Y {
		t.Errorf("position = %v; want %v", pos, b.Pos)
	}
}

func TestUpdateConversionKeepsPresence(t *testing.T) {
	u := flock.ParamUpdate{Speed: flock.Float(0), Inertia: flock.Float(0.25)}

	msg := ToProtoUpdate(u)
	want := &pb.UpdateParameters{Speed: proto.Float64(0), Inertia: proto.Float64(0.25)}
	if !proto.Equal(msg, want) {
		t.Fatalf("ToProtoUpdate() = %v; want %v", msg, want)
	}

	// an explicit zero must survive the wire
	raw, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("proto.Marshal() error = %v", err)
	}
	decoded := &pb.UpdateParameters{}
	if err := proto.Unmarshal(raw, decoded); err != nil {
		t.Fatalf("proto.Unmarshal() error = %v", err)
	}
	back := FromProtoUpdate(decoded)
	if back.Speed == nil || *back.Speed != 0 {
		t.Errorf("Speed lost its presence: %v", back.Speed)
	}
	if back.SeparationWeight != nil || back.ViewAngle != nil {
		t.Errorf("unset fields became set: %+v", back)
	}
	if got := back.Apply(flock.DefaultParams()); got.Speed != 0 || got.Inertia != 0.25 || got.NeighborhoodRadius != 100 {
		t.Errorf("Apply() = %+v", got)
	}

	if !FromProtoUpdate(nil).IsEmpty() {
		t.Error("FromProtoUpdate(nil) must be empty")
	}

	// the message does not alias the caller's values
	*u.Speed = 3
	if msg.GetSpeed() != 0 {
		t.Errorf("ToProtoUpdate aliases its input: speed = %v", msg.GetSpeed())
	}
}

func TestWireLife(t *testing.T) {
	beyond := math.MaxInt32
	beyond += 5
	tests := []struct {
		life int
		want int32
	}{
		{0, 0},
		{30, 30},
		{-1, 0},
		{math.MaxInt32, math.MaxInt32},
		{beyond, math.MaxInt32},
	}
	for _, tt := range tests {
		if got := wireLife(tt.life); got != tt.want {
			t.Errorf("wireLife(%d) = %d; want %d", tt.life, got, tt.want)
		}
	}

	w := flock.NewWorld(flock.WithPopulation(0), flock.WithPredatorLife(beyond))
	w.SetPredatorTarget(10, 10)
	if got := ToProtoSnapshot(w.Snapshot()).GetPredator().GetLife(); got != math.MaxInt32 {
		t.Errorf("snapshot predator life = %d; want %d", got, math.MaxInt32)
	}
}

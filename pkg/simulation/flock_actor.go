package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// FlockActor owns the authoritative world. Ticks and commands arrive through
// its mailbox one at a time, so no command ever lands in the middle of a tick.
type FlockActor struct {
	world *flock.World
	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot

	// --- Benchmark Stats ---
	tickCount    int
	tickDuration time.Duration
	rejected     int
	lastLogTime  time.Time
}

// Enforce interface compliance
var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor wraps world; snapshotCh may be nil when nobody renders.
func NewFlockActor(world *flock.World, snapshotCh chan<- *pb.WorldSnapshot) *FlockActor {
	return &FlockActor{
		world:       world,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (a *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock %s is starting with %d boids", ctx.ActorName(), a.world.Len())
	return nil
}

func (a *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		b := a.world.Bounds()
		ctx.Logger().Infof("Flock started: %.0fx%.0f world, %s mode", b.Width, b.Height, a.world.Mode())

	// The Main Simulation Step (Driven by the game loop or a Driver)
	case *pb.Tick:
		start := time.Now()
		a.world.Tick()
		a.tickDuration += time.Since(start)
		a.tickCount++

		a.logBenchmarks(ctx)
		a.pushSnapshot()

	case *pb.SpawnBoid:
		pos := fromProtoVector(msg.GetPosition())
		vel := fromProtoVector(msg.GetVelocity())
		a.world.SpawnBoid(pos.X, pos.Y, vel.X, vel.Y)

	case *pb.SetPredatorTarget:
		pos := fromProtoVector(msg.GetPosition())
		a.world.SetPredatorTarget(pos.X, pos.Y)

	// Parameter changes from the UI; only the fields that are set change.
	case *pb.UpdateParameters:
		update := FromProtoUpdate(msg)
		if err := ValidateUpdate(update); err != nil {
			a.rejected++
			ctx.Logger().Warnf("parameter update rejected: %v", err)
			return
		}
		a.world.SetParameters(update)

	case *pb.Reset:
		a.world.Reset()
		a.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(ToProtoSnapshot(a.world.Snapshot()))

	default:
		ctx.Unhandled()
	}
}

func (a *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(a.lastLogTime) >= time.Second {
		avg := time.Duration(0)
		if a.tickCount > 0 {
			avg = a.tickDuration / time.Duration(a.tickCount)
		}
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | avg tick: %s | boids: %d | rejected updates: %d",
			a.tickCount, avg, a.world.Len(), a.rejected)
		a.tickCount = 0
		a.tickDuration = 0
		a.rejected = 0
		a.lastLogTime = time.Now()
	}
}

func (a *FlockActor) pushSnapshot() {
	if a.snapshotCh == nil {
		return
	}
	select {
	case a.snapshotCh <- ToProtoSnapshot(a.world.Snapshot()):
	default:
		// UI busy, skip frame
	}
}

func (a *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock %s stopped after %d ticks", ctx.ActorName(), a.world.TickCount())
	return nil
}

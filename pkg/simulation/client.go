package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
)

// DefaultAskTimeout bounds how long Snapshot waits for the actor.
const DefaultAskTimeout = time.Second

// Client is the typed command surface of a running FlockActor.
type Client struct {
	pid     *actor.PID
	timeout time.Duration
}

// SpawnFlock starts a FlockActor named name on system and returns its client.
func SpawnFlock(ctx context.Context, system actor.ActorSystem, name string, world *flock.World, snapshotCh chan<- *pb.WorldSnapshot) (*Client, error) {
	pid, err := system.Spawn(ctx, name, NewFlockActor(world, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock actor %q: %w", name, err)
	}
	return NewClient(pid, DefaultAskTimeout), nil
}

func NewClient(pid *actor.PID, timeout time.Duration) *Client {
	return &Client{pid: pid, timeout: timeout}
}

// PID returns the actor behind the client.
func (c *Client) PID() *actor.PID {
	return c.pid
}

func (c *Client) Tick(ctx context.Context) error {
	return actor.Tell(ctx, c.pid, &pb.Tick{})
}

func (c *Client) SpawnBoid(ctx context.Context, x, y, velX, velY float64) error {
	return actor.Tell(ctx, c.pid, &pb.SpawnBoid{
		Position: &pb.Vector2D{X: x, Y: y},
		Velocity: &pb.Vector2D{X: velX, Y: velY},
	})
}

func (c *Client) SetPredatorTarget(ctx context.Context, x, y float64) error {
	return actor.Tell(ctx, c.pid, &pb.SetPredatorTarget{Position: &pb.Vector2D{X: x, Y: y}})
}

// UpdateParameters validates u before sending it; an invalid update is never sent
// and the returned error wraps ErrInvalidParameters once per violation.
func (c *Client) UpdateParameters(ctx context.Context, u flock.ParamUpdate) error {
	if err := ValidateUpdate(u); err != nil {
		return err
	}
	if u.IsEmpty() {
		return nil
	}
	return actor.Tell(ctx, c.pid, ToProtoUpdate(u))
}

func (c *Client) Reset(ctx context.Context) error {
	return actor.Tell(ctx, c.pid, &pb.Reset{})
}

// Snapshot asks the actor for the state after every command sent before it.
func (c *Client) Snapshot(ctx context.Context) (*pb.WorldSnapshot, error) {
	reply, err := actor.Ask(ctx, c.pid, &pb.GetSnapshot{}, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	snap, ok := reply.(*pb.WorldSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snap, nil
}

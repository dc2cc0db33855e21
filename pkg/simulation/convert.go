package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock/pkg/geometry"
	"google.golang.org/protobuf/proto"
)

func toProtoVector(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

func fromProtoVector(v *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

// ToProtoSnapshot converts a world snapshot into the wire message sent to readers.
func ToProtoSnapshot(s flock.Snapshot) *pb.WorldSnapshot {
	out := &pb.WorldSnapshot{
		Boids: make([]*pb.BoidState, 0, len(s.Boids)),
		Predator: &pb.PredatorState{
			Position: toProtoVector(s.Predator.Pos),
			Life:     wireLife(s.Predator.Life),
		},
		Parameters: ToProtoParams(s.Params),
		Tick:       s.Tick,
		Width:      s.Bounds.Width,
		Height:     s.Bounds.Height,
	}
	for _, b := range s.Boids {
		out.Boids = append(out.Boids, &pb.BoidState{
			Id:          b.ID,
			Position:    toProtoVector(b.Pos),
			Velocity:    toProtoVector(b.Vel),
			Heading:     b.Heading,
			NeighborIds: b.NeighborIDs,
		})
	}
	return out
}

// wireLife clamps a predator life to the int32 wire field.
func wireLife(life int) int32 {
	if life > math.MaxInt32 {
		return math.MaxInt32
	}
	if life < 0 {
		return 0
	}
	return int32(life)
}

func ToProtoParams(p flock.Params) *pb.Parameters {
	return &pb.Parameters{
		SeparationWeight:   p.SeparationWeight,
		AlignmentWeight:    p.AlignmentWeight,
		CohesionWeight:     p.CohesionWeight,
		Inertia:            p.Inertia,
		Speed:              p.Speed,
		NeighborhoodRadius: p.NeighborhoodRadius,
		ViewAngle:          p.ViewAngle,
	}
}

func FromProtoParams(p *pb.Parameters) flock.Params {
	return flock.Params{
		SeparationWeight:   p.GetSeparationWeight(),
		AlignmentWeight:    p.GetAlignmentWeight(),
		CohesionWeight:     p.GetCohesionWeight(),
		Inertia:            p.GetInertia(),
		Speed:              p.GetSpeed(),
		NeighborhoodRadius: p.GetNeighborhoodRadius(),
		ViewAngle:          p.GetViewAngle(),
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return proto.Float64(*v)
}

// ToProtoUpdate keeps the presence of every field: nil stays unset on the wire.
func ToProtoUpdate(u flock.ParamUpdate) *pb.UpdateParameters {
	return &pb.UpdateParameters{
		SeparationWeight:   copyFloat(u.SeparationWeight),
		AlignmentWeight:    copyFloat(u.AlignmentWeight),
		CohesionWeight:     copyFloat(u.CohesionWeight),
		Inertia:            copyFloat(u.Inertia),
		Speed:              copyFloat(u.Speed),
		NeighborhoodRadius: copyFloat(u.NeighborhoodRadius),
		ViewAngle:          copyFloat(u.ViewAngle),
	}
}

func FromProtoUpdate(m *pb.UpdateParameters) flock.ParamUpdate {
	if m == nil {
		return flock.ParamUpdate{}
	}
	return flock.ParamUpdate{
		SeparationWeight:   copyFloat(m.SeparationWeight),
		AlignmentWeight:    copyFloat(m.AlignmentWeight),
		CohesionWeight:     copyFloat(m.CohesionWeight),
		Inertia:            copyFloat(m.Inertia),
		Speed:              copyFloat(m.Speed),
		NeighborhoodRadius: copyFloat(m.NeighborhoodRadius),
		ViewAngle:          copyFloat(m.ViewAngle),
	}
}

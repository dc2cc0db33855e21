package simulation

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-flock/pb"
)

// Stats summarises one snapshot for headless runs.
type Stats struct {
	Tick         uint64
	Boids        int
	MeanSpeed    float64
	Polarization float64 // length of the mean unit velocity, 1 when all boids head the same way
	MeanNeighbor float64
	PredatorLife int32
}

func (s Stats) String() string {
	return fmt.Sprintf("tick %d: %d boids | speed %.2f | polarization %.3f | neighbors %.1f | predator life %d",
		s.Tick, s.Boids, s.MeanSpeed, s.Polarization, s.MeanNeighbor, s.PredatorLife)
}

// ComputeStats reads a snapshot; an empty world has zero means.
func ComputeStats(snap *pb.WorldSnapshot) Stats {
	st := Stats{
		Tick:         snap.GetTick(),
		Boids:        len(snap.GetBoids()),
		PredatorLife: snap.GetPredator().GetLife(),
	}
	if st.Boids == 0 {
		return st
	}
	var speed, ux, uy, neighbors float64
	for _, b := range snap.GetBoids() {
		v := b.GetVelocity()
		l := math.Hypot(v.GetX(), v.GetY())
		speed += l
		if l > 0 {
			ux += v.GetX() / l
			uy += v.GetY() / l
		}
		neighbors += float64(len(b.GetNeighborIds()))
	}
	n := float64(st.Boids)
	st.MeanSpeed = speed / n
	st.Polarization = math.Hypot(ux, uy) / n
	st.MeanNeighbor = neighbors / n
	return st
}

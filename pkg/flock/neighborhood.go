package flock

import (
	"math"
)

// Index answers neighborhood queries for one tick.
// Rebuild must be called with the population the queries should see before
// any call to Neighbors; the result of Neighbors is in no particular order.
type Index interface {
	Rebuild(boids []*Boid, radius float64)
	Neighbors(b *Boid, radius, viewAngle float64) []*Boid
}

// InNeighborhood reports whether other belongs to the neighborhood of b.
//
// The view test is inverted on purpose: the bearing is taken from other to b,
// so a candidate passes when |heading - bearing| > Pi - viewAngle/2. With the
// default 5*Pi/3 this only drops a Pi/3 wide cone right behind b. The relative
// angle is not folded back into [0, Pi].
func InNeighborhood(b, other *Boid, radius, viewAngle float64) bool {
	if b == other {
		return false
	}
	if b.Pos.DistanceTo(other.Pos) > radius {
		return false
	}
	angle := math.Atan2(b.Pos.Y-other.Pos.Y, b.Pos.X-other.Pos.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	relativeAngle := math.Abs(b.Heading - angle)
	return relativeAngle > math.Pi-(viewAngle/2)
}

// Neighbors scans all boids and returns the neighborhood of b.
func Neighbors(b *Boid, all []*Boid, radius, viewAngle float64) []*Boid {
	var neighborhood []*Boid
	for _, other := range all {
		if InNeighborhood(b, other, radius, viewAngle) {
			neighborhood = append(neighborhood, other)
		}
	}
	return neighborhood
}

// ScanIndex is the brute-force O(n^2) index. It keeps a reference to the slice,
// so queries see positions as they are at query time.
type ScanIndex struct {
	boids []*Boid
}

// NewScanIndex returns an empty brute-force index.
func NewScanIndex() *ScanIndex {
	return &ScanIndex{}
}

func (s *ScanIndex) Rebuild(boids []*Boid, _ float64) {
	s.boids = boids
}

func (s *ScanIndex) Neighbors(b *Boid, radius, viewAngle float64) []*Boid {
	return Neighbors(b, s.boids, radius, viewAngle)
}

type gridKey struct {
	x, y int
}

// minCellSize keeps the grid from degenerating into one cell per boid.
const minCellSize = 10.0

// GridIndex is a uniform spatial hash rebuilt every tick. Cells are at least
// radius wide, so the 3x3 block around a boid holds every candidate within
// radius. It returns exactly what ScanIndex returns for the same population.
type GridIndex struct {
	grid     map[gridKey][]*Boid
	all      []*Boid
	cellSize float64
	// fallback is set when the radius cannot size a grid (zero, negative, NaN, Inf)
	fallback bool
}

// NewGridIndex returns an empty grid index.
func NewGridIndex() *GridIndex {
	return &GridIndex{grid: make(map[gridKey][]*Boid)}
}

func (g *GridIndex) Rebuild(boids []*Boid, radius float64) {
	g.all = boids
	g.fallback = !(radius > 0) || math.IsInf(radius, 1)
	if g.fallback {
		return
	}
	g.cellSize = math.Max(radius, minCellSize)

	// Reset slices to length 0 but keep their capacity: after the first ticks
	// rebuilding allocates almost nothing.
	for k := range g.grid {
		g.grid[k] = g.grid[k][:0]
	}
	for _, b := range boids {
		key := g.cellOf(b.Pos.X, b.Pos.Y)
		g.grid[key] = append(g.grid[key], b)
	}
}

func (g *GridIndex) cellOf(x, y float64) gridKey {
	return gridKey{
		x: int(math.Floor(x / g.cellSize)),
		y: int(math.Floor(y / g.cellSize)),
	}
}

func (g *GridIndex) Neighbors(b *Boid, radius, viewAngle float64) []*Boid {
	if g.fallback || radius > g.cellSize {
		return Neighbors(b, g.all, radius, viewAngle)
	}
	var neighborhood []*Boid
	center := g.cellOf(b.Pos.X, b.Pos.Y)
	for i := center.x - 1; i <= center.x+1; i++ {
		for j := center.y - 1; j <= center.y+1; j++ {
			for _, other := range g.grid[gridKey{x: i, y: j}] {
				if InNeighborhood(b, other, radius, viewAngle) {
					neighborhood = append(neighborhood, other)
				}
			}
		}
	}
	return neighborhood
}

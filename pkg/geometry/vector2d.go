package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq when comparing float64 coordinates.
const (
	Epsilon = 1e-9
	TwoPi   = 2 * math.Pi
)

// Vector2D is a point or a displacement in the simulation plane.
// Fields are public so renderers and tests can build literals: v := Vector2D{1, 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the degenerate result returned by the normalizing helpers.
var Zero = Vector2D{}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewVectorPolar creates a Vector2D of length radius pointing at theta (radians).
func NewVectorPolar(radius, theta float64) Vector2D {
	sin, cos := math.Sincos(theta)
	x, y := radius*cos, radius*sin

	// cos(Pi/2) is not exactly 0 in float64
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}
	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// LenSqr is the squared magnitude, use it for range comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeTo returns v rescaled to length scale.
// A zero-length vector has no direction, so the result is Zero whatever the scale.
// A zero scale also yields Zero, never a signed zero.
func (v Vector2D) NormalizeTo(scale float64) Vector2D {
	l := v.Len()
	if l > 0 && scale != 0 {
		return Vector2D{scale * v.X / l, scale * v.Y / l}
	}
	return Zero
}

// Normalize returns a unit vector in the same direction, or Zero.
func (v Vector2D) Normalize() Vector2D {
	return v.NormalizeTo(1)
}

// DistanceTo calculates the Euclidean distance to another point.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another point.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Angle returns atan2(y, x), range (-Pi, Pi].
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Heading returns the direction of v in [0, 2*Pi).
func (v Vector2D) Heading() float64 {
	return WrapAngle(v.Angle())
}

// Rotate rotates the vector by angle (in radians) around the origin (0,0).
func (v Vector2D) Rotate(angle float64) Vector2D {
	sin, cos := math.Sincos(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp (Linear Interpolate) calculates a point between v and target based on t [0, 1].
func (v Vector2D) Lerp(target Vector2D, t float64) Vector2D {
	return v.Add(target.Sub(v).Mul(t))
}

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

// Distance is the Euclidean distance between p1 and p2.
func Distance(p1, p2 Vector2D) float64 {
	return p1.DistanceTo(p2)
}

// WrapAngle maps an atan2 result from (-Pi, Pi] into [0, 2*Pi) by adding 2*Pi
// to negative values. Angles outside (-2*Pi, 2*Pi) are not folded further.
func WrapAngle(a float64) float64 {
	if a < 0 {
		a += TwoPi
		// -1e-17 + 2*Pi rounds to 2*Pi itself
		if a >= TwoPi {
			a = 0
		}
	}
	return a
}

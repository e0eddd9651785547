package geometry

import (
	"math"
)

// Vector is a 2D position or displacement in screen coordinates (y grows downward).
type Vector struct {
	X float64
	Y float64
}

// Sides of a directed line as reported by SideOfLine.
const (
	SideLeft  = -1
	SideOn    = 0
	SideRight = 1
)

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

func (v Vector) Inverse() Vector {
	return Vector{-v.X, -v.Y}
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vector) DistanceTo(other Vector) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func Scale(v Vector, factor float64) Vector {
	return v.Scale(factor)
}

func Add(v1, v2 Vector) Vector {
	return v1.Add(v2)
}

func Inverse(v Vector) Vector {
	return v.Inverse()
}

// Between returns the displacement from p1 to p2.
func Between(p1, p2 Vector) Vector {
	return p2.Sub(p1)
}

// SideOfLine classifies p against the directed line l1->l2.
// A positive cross product (l2-l1) x (p-l1) is reported as SideLeft,
// a negative one as SideRight and zero as SideOn.
func SideOfLine(p, l1, l2 Vector) int {
	crossProduct := Between(l1, l2).Cross(Between(l1, p))
	switch {
	case crossProduct > 0:
		return SideLeft
	case crossProduct < 0:
		return SideRight
	default:
		return SideOn
	}
}

// Normal returns the unit normal (-dy, dx)/|d| of the segment p1->p2.
// ok is false when the two points coincide.
func Normal(p1, p2 Vector) (normal Vector, ok bool) {
	d := Between(p1, p2)
	length := d.Magnitude()
	if length == 0 {
		return Vector{}, false
	}
	return Vector{X: -d.Y / length, Y: d.X / length}, true
}

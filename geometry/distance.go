package geometry

import (
	"math"
)

// Intersection returns the point where the infinite line through p1,p2 meets the
// infinite line through p3,p4. ok is false when the lines are parallel or
// coincident, which is detected by an exactly zero determinant.
func Intersection(p1, p2, p3, p4 Vector) (point Vector, ok bool) {
	a1 := p2.Y - p1.Y
	b1 := p1.X - p2.X
	c1 := a1*p1.X + b1*p1.Y

	a2 := p4.Y - p3.Y
	b2 := p3.X - p4.X
	c2 := a2*p3.X + b2*p3.Y

	determinant := a1*b2 - a2*b1
	if determinant == 0 {
		return Vector{}, false
	}

	return Vector{
		X: (b2*c1 - b1*c2) / determinant,
		Y: (a1*c2 - a2*c1) / determinant,
	}, true
}

// ClosestPointOnLine projects p onto the infinite line through p1 and p2.
// When p1 == p2 it returns p1.
func ClosestPointOnLine(p, p1, p2 Vector) Vector {
	t, ok := projectionParameter(p, p1, p2)
	if !ok {
		return p1
	}
	return p1.Add(Between(p1, p2).Scale(t))
}

// ShortestDistanceToLine returns the point on the segment p1-p2 closest to point
// and the distance between them.
func ShortestDistanceToLine(p1, p2, point Vector) (distance float64, closest Vector) {
	t, ok := projectionParameter(point, p1, p2)
	if !ok {
		return point.DistanceTo(p1), p1
	}

	t = math.Max(0, math.Min(1, t))
	closest = p1.Add(Between(p1, p2).Scale(t))
	return point.DistanceTo(closest), closest
}

func projectionParameter(p, p1, p2 Vector) (float64, bool) {
	d := Between(p1, p2)
	lengthSquared := d.DotProduct(d)
	if lengthSquared == 0 {
		return 0, false
	}
	return Between(p1, p).DotProduct(d) / lengthSquared, true
}

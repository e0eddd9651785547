package scene

import (
	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
)

const DefaultArrowHitRadius = 20.0

// Endpoint names one end of an Arrow.
type Endpoint int

const (
	NoEndpoint Endpoint = iota
	EndpointP1
	EndpointP2
)

func (e Endpoint) String() string {
	switch e {
	case EndpointP1:
		return "p1"
	case EndpointP2:
		return "p2"
	default:
		return "none"
	}
}

// Arrow is drawn from p2 towards its head at p1. Either end can be dragged.
type Arrow struct {
	p1         geometry.Vector
	p2         geometry.Vector
	dragPoint  *geometry.Vector
	isDragging bool
	hitRadius  float64
}

type ArrowOption func(*Arrow)

func WithHitRadius(radius float64) ArrowOption {
	return func(a *Arrow) {
		a.hitRadius = radius
	}
}

// NewArrow creates an arrow and registers it for pointer input.
func NewArrow(reg Registrar, p1, p2 geometry.Vector, opts ...ArrowOption) *Arrow {
	a := &Arrow{
		p1:        p1,
		p2:        p2,
		hitRadius: DefaultArrowHitRadius,
	}
	for _, opt := range opts {
		opt(a)
	}

	reg.Register(a)
	return a
}

func (a *Arrow) Endpoints() (geometry.Vector, geometry.Vector) {
	return a.p1, a.p2
}

func (a *Arrow) Length() float64 {
	return a.p1.DistanceTo(a.p2)
}

func (a *Arrow) IsDragging() bool {
	return a.isDragging
}

// DragTarget reports which endpoint is being dragged.
func (a *Arrow) DragTarget() Endpoint {
	switch a.dragPoint {
	case &a.p1:
		return EndpointP1
	case &a.p2:
		return EndpointP2
	default:
		return NoEndpoint
	}
}

// Select grabs p1 if the cursor is near it, otherwise p2.
func (a *Arrow) Select(cursor geometry.Vector) bool {
	for _, end := range []*geometry.Vector{&a.p1, &a.p2} {
		if end.DistanceTo(cursor) <= a.hitRadius {
			a.isDragging = true
			a.dragPoint = end
			return true
		}
	}
	return false
}

func (a *Arrow) Drag(cursor geometry.Vector) bool {
	if !a.isDragging {
		return false
	}
	*a.dragPoint = cursor
	return true
}

func (a *Arrow) Unselect() {
	a.isDragging = false
	a.dragPoint = nil
}

func (a *Arrow) Draw(c canvas.Canvas) {
	drawArrow(c, a.p1, a.p2)
}

package scene

import (
	"image/color"
	"math"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"golang.org/x/image/colornames"
)

const (
	DefaultPointRadius = 10.0
	pointLineWidth     = 3.0
)

var (
	DefaultPointColor color.Color = colornames.Red
	selectedColor     color.Color = colornames.Orange
)

// Point is a draggable disc. It can be selected when a pointer-down lands
// within its radius.
type Point struct {
	position   geometry.Vector
	radius     float64
	color      color.Color
	isDragging bool
	isSelected bool
}

type PointOption func(*Point)

func WithRadius(radius float64) PointOption {
	return func(p *Point) {
		p.radius = radius
	}
}

func WithColor(c color.Color) PointOption {
	return func(p *Point) {
		p.color = c
	}
}

// NewPoint creates a point at (x, y) and registers it for pointer input.
func NewPoint(reg Registrar, x, y float64, opts ...PointOption) *Point {
	p := &Point{
		position: geometry.Vector{X: x, Y: y},
		radius:   DefaultPointRadius,
		color:    DefaultPointColor,
	}
	for _, opt := range opts {
		opt(p)
	}

	reg.Register(p)
	return p
}

func (p *Point) Position() geometry.Vector {
	return p.position
}

func (p *Point) Radius() float64 {
	return p.radius
}

func (p *Point) IsDragging() bool {
	return p.isDragging
}

func (p *Point) IsSelected() bool {
	return p.isSelected
}

func (p *Point) Drag(cursor geometry.Vector) bool {
	if !p.isDragging {
		return false
	}
	p.position = cursor
	return true
}

// Select claims the point when cursor is within its radius. A miss drops any
// selection the point still holds.
func (p *Point) Select(cursor geometry.Vector) bool {
	if p.position.DistanceTo(cursor) <= p.radius {
		p.isSelected = true
		p.isDragging = true
		return true
	}

	if p.isSelected {
		p.isSelected = false
		p.isDragging = false
	}
	return false
}

func (p *Point) Unselect() {
	p.isSelected = false
	p.isDragging = false
}

func (p *Point) Draw(c canvas.Canvas) {
	c.Save()
	defer c.Restore()

	c.SetFillStyle(p.color)
	if p.isSelected {
		c.SetFillStyle(selectedColor)
	}
	c.BeginPath()
	c.Arc(p.position.X, p.position.Y, p.radius, 0, 2*math.Pi)
	c.Fill()
	c.SetStrokeStyle(colornames.Black)
	c.SetLineWidth(pointLineWidth)
	c.Stroke()
	c.ClosePath()
}

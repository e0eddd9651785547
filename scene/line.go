package scene

import (
	"math"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"golang.org/x/image/colornames"
)

const lineWidth = 5.0

// Line is a segment between two draggable points it owns.
type Line struct {
	p1 *Point
	p2 *Point
}

// NewLine creates the two endpoints at p1 and p2; opts apply to both.
func NewLine(reg Registrar, p1, p2 geometry.Vector, opts ...PointOption) *Line {
	return &Line{
		p1: NewPoint(reg, p1.X, p1.Y, opts...),
		p2: NewPoint(reg, p2.X, p2.Y, opts...),
	}
}

func (l *Line) P1() *Point { return l.p1 }
func (l *Line) P2() *Point { return l.p2 }

func (l *Line) Endpoints() (geometry.Vector, geometry.Vector) {
	return l.p1.Position(), l.p2.Position()
}

func (l *Line) Length() float64 {
	return l.p1.Position().DistanceTo(l.p2.Position())
}

func (l *Line) Midpoint() geometry.Vector {
	p1, p2 := l.Endpoints()
	return p1.Add(p2).Scale(0.5)
}

// Slope is dy/dx. A vertical line has a signed infinite slope; ok is false
// only when both endpoints coincide.
func (l *Line) Slope() (slope float64, ok bool) {
	d := geometry.Between(l.Endpoints())
	if d.X == 0 {
		if d.Y == 0 {
			return 0, false
		}
		return math.Inf(int(math.Copysign(1, d.Y))), true
	}
	return d.Y / d.X, true
}

// Normal is the unit normal of the segment; ok is false for a zero-length line.
func (l *Line) Normal() (geometry.Vector, bool) {
	return geometry.Normal(l.Endpoints())
}

func (l *Line) Draw(c canvas.Canvas) {
	p1, p2 := l.Endpoints()

	c.SetStrokeStyle(colornames.Black)
	c.SetLineWidth(lineWidth)
	c.BeginPath()
	c.MoveTo(p1.X, p1.Y)
	c.LineTo(p2.X, p2.Y)
	c.Stroke()
	c.ClosePath()

	l.p1.Draw(c)
	l.p2.Draw(c)
	l.drawNormal(c)
}

func (l *Line) drawNormal(c canvas.Canvas) {
	normal, ok := l.Normal()
	if !ok {
		return
	}
	mid := l.Midpoint()
	dashedLine(c, mid, mid.Add(normal.Scale(normalRayLength)), colornames.Black, normalLineWidth, 1, 6)
}

package scene

import (
	"fmt"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"golang.org/x/image/colornames"
)

const noIntersectionText = "No visible intersection"

// Intersect marks where the infinite lines through two segments cross. It is
// recomputed on every draw.
type Intersect struct {
	first  Segment
	second Segment
}

func NewIntersect(first, second Segment) *Intersect {
	return &Intersect{first: first, second: second}
}

// Point returns the intersection of the two lines, if they are not parallel.
func (i *Intersect) Point() (geometry.Vector, bool) {
	p1, p2 := i.first.Endpoints()
	p3, p4 := i.second.Endpoints()
	return geometry.Intersection(p1, p2, p3, p4)
}

func (i *Intersect) Draw(c canvas.Canvas) {
	ip, ok := i.Point()
	if !ok || !boundsOf(c).Visible(ip) {
		c.SetFillStyle(colornames.Black)
		c.FillText(noIntersectionText, 10, 30)
		return
	}

	i.drawNormal(c, ip)
	circle(c, ip, markerRadius, colornames.Yellow)
	c.SetFillStyle(colornames.Black)
	c.FillText(fmt.Sprintf("Intersection: (%.2f, %.2f)", ip.X, ip.Y), ip.X+10, ip.Y+10)
}

// drawNormal draws a short ray from ip against the first segment's normal.
func (i *Intersect) drawNormal(c canvas.Canvas, ip geometry.Vector) {
	normal, ok := geometry.Normal(i.first.Endpoints())
	if !ok {
		return
	}
	end := ip.Add(normal.Inverse().Scale(normalRayLength))
	dashedLine(c, ip, end, colornames.Red, normalLineWidth, 1, 3)
}

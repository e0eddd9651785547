package scene

import (
	"fmt"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"golang.org/x/image/colornames"
)

const (
	statusSelected   = "Selected"
	statusUnselected = "No point selected"
)

// SelectionState reports whether the pointer currently holds an entity.
type SelectionState interface {
	HasSelection() bool
}

// Featured names the entities the frame overlays are measured on. Any of
// them may be nil, which turns the overlays that need it off.
type Featured struct {
	// Point is measured against Line for the distance overlay.
	Point *Point
	Line  *Line
	// Arrow is projected onto Line and reflected off it.
	Arrow *Arrow
}

// Scene repaints the whole frame: status, derived overlays, then every
// drawable in the order it was added.
type Scene struct {
	selection SelectionState
	featured  Featured
	drawables []Drawable
}

func New(selection SelectionState, featured Featured) *Scene {
	return &Scene{
		selection: selection,
		featured:  featured,
	}
}

// Add appends d to the paint order. Later drawables paint over earlier ones.
func (s *Scene) Add(d Drawable) {
	s.drawables = append(s.drawables, d)
}

func (s *Scene) Drawables() []Drawable {
	return s.drawables
}

func (s *Scene) Featured() Featured {
	return s.featured
}

func (s *Scene) Render(c canvas.Canvas) {
	c.Clear()

	status := statusUnselected
	if s.selection.HasSelection() {
		status = statusSelected
	}
	c.SetFillStyle(colornames.Black)
	c.FillText(status, 10, 20)

	if s.featured.Point != nil && s.featured.Line != nil {
		s.renderDistance(c)
	}
	if s.featured.Arrow != nil && s.featured.Line != nil {
		s.renderReflection(c)
	}

	for _, d := range s.drawables {
		d.Draw(c)
	}
}

// renderDistance connects the featured point to the nearest point of the
// featured line segment and labels the distance.
func (s *Scene) renderDistance(c canvas.Canvas) {
	point := s.featured.Point.Position()
	l1, l2 := s.featured.Line.Endpoints()
	distance, closest := geometry.ShortestDistanceToLine(l1, l2, point)

	dashedLine(c, point, closest, colornames.Blue, markerLineWidth, 5, 5)

	c.SetFillStyle(colornames.Black)
	c.FillText(fmt.Sprintf("Distance: %.2f", distance), closest.X+20, closest.Y+20)
	c.FillText(fmt.Sprintf("Closest Point: (%.2f, %.2f)", closest.X, closest.Y), closest.X+20, closest.Y+40)

	circle(c, closest, markerRadius, colornames.Purple)
}

// renderReflection marks the arrow's projections onto the line and onto the
// line's normal through the crossing point, then draws the reflected arrow.
func (s *Scene) renderReflection(c canvas.Canvas) {
	bounds := boundsOf(c)
	a1, a2 := s.featured.Arrow.Endpoints()
	l1, l2 := s.featured.Line.Endpoints()

	r := reflectArrow(a1, a2, l1, l2)
	for _, p := range []geometry.Vector{r.lineProjection1, r.lineProjection2} {
		if bounds.Visible(p) {
			circle(c, p, markerRadius, colornames.Pink)
		}
	}

	if !r.ok || !bounds.Visible(r.origin) {
		return
	}
	for _, p := range []geometry.Vector{r.normalProjection1, r.normalProjection2} {
		if bounds.Visible(p) {
			circle(c, p, markerRadius, colornames.Lime)
		}
	}
	drawVector(c, r.origin, r.direction)
}

type reflection struct {
	lineProjection1   geometry.Vector
	lineProjection2   geometry.Vector
	normalProjection1 geometry.Vector
	normalProjection2 geometry.Vector
	// origin is where the arrow's line crosses the line; direction is the
	// reflected arrow rooted there. Both are only set when ok.
	origin    geometry.Vector
	direction geometry.Vector
	ok        bool
}

// reflectArrow splits the arrow a2->a1 into its component along the line l1-l2 and
// its component along the line's normal, and recombines them with the normal
// component reversed.
func reflectArrow(a1, a2, l1, l2 geometry.Vector) reflection {
	r := reflection{
		lineProjection1: geometry.ClosestPointOnLine(a1, l1, l2),
		lineProjection2: geometry.ClosestPointOnLine(a2, l1, l2),
	}

	origin, ok := geometry.Intersection(a1, a2, l1, l2)
	if !ok {
		return r
	}
	normal, ok := geometry.Normal(l1, l2)
	if !ok {
		return r
	}

	normalEnd := origin.Add(normal)
	r.normalProjection1 = geometry.ClosestPointOnLine(a1, origin, normalEnd)
	r.normalProjection2 = geometry.ClosestPointOnLine(a2, origin, normalEnd)

	parallel := geometry.Between(r.lineProjection2, r.lineProjection1)
	// reversed: from the first projection to the second
	perpendicular := geometry.Between(r.normalProjection1, r.normalProjection2)

	r.origin = origin
	r.direction = geometry.Add(parallel, perpendicular)
	r.ok = true
	return r
}

package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
)

const miterLimit = 10

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type arc struct {
	center             geometry.Vector
	radius, start, end float64
}

// Screen is a canvas.Canvas that rasterises paths onto an ebiten image.
type Screen struct {
	dst        *ebiten.Image
	face       text.Face
	background color.Color
	styles     canvas.StyleStack

	path *vector.Path
	// straight-line subpaths and arcs of the current path, kept for dashed strokes
	polylines [][]geometry.Vector
	arcs      []arc
}

var _ canvas.Canvas = (*Screen)(nil)

func NewScreen(face text.Face, background color.Color) *Screen {
	return &Screen{
		face:       face,
		background: background,
		styles:     canvas.NewStyleStack(),
		path:       &vector.Path{},
	}
}

// SetTarget selects the image subsequent calls draw on.
func (s *Screen) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) Size() (width, height float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Screen) Clear() {
	s.dst.Fill(s.background)
}

func (s *Screen) Save()    { s.styles.Push() }
func (s *Screen) Restore() { s.styles.Pop() }

func (s *Screen) SetFillStyle(c color.Color)   { s.styles.Current.Fill = c }
func (s *Screen) SetStrokeStyle(c color.Color) { s.styles.Current.Stroke = c }
func (s *Screen) SetLineWidth(width float64)   { s.styles.Current.LineWidth = width }

func (s *Screen) SetLineDash(pattern ...float64) {
	s.styles.SetDash(pattern)
}

func (s *Screen) BeginPath() {
	s.path = &vector.Path{}
	s.polylines = nil
	s.arcs = nil
}

func (s *Screen) ClosePath() {
	s.path.Close()
	if n := len(s.polylines); n > 0 && len(s.polylines[n-1]) > 1 {
		last := s.polylines[n-1]
		s.polylines[n-1] = append(last, last[0])
		s.polylines = append(s.polylines, []geometry.Vector{last[0]})
	}
}

func (s *Screen) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
	s.polylines = append(s.polylines, []geometry.Vector{{X: x, Y: y}})
}

func (s *Screen) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
	p := geometry.Vector{X: x, Y: y}
	if n := len(s.polylines); n > 0 {
		s.polylines[n-1] = append(s.polylines[n-1], p)
		return
	}
	s.polylines = append(s.polylines, []geometry.Vector{p})
}

func (s *Screen) Arc(x, y, radius, startAngle, endAngle float64) {
	s.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
	s.arcs = append(s.arcs, arc{center: geometry.Vector{X: x, Y: y}, radius: radius, start: startAngle, end: endAngle})
	s.polylines = append(s.polylines, nil)
}

func (s *Screen) Fill() {
	vs, is := s.path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, s.styles.Current.Fill, ebiten.NonZero)
}

func (s *Screen) Stroke() {
	current := s.styles.Current
	opts := &vector.StrokeOptions{
		Width:      float32(current.LineWidth),
		LineJoin:   vector.LineJoinMiter,
		LineCap:    vector.LineCapButt,
		MiterLimit: miterLimit,
	}

	path := s.path
	if len(current.Dash) > 0 {
		path = s.dashedPath(current.Dash)
	}

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	s.drawTriangles(vs, is, current.Stroke, ebiten.FillAll)
}

// dashedPath rebuilds the current path with straight segments split into
// dashes. Arcs stay solid.
func (s *Screen) dashedPath(pattern []float64) *vector.Path {
	dashed := &vector.Path{}
	for _, polyline := range s.polylines {
		for _, d := range canvas.DashPolyline(polyline, pattern) {
			dashed.MoveTo(float32(d[0].X), float32(d[0].Y))
			dashed.LineTo(float32(d[1].X), float32(d[1].Y))
		}
	}
	for _, a := range s.arcs {
		startX := a.center.X + a.radius*math.Cos(a.start)
		startY := a.center.Y + a.radius*math.Sin(a.start)
		dashed.MoveTo(float32(startX), float32(startY))
		dashed.Arc(float32(a.center.X), float32(a.center.Y), float32(a.radius), float32(a.start), float32(a.end), vector.Clockwise)
	}
	return dashed
}

func (s *Screen) FillText(str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(s.styles.Current.Fill)
	text.Draw(s.dst, str, s.face, op)
}

func (s *Screen) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	if len(is) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	op.FillRule = rule
	s.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

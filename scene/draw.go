package scene

import (
	"image/color"
	"math"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"golang.org/x/image/colornames"
)

const (
	markerRadius    = 5.0
	markerLineWidth = 2.0
	arrowLineWidth  = 8.0
	arrowHeadLength = 20.0
	arrowHeadAngle  = math.Pi / 7
	normalRayLength = 30.0
	normalLineWidth = 2.0
)

// circle draws a disc filled with fill and outlined in black.
func circle(c canvas.Canvas, center geometry.Vector, radius float64, fill color.Color) {
	c.SetFillStyle(fill)
	c.BeginPath()
	c.Arc(center.X, center.Y, radius, 0, 2*math.Pi)
	c.Fill()
	c.SetStrokeStyle(colornames.Black)
	c.SetLineWidth(markerLineWidth)
	c.Stroke()
	c.ClosePath()
}

// dashedLine strokes from -> to with the given dash pattern and resets to solid.
func dashedLine(c canvas.Canvas, from, to geometry.Vector, stroke color.Color, width float64, pattern ...float64) {
	c.SetStrokeStyle(stroke)
	c.SetLineWidth(width)
	c.SetLineDash(pattern...)
	c.BeginPath()
	c.MoveTo(from.X, from.Y)
	c.LineTo(to.X, to.Y)
	c.Stroke()
	c.SetLineDash()
	c.ClosePath()
}

// drawArrow strokes a shaft from tail to tip and puts the head on tip.
func drawArrow(c canvas.Canvas, tip, tail geometry.Vector) {
	c.SetLineWidth(arrowLineWidth)
	c.SetStrokeStyle(colornames.Black)
	c.SetFillStyle(colornames.Black)

	angle := math.Atan2(tail.Y-tip.Y, tail.X-tip.X)
	wing1 := geometry.Vector{
		X: tip.X + arrowHeadLength*math.Cos(angle+arrowHeadAngle),
		Y: tip.Y + arrowHeadLength*math.Sin(angle+arrowHeadAngle),
	}
	wing2 := geometry.Vector{
		X: tip.X + arrowHeadLength*math.Cos(angle-arrowHeadAngle),
		Y: tip.Y + arrowHeadLength*math.Sin(angle-arrowHeadAngle),
	}

	c.BeginPath()
	c.MoveTo(tail.X, tail.Y)
	c.LineTo(tip.X, tip.Y)
	c.Stroke()

	c.BeginPath()
	c.MoveTo(wing1.X, wing1.Y)
	c.LineTo(tip.X, tip.Y)
	c.LineTo(wing2.X, wing2.Y)
	c.ClosePath()
	c.Fill()
	c.Stroke()
}

// drawVector draws v as an arrow rooted at origin.
func drawVector(c canvas.Canvas, origin, v geometry.Vector) {
	drawArrow(c, origin.Add(v), origin)
}

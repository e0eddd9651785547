package game

import (
	"github.com/meghashyamc/geoviz/geometry"
	"github.com/meghashyamc/geoviz/scene"
	"golang.org/x/image/colornames"
)

type demoOptions struct {
	pointRadius    float64
	arrowHitRadius float64
}

// buildDemo sets up a line, a free point measured against it, an arrow
// reflected off it and the line/arrow intersection marker.
func buildDemo(coord *scene.Coordinator, opts demoOptions) *scene.Scene {
	radius := scene.WithRadius(opts.pointRadius)

	line := scene.NewLine(coord, geometry.Vector{X: 100, Y: 100}, geometry.Vector{X: 300, Y: 200}, radius)
	point := scene.NewPoint(coord, 400, 600, radius, scene.WithColor(colornames.Lightgreen))
	arrow := scene.NewArrow(coord, geometry.Vector{X: 500, Y: 100}, geometry.Vector{X: 600, Y: 200},
		scene.WithHitRadius(opts.arrowHitRadius))

	s := scene.New(coord, scene.Featured{Point: point, Line: line, Arrow: arrow})
	s.Add(line)
	s.Add(point)
	s.Add(arrow)
	s.Add(scene.NewIntersect(line, arrow))
	return s
}

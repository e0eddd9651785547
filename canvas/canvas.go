// Package canvas defines the drawing sink the scene renders into and the
// paint state every implementation tracks.
package canvas

import (
	"image/color"
)

// Canvas is a retained-path 2D drawing context. Paths are built with
// BeginPath/MoveTo/LineTo/Arc/ClosePath and painted with Fill or Stroke using
// the current style.
type Canvas interface {
	// Size is the extent of the surface; everything outside [0,width]x[0,height] is off screen.
	Size() (width, height float64)
	// Clear wipes the whole surface.
	Clear()

	// Save pushes the current style; Restore pops it.
	Save()
	Restore()

	SetFillStyle(c color.Color)
	SetStrokeStyle(c color.Color)
	SetLineWidth(width float64)
	// SetLineDash sets alternating dash and gap lengths. No arguments restores solid lines.
	SetLineDash(pattern ...float64)

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a clockwise arc centred at (x, y) from startAngle to endAngle, in radians.
	Arc(x, y, radius, startAngle, endAngle float64)
	Fill()
	Stroke()

	// FillText draws s with its baseline starting at (x, y) using the fill style.
	FillText(s string, x, y float64)
}

// Style is the paint state shared by Fill, Stroke and FillText.
type Style struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
	Dash      []float64
}

func DefaultStyle() Style {
	return Style{
		Fill:      color.Black,
		Stroke:    color.Black,
		LineWidth: 1,
	}
}

// StyleStack holds the current Style and the ones pushed by Save.
type StyleStack struct {
	Current Style
	saved   []Style
}

func NewStyleStack() StyleStack {
	return StyleStack{Current: DefaultStyle()}
}

func (s *StyleStack) Push() {
	saved := s.Current
	saved.Dash = append([]float64(nil), s.Current.Dash...)
	s.saved = append(s.saved, saved)
}

func (s *StyleStack) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.Current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// SetDash stores pattern the way HTML canvas does: an odd-length pattern is
// repeated to make it even, a pattern with a negative entry is ignored and an
// all-zero one disables dashing.
func (s *StyleStack) SetDash(pattern []float64) {
	total := 0.0
	for _, v := range pattern {
		if v < 0 {
			return
		}
		total += v
	}
	if total == 0 {
		s.Current.Dash = nil
		return
	}
	dash := append([]float64(nil), pattern...)
	if len(dash)%2 == 1 {
		dash = append(dash, pattern...)
	}
	s.Current.Dash = dash
}

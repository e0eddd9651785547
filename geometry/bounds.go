package geometry

// Bounds is the drawing surface extent [0,Width] x [0,Height].
type Bounds struct {
	Width  float64
	Height float64
}

// Visible reports whether p lies within the bounds, edges included.
func (b Bounds) Visible(p Vector) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

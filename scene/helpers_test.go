package scene

import (
	"math"
	"testing"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"github.com/meghashyamc/geoviz/logger"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func approxVector(a, b geometry.Vector) bool {
	return approxEqual(a.X, b.X, tolerance) && approxEqual(a.Y, b.Y, tolerance)
}

func vec(x, y float64) geometry.Vector {
	return geometry.Vector{X: x, Y: y}
}

// newCoordinator returns a coordinator and a pointer to the number of change
// notifications it has sent.
func newCoordinator() (*Coordinator, *int) {
	changes := 0
	return NewCoordinator(logger.Nop(), func() { changes++ }), &changes
}

type segment [2]geometry.Vector

func (s segment) Endpoints() (geometry.Vector, geometry.Vector) {
	return s[0], s[1]
}

// hasArgs reports whether an op with the given name and arguments was recorded.
func hasArgs(r *canvas.Recorder, name string, args ...float64) bool {
	for _, op := range r.Filter(name) {
		if len(op.Args) < len(args) {
			continue
		}
		match := true
		for i, a := range args {
			if !approxEqual(op.Args[i], a, 1e-6) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// hasSegment reports whether a MoveTo(from) is directly followed by LineTo(to).
func hasSegment(r *canvas.Recorder, from, to geometry.Vector) bool {
	for i := 0; i+1 < len(r.Ops); i++ {
		m, l := r.Ops[i], r.Ops[i+1]
		if m.Name != "MoveTo" || l.Name != "LineTo" {
			continue
		}
		if approxVector(vec(m.Args[0], m.Args[1]), from) && approxVector(vec(l.Args[0], l.Args[1]), to) {
			return true
		}
	}
	return false
}

func assertFinite(t *testing.T, r *canvas.Recorder) {
	t.Helper()
	for _, op := range r.Ops {
		for _, a := range op.Args {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				t.Fatalf("non-finite coordinate in %s", op)
			}
		}
	}
}

// Package scene holds the interactive geometry: draggable points, lines and
// arrows, the overlays derived from them, and the pointer coordinator that
// moves them.
package scene

import (
	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
)

// Drawable is anything painted once per frame.
type Drawable interface {
	Draw(c canvas.Canvas)
}

// Interactive is anything the Coordinator can select and drag.
type Interactive interface {
	// Select tries to claim the entity for a pointer-down at cursor and reports
	// whether it did. It is only called while nothing else is selected.
	Select(cursor geometry.Vector) bool
	// Drag follows the cursor while the entity is being dragged and reports
	// whether anything moved.
	Drag(cursor geometry.Vector) bool
	Unselect()
}

// Registrar accepts newly created interactive entities.
type Registrar interface {
	Register(o Interactive)
}

// Segment is anything defined by two endpoints, such as a Line or an Arrow.
type Segment interface {
	Endpoints() (geometry.Vector, geometry.Vector)
}

func boundsOf(c canvas.Canvas) geometry.Bounds {
	width, height := c.Size()
	return geometry.Bounds{Width: width, Height: height}
}

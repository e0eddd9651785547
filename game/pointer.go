package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/geoviz/geometry"
)

type pointerSink interface {
	PointerDown(cursor geometry.Vector)
	PointerMove(cursor geometry.Vector)
	PointerUp()
}

// pointerFrame is the primary mouse button state sampled once per tick.
type pointerFrame struct {
	justPressed  bool
	pressed      bool
	justReleased bool
	cursor       geometry.Vector
}

func currentPointerFrame() pointerFrame {
	mouseX, mouseY := ebiten.CursorPosition()
	return pointerFrame{
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		cursor:       geometry.Vector{X: float64(mouseX), Y: float64(mouseY)},
	}
}

// pointerTracker turns polled button state into down, move and up events.
// Moves are only reported while the button is held and the cursor changed.
type pointerTracker struct {
	down bool
	last geometry.Vector
}

func (p *pointerTracker) update(sink pointerSink, frame pointerFrame) {
	switch {
	case frame.justPressed:
		p.down = true
		p.last = frame.cursor
		sink.PointerDown(frame.cursor)
	case frame.pressed && p.down && frame.cursor != p.last:
		p.last = frame.cursor
		sink.PointerMove(frame.cursor)
	}

	if frame.justReleased {
		p.down = false
		sink.PointerUp()
	}
}

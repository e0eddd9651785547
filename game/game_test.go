package game

import (
	"testing"

	"github.com/meghashyamc/geoviz/canvas"
	"github.com/meghashyamc/geoviz/geometry"
	"github.com/meghashyamc/geoviz/logger"
	"github.com/meghashyamc/geoviz/scene"
)

type recordedEvent struct {
	kind   string
	cursor geometry.Vector
}

type fakeSink struct {
	events []recordedEvent
}

func (f *fakeSink) PointerDown(cursor geometry.Vector) {
	f.events = append(f.events, recordedEvent{"down", cursor})
}

func (f *fakeSink) PointerMove(cursor geometry.Vector) {
	f.events = append(f.events, recordedEvent{"move", cursor})
}

func (f *fakeSink) PointerUp() {
	f.events = append(f.events, recordedEvent{kind: "up"})
}

func TestPointerTracker(t *testing.T) {
	sink := &fakeSink{}
	var tracker pointerTracker

	frames := []pointerFrame{
		{cursor: geometry.Vector{X: 1, Y: 1}},
		{pressed: true, cursor: geometry.Vector{X: 2, Y: 2}},
		{justPressed: true, pressed: true, cursor: geometry.Vector{X: 3, Y: 3}},
		{pressed: true, cursor: geometry.Vector{X: 3, Y: 3}},
		{pressed: true, cursor: geometry.Vector{X: 4, Y: 5}},
		{justReleased: true, cursor: geometry.Vector{X: 4, Y: 5}},
		{cursor: geometry.Vector{X: 9, Y: 9}},
	}
	for _, f := range frames {
		tracker.update(sink, f)
	}

	want := []recordedEvent{
		{"down", geometry.Vector{X: 3, Y: 3}},
		{"move", geometry.Vector{X: 4, Y: 5}},
		{kind: "up"},
	}
	if len(sink.events) != len(want) {
		t.Fatalf("got events %v, want %v", sink.events, want)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, sink.events[i], want[i])
		}
	}
}

func newDemo(t *testing.T) (*scene.Coordinator, *scene.Scene, *int) {
	t.Helper()
	redraws := 0
	coord := scene.NewCoordinator(logger.Nop(), func() { redraws++ })
	s := buildDemo(coord, demoOptions{pointRadius: scene.DefaultPointRadius, arrowHitRadius: scene.DefaultArrowHitRadius})
	return coord, s, &redraws
}

func TestBuildDemo(t *testing.T) {
	coord, s, _ := newDemo(t)

	if got := len(s.Drawables()); got != 4 {
		t.Errorf("expected line, point, arrow and intersection to be drawn, got %d", got)
	}
	// two line endpoints, the free point and the arrow
	if got := len(coord.Objects()); got != 4 {
		t.Errorf("expected 4 interactive entities, got %d", got)
	}

	f := s.Featured()
	if f.Line == nil || f.Point == nil || f.Arrow == nil {
		t.Fatalf("expected all featured entities, got %+v", f)
	}
	p1, p2 := f.Line.Endpoints()
	if p1 != (geometry.Vector{X: 100, Y: 100}) || p2 != (geometry.Vector{X: 300, Y: 200}) {
		t.Errorf("unexpected line %+v %+v", p1, p2)
	}
}

func TestDemoDragScenario(t *testing.T) {
	coord, s, redraws := newDemo(t)
	var tracker pointerTracker
	line := s.Featured().Line

	tracker.update(coord, pointerFrame{justPressed: true, pressed: true, cursor: geometry.Vector{X: 100, Y: 100}})
	tracker.update(coord, pointerFrame{pressed: true, cursor: geometry.Vector{X: 150, Y: 120}})

	if line.P1().Position() != (geometry.Vector{X: 150, Y: 120}) {
		t.Errorf("expected the first endpoint at (150,120), got %+v", line.P1().Position())
	}
	if line.P2().Position() != (geometry.Vector{X: 300, Y: 200}) {
		t.Errorf("second endpoint moved to %+v", line.P2().Position())
	}

	tracker.update(coord, pointerFrame{justReleased: true, cursor: geometry.Vector{X: 150, Y: 120}})
	if coord.HasSelection() || line.P1().IsSelected() {
		t.Error("release should clear the selection")
	}
	if *redraws != 3 {
		t.Errorf("expected 3 redraw requests, got %d", *redraws)
	}
}

func TestDemoArrowGrab(t *testing.T) {
	coord, s, _ := newDemo(t)

	coord.PointerDown(geometry.Vector{X: 505, Y: 105})
	arrow := s.Featured().Arrow
	if arrow.DragTarget() != scene.EndpointP1 {
		t.Errorf("expected p1 to be grabbed, got %v", arrow.DragTarget())
	}
}

func TestDemoRendersInitialFrame(t *testing.T) {
	_, s, _ := newDemo(t)
	r := canvas.NewRecorder(1200, 800)

	s.Render(r)

	texts := r.Texts()
	if len(texts) == 0 || texts[0] != "No point selected" {
		t.Errorf("unexpected texts %v", texts)
	}
}

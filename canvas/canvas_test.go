package canvas

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/meghashyamc/geoviz/geometry"
)

func TestStyleStackSaveRestore(t *testing.T) {
	r := NewRecorder(100, 100)
	red := color.RGBA{R: 255, A: 255}

	r.SetFillStyle(red)
	r.SetLineDash(1, 6)
	r.Save()
	r.SetFillStyle(color.White)
	r.SetLineDash()
	r.Restore()

	if r.Style().Fill != red {
		t.Errorf("expected fill restored to red, got %v", r.Style().Fill)
	}
	if !reflect.DeepEqual(r.Style().Dash, []float64{1, 6}) {
		t.Errorf("expected dash restored to [1 6], got %v", r.Style().Dash)
	}

	// popping an empty stack keeps the current style
	r.Restore()
	if r.Style().Fill != red {
		t.Errorf("unbalanced Restore changed the style")
	}
}

func TestSetDash(t *testing.T) {
	tests := []struct {
		name    string
		pattern []float64
		want    []float64
	}{
		{"even pattern", []float64{5, 5}, []float64{5, 5}},
		{"odd pattern is doubled", []float64{1, 2, 3}, []float64{1, 2, 3, 1, 2, 3}},
		{"empty pattern clears", nil, nil},
		{"all zeros clears", []float64{0, 0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStyleStack()
			s.Current.Dash = []float64{9, 9}
			s.SetDash(tt.pattern)
			if !reflect.DeepEqual(s.Current.Dash, tt.want) {
				t.Errorf("got %v, want %v", s.Current.Dash, tt.want)
			}
		})
	}

	s := NewStyleStack()
	s.Current.Dash = []float64{4, 4}
	s.SetDash([]float64{3, -1})
	if !reflect.DeepEqual(s.Current.Dash, []float64{4, 4}) {
		t.Errorf("a negative entry should leave the pattern unchanged, got %v", s.Current.Dash)
	}
}

func TestRecorderCapturesPaintState(t *testing.T) {
	r := NewRecorder(100, 100)
	r.SetStrokeStyle(color.Black)
	r.SetLineWidth(3)
	r.SetLineDash(5, 5)
	r.BeginPath()
	r.MoveTo(1, 2)
	r.LineTo(3, 4)
	r.Stroke()
	r.SetFillStyle(color.White)
	r.FillText("hello", 10, 20)

	strokes := r.Filter("Stroke")
	if len(strokes) != 1 {
		t.Fatalf("expected 1 stroke, got %d", len(strokes))
	}
	if strokes[0].Args[0] != 3 || !reflect.DeepEqual(strokes[0].Dash, []float64{5, 5}) {
		t.Errorf("unexpected stroke %+v", strokes[0])
	}
	if got := r.Texts(); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("unexpected texts %v", got)
	}
	if r.Filter("FillText")[0].Color != color.White {
		t.Errorf("text should be painted with the fill style")
	}

	r.Reset()
	if len(r.Ops) != 0 || r.Style().LineWidth != 1 {
		t.Errorf("Reset should clear ops and style")
	}
}

func TestDashPolyline(t *testing.T) {
	points := []geometry.Vector{{X: 0, Y: 0}, {X: 20, Y: 0}}
	dashes := DashPolyline(points, []float64{5, 5})

	want := [][2]geometry.Vector{
		{{X: 0, Y: 0}, {X: 5, Y: 0}},
		{{X: 10, Y: 0}, {X: 15, Y: 0}},
	}
	if !reflect.DeepEqual(dashes, want) {
		t.Errorf("got %v, want %v", dashes, want)
	}
}

func TestDashPolylineCarriesPhaseAcrossCorners(t *testing.T) {
	points := []geometry.Vector{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 10}}
	dashes := DashPolyline(points, []float64{5, 5})

	if len(dashes) != 3 {
		t.Fatalf("expected 3 dash pieces, got %d: %v", len(dashes), dashes)
	}
	// the first dash is 3 long on the first segment and 2 long on the second
	if dashes[1][0] != (geometry.Vector{X: 3, Y: 0}) || dashes[1][1] != (geometry.Vector{X: 3, Y: 2}) {
		t.Errorf("unexpected second piece %v", dashes[1])
	}
	if dashes[2][0] != (geometry.Vector{X: 3, Y: 7}) || dashes[2][1] != (geometry.Vector{X: 3, Y: 10}) {
		t.Errorf("unexpected third piece %v", dashes[2])
	}

	total := 0.0
	for _, d := range dashes {
		total += d[0].DistanceTo(d[1])
	}
	if math.Abs(total-8) > 1e-9 {
		t.Errorf("expected 8 units of ink, got %f", total)
	}
}

func TestDashPolylineDegenerate(t *testing.T) {
	if got := DashPolyline([]geometry.Vector{{X: 1, Y: 1}}, []float64{1, 1}); got != nil {
		t.Errorf("single point should produce no dashes, got %v", got)
	}
	if got := DashPolyline([]geometry.Vector{{X: 1, Y: 1}, {X: 1, Y: 1}}, []float64{1, 1}); got != nil {
		t.Errorf("zero-length segment should produce no dashes, got %v", got)
	}
}

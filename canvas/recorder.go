package canvas

import (
	"fmt"
	"image/color"
	"strings"
)

// Op is one recorded drawing call. Fill, Stroke and FillText carry the colour
// they were painted with; Stroke also carries the line width and dash pattern.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color
	Dash  []float64
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	if o.Text != "" {
		fmt.Fprintf(&b, " %q", o.Text)
	}
	for _, a := range o.Args {
		fmt.Fprintf(&b, " %.2f", a)
	}
	return b.String()
}

// Recorder is a Canvas that keeps every call instead of drawing.
type Recorder struct {
	Ops    []Op
	width  float64
	height float64
	styles StyleStack
}

var _ Canvas = (*Recorder)(nil)

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height, styles: NewStyleStack()}
}

// Reset forgets recorded ops and restores the default style.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.styles = NewStyleStack()
}

func (r *Recorder) Style() Style {
	return r.styles.Current
}

func (r *Recorder) record(op Op) {
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Size() (width, height float64) {
	return r.width, r.height
}

func (r *Recorder) Clear()   { r.record(Op{Name: "Clear"}) }
func (r *Recorder) Save()    { r.styles.Push() }
func (r *Recorder) Restore() { r.styles.Pop() }

func (r *Recorder) SetFillStyle(c color.Color)   { r.styles.Current.Fill = c }
func (r *Recorder) SetStrokeStyle(c color.Color) { r.styles.Current.Stroke = c }
func (r *Recorder) SetLineWidth(width float64)   { r.styles.Current.LineWidth = width }

func (r *Recorder) SetLineDash(pattern ...float64) {
	r.styles.SetDash(pattern)
}

func (r *Recorder) BeginPath() { r.record(Op{Name: "BeginPath"}) }
func (r *Recorder) ClosePath() { r.record(Op{Name: "ClosePath"}) }

func (r *Recorder) MoveTo(x, y float64) { r.record(Op{Name: "MoveTo", Args: []float64{x, y}}) }
func (r *Recorder) LineTo(x, y float64) { r.record(Op{Name: "LineTo", Args: []float64{x, y}}) }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record(Op{Name: "Arc", Args: []float64{x, y, radius, startAngle, endAngle}})
}

func (r *Recorder) Fill() {
	r.record(Op{Name: "Fill", Color: r.styles.Current.Fill})
}

func (r *Recorder) Stroke() {
	current := r.styles.Current
	r.record(Op{
		Name:  "Stroke",
		Args:  []float64{current.LineWidth},
		Color: current.Stroke,
		Dash:  append([]float64(nil), current.Dash...),
	})
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.record(Op{Name: "FillText", Text: s, Args: []float64{x, y}, Color: r.styles.Current.Fill})
}

// Texts returns every string drawn with FillText, in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Ops {
		if op.Name == "FillText" {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// Filter returns the ops with the given name, in order.
func (r *Recorder) Filter(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

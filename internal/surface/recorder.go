package surface

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

// Op is one recorded drawing call.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	if o.Text != "" {
		fmt.Fprintf(&b, " %q", o.Text)
	}
	for _, a := range o.Args {
		fmt.Fprintf(&b, " %g", a)
	}
	return b.String()
}

// Recorder is a headless Context that logs every call. Text measures
// runeCount*size/2 so widths are predictable.
type Recorder struct {
	Ops []Op

	m      Matrix
	stroke color.Color
	fill   color.Color
	family string
	size   float64
}

// NewRecorder returns an empty recorder with the identity transform.
func NewRecorder() *Recorder {
	return &Recorder{m: Identity, stroke: color.Black, fill: color.Black, size: 10}
}

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

// Reset forgets recorded calls but keeps the transform and styles.
func (r *Recorder) Reset() { r.Ops = nil }

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls named name.
func (r *Recorder) Find(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) BeginPath()          { r.add("BeginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("LineTo", x, y) }

func (r *Recorder) Arc(cx, cy, rad, start, end float64) {
	r.add("Arc", cx, cy, rad, start, end)
}

func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Name: "Stroke", Color: r.stroke})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "StrokeRect", Args: []float64{x, y, w, h}, Color: r.stroke})
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.add("ClearRect", x, y, w, h) }

func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Recorder) SetFillColor(c color.Color)   { r.fill = c }

func (r *Recorder) SetFont(family string, size float64) {
	r.family = family
	r.size = size
	r.Ops = append(r.Ops, Op{Name: "SetFont", Args: []float64{size}, Text: family})
}

func (r *Recorder) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.size / 2
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "FillText", Args: []float64{x, y}, Text: s, Color: r.fill})
}

func (r *Recorder) Transform() Matrix { return r.m }

func (r *Recorder) Translate(dx, dy float64) {
	r.m = r.m.Mul(Translation(dx, dy))
	r.add("Translate", dx, dy)
}

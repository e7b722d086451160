package surface

import (
	"image/color"
	"math"
	"testing"
)

func TestMatrixTranslateAccumulates(t *testing.T) {
	m := Identity.Mul(Translation(10, 5)).Mul(Translation(-3, 2))
	if m.E != 7 || m.F != 7 {
		t.Fatalf("translation = (%v,%v), want (7,7)", m.E, m.F)
	}
	x, y := m.Apply(1, 1)
	if x != 8 || y != 8 {
		t.Fatalf("Apply = (%v,%v), want (8,8)", x, y)
	}
}

func TestRasterStrokePaintsPixels(t *testing.T) {
	r := NewRaster(40, 40)
	r.SetStrokeColor(color.RGBA{R: 255, A: 255})
	r.LineWidth = 3
	r.BeginPath()
	r.MoveTo(5, 20)
	r.LineTo(35, 20)
	r.Stroke()
	if c := r.Image().RGBAAt(20, 20); c.R == 0 {
		t.Fatalf("expected red on the stroked line, got %+v", c)
	}
	if c := r.Image().RGBAAt(20, 5); c.A != 0 {
		t.Fatalf("expected untouched pixel away from the line, got %+v", c)
	}
}

func TestRasterTranslateMovesDrawing(t *testing.T) {
	r := NewRaster(40, 40)
	r.Translate(10, 0)
	r.StrokeRect(2, 2, 10, 10)
	if c := r.Image().RGBAAt(12, 7); c.A == 0 {
		t.Fatalf("left edge should land at x=12 after translating, got %+v", c)
	}
	r.ClearRect(0, 0, 30, 40)
	if c := r.Image().RGBAAt(12, 7); c.A != 0 {
		t.Fatalf("ClearRect left %+v behind", c)
	}
}

func TestRasterMeasureText(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetFont("mono", 20)
	short := r.MeasureText("ab")
	long := r.MeasureText("abcd")
	if short <= 0 || math.Abs(long-2*short) > 1 {
		t.Fatalf("mono widths: %v and %v", short, long)
	}
}

func TestRecorderMeasure(t *testing.T) {
	r := NewRecorder()
	r.SetFont("sans", 16)
	if got := r.MeasureText("héllo"); got != 40 {
		t.Fatalf("MeasureText = %v, want 40", got)
	}
}

func TestNormalizeFamily(t *testing.T) {
	for in, want := range map[string]string{"": "sans", "Monospace": "mono", "bold": "bold", "Comic": "sans"} {
		if got := normalizeFamily(in); got != want {
			t.Errorf("normalizeFamily(%q) = %q, want %q", in, got, want)
		}
	}
}

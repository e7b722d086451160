// Package surface is the immediate-mode 2D drawing API the canvas paints
// through, plus a raster and a recording implementation.
package surface

import "image/color"

// Context is a 2D immediate-mode drawing surface. Coordinates passed in are
// user space; the current transform maps them to device pixels.
type Context interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc from angle start to end, in radians.
	Arc(cx, cy, r, start, end float64)
	Stroke()
	StrokeRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetFont(family string, size float64)
	MeasureText(s string) float64
	FillText(s string, x, y float64)
	Transform() Matrix
	Translate(dx, dy float64)
}

// Matrix is a 2D affine transform
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix struct{ A, B, C, D, E, F float64 }

// Identity is the transform that changes nothing.
var Identity = Matrix{A: 1, D: 1}

// Translation returns a pure translation.
func Translation(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Mul returns m·n, applying n first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Nop discards all drawing. Its transform is the identity and text measures
// zero wide. It stands in when no real surface is available.
type Nop struct{}

func (Nop) BeginPath()                          {}
func (Nop) MoveTo(x, y float64)                 {}
func (Nop) LineTo(x, y float64)                 {}
func (Nop) Arc(cx, cy, r, start, end float64)   {}
func (Nop) Stroke()                             {}
func (Nop) StrokeRect(x, y, w, h float64)       {}
func (Nop) ClearRect(x, y, w, h float64)        {}
func (Nop) SetStrokeColor(c color.Color)        {}
func (Nop) SetFillColor(c color.Color)          {}
func (Nop) SetFont(family string, size float64) {}
func (Nop) MeasureText(s string) float64        { return 0 }
func (Nop) FillText(s string, x, y float64)     {}
func (Nop) Transform() Matrix                   { return Identity }
func (Nop) Translate(dx, dy float64)            {}

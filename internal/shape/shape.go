// Package shape defines the drawable shapes and the ordered store that holds
// them together with the running bounding box of all ink.
package shape

import (
	"fmt"
	"image/color"

	"github.com/example/inkpad/internal/geom"
)

// Kind tags a shape variant.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindPath
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is one of Rect, Circle, Path or Text. The set is closed: the unexported
// method keeps other packages from adding variants, so type switches over
// the four types are exhaustive.
type Shape interface {
	Kind() Kind
	shape()
}

// Rect is an axis-aligned rectangle. Width and Height keep the sign of the
// drag that produced them.
type Rect struct {
	Location      geom.Point
	Width, Height float64
}

// Circle is a circle outline.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Path is a freehand polyline with at least one point.
type Path struct {
	Points []geom.Point
}

// TextStyle is the font and color a text label was created with.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Color      color.RGBA
}

// Text is a single line label. Location is the baseline origin and Width is
// the measured advance cached at creation or last edit.
type Text struct {
	Location geom.Point
	Text     string
	Width    float64
	Style    TextStyle
}

func (Rect) Kind() Kind   { return KindRect }
func (Circle) Kind() Kind { return KindCircle }
func (Path) Kind() Kind   { return KindPath }
func (Text) Kind() Kind   { return KindText }

func (Rect) shape()   {}
func (Circle) shape() {}
func (Path) shape()   {}
func (Text) shape()   {}

// Box returns the layout box of the label for a given device pixel ratio:
// x spans [X, X+Width] and y spans [Y-FontSize*dpr, Y].
func (t Text) Box(dpr float64) (x0, y0, x1, y1 float64) {
	return t.Location.X, t.Location.Y - t.Style.FontSize*dpr, t.Location.X + t.Width, t.Location.Y
}

package appstate

import (
	"image"
	"image/color"

	"github.com/example/inkpad/internal/canvas"
	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/surface"
)

// element is the drawing area of the window. Its backing raster is scaled
// back to client pixels when the window is painted.
type element struct {
	rect      canvas.ClientRect
	dpr       float64
	paper     color.Color
	lineWidth float64
	raster    *surface.Raster
	events    input.Bus
}

var _ canvas.Element = (*element)(nil)

func (e *element) ClientRect() canvas.ClientRect { return e.rect }
func (e *element) DevicePixelRatio() float64     { return e.dpr }

func (e *element) SetBackingSize(w, h int) {
	e.raster = surface.NewRaster(w, h)
	e.raster.Background = e.paper
	e.raster.LineWidth = e.lineWidth * e.dpr
	e.raster.ClearRect(0, 0, float64(w), float64(h))
}

func (e *element) BackingSize() (int, int) {
	if e.raster == nil {
		return 0, 0
	}
	b := e.raster.Image().Bounds()
	return b.Dx(), b.Dy()
}

func (e *element) Context() surface.Context {
	if e.raster == nil {
		return nil
	}
	return e.raster
}

func (e *element) Events() *input.Bus { return &e.events }

// bounds is the client rectangle in window pixels.
func (e *element) bounds() image.Rectangle {
	x, y := int(e.rect.Left), int(e.rect.Top)
	return image.Rect(x, y, x+int(e.rect.Width), y+int(e.rect.Height))
}

func (e *element) contains(x, y float64) bool {
	return image.Pt(int(x), int(y)).In(e.bounds())
}

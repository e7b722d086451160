package canvas

import (
	"image/color"
	"math"

	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/shape"
	"github.com/example/inkpad/internal/surface"
)

// redraw clears the border plus margin and paints every shape, the one at
// index highlight in the highlight color. It also attaches or drops the
// delete key listener to match.
func (c *Controller) redraw(highlight int) {
	ctx := c.context()
	b := c.store.Border()
	m := c.clearMargin
	ctx.ClearRect(b.Left-m, b.Top-m, b.Right-b.Left+2*m, b.Bottom-b.Top+2*m)

	for i := 0; i < c.store.Len(); i++ {
		col := c.palette.Stroke
		if i == highlight {
			col = c.palette.Highlight
		}
		c.paint(ctx, c.store.At(i), col, i == highlight)
	}
	c.setHighlight(highlight)
}

func (c *Controller) paint(ctx surface.Context, sh shape.Shape, col color.Color, highlighted bool) {
	switch s := sh.(type) {
	case shape.Path:
		ctx.SetStrokeColor(col)
		ctx.BeginPath()
		ctx.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.Stroke()
	case shape.Rect:
		ctx.SetStrokeColor(col)
		ctx.StrokeRect(s.Location.X, s.Location.Y, s.Width, s.Height)
	case shape.Circle:
		ctx.SetStrokeColor(col)
		ctx.BeginPath()
		ctx.Arc(s.Center.X, s.Center.Y, s.Radius, 0, 2*math.Pi)
		ctx.Stroke()
	case shape.Text:
		fill := color.Color(s.Style.Color)
		if highlighted {
			fill = col
		}
		ctx.SetFillColor(fill)
		ctx.SetFont(s.Style.FontFamily, s.Style.FontSize*c.dpr())
		ctx.FillText(s.Text, s.Location.X, s.Location.Y)
	}
}

func (c *Controller) setHighlight(i int) {
	c.highlight = i
	switch {
	case i != NoHighlight && c.deleteSub == nil:
		c.deleteSub = c.window.Subscribe(c.keyDown, input.KeyDown)
	case i == NoHighlight && c.deleteSub != nil:
		c.deleteSub.Release()
		c.deleteSub = nil
	}
}

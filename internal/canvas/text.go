package canvas

import (
	"github.com/example/inkpad/internal/geom"
	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/shape"
)

func (c *Controller) measure(s string, style shape.TextStyle) float64 {
	ctx := c.context()
	ctx.SetFont(style.FontFamily, style.FontSize*c.dpr())
	return ctx.MeasureText(s)
}

func (c *Controller) placeText(at geom.Point) {
	c.prompter.Prompt("Text", "", func(s string, ok bool) {
		if !ok || s == "" {
			return
		}
		style := c.textStyle
		t := shape.Text{Location: at, Text: s, Width: c.measure(s, style), Style: style}
		i := c.store.Append(t)
		x0, y0, x1, y1 := t.Box(c.dpr())
		c.store.Expand(geom.Pt(x0, y0), geom.Pt(x1, y1))
		c.log.Debug("text committed", "index", i, "width", t.Width)
		c.redraw(c.highlight)
		c.changed(ChangeAdd, i, shape.KindText)
	})
}

// doubleClick re-opens the highlighted text label for editing when the
// click lands inside it.
func (c *Controller) doubleClick(e input.Event) {
	if c.tool != ToolSelect {
		return
	}
	sh, i, ok := c.Selected()
	if !ok {
		return
	}
	orig, isText := sh.(shape.Text)
	if !isText {
		return
	}
	p := c.newMapper().toSurface(e.X, e.Y)
	x0, y0, x1, y1 := orig.Box(c.dpr())
	if !geom.PointInRect(p, x0, y0, x1, y1) {
		return
	}
	c.prompter.Prompt("Edit text", orig.Text, func(s string, ok bool) {
		if !ok || s == "" || s == orig.Text {
			return
		}
		if i >= c.store.Len() {
			return
		}
		if cur, same := c.store.At(i).(shape.Text); !same || cur != orig {
			return
		}
		if err := c.store.SetText(i, s, c.measure(s, orig.Style)); err != nil {
			c.log.Warn("text edit failed", "err", err)
			return
		}
		t := c.store.At(i).(shape.Text)
		x0, y0, x1, y1 = t.Box(c.dpr())
		c.store.Expand(geom.Pt(x0, y0), geom.Pt(x1, y1))
		c.log.Debug("text edited", "index", i, "width", t.Width)
		c.redraw(c.highlight)
		c.changed(ChangeEdit, i, shape.KindText)
	})
}

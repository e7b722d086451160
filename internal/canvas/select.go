package canvas

import (
	"fmt"
	"math"

	"github.com/example/inkpad/internal/geom"
	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/shape"
)

// Nearest returns the index of the shape closest to p, or NoHighlight when
// nothing is within the selection threshold. A text label containing p wins
// outright; when several do, the topmost one wins.
func (c *Controller) Nearest(p geom.Point) int {
	best, bestDist := NoHighlight, c.threshold
	dpr := c.dpr()
	for i := 0; i < c.store.Len(); i++ {
		var d float64
		switch s := c.store.At(i).(type) {
		case shape.Rect:
			d = geom.DistToRect(p, s.Location, s.Width, s.Height)
		case shape.Path:
			d = geom.DistToPolyline(p, s.Points)
		case shape.Circle:
			d = math.Abs(p.Distance(s.Center) - s.Radius)
		case shape.Text:
			x0, y0, x1, y1 := s.Box(dpr)
			if geom.PointInRect(p, x0, y0, x1, y1) {
				best, bestDist = i, 0
			}
			continue
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (c *Controller) selectAt(p geom.Point) {
	i := c.Nearest(p)
	if i == NoHighlight {
		c.log.Debug("select missed", "x", p.X, "y", p.Y)
	} else {
		c.log.Debug("selected", "index", i, "kind", c.store.At(i).Kind())
	}
	c.redraw(i)
}

func (c *Controller) keyDown(e input.Event) {
	if !c.deleteKeys[e.Key] || c.tool != ToolSelect || c.asking {
		return
	}
	sh, i, ok := c.Selected()
	if !ok {
		return
	}
	c.asking = true
	c.prompter.Confirm(fmt.Sprintf("Delete %s #%d?", sh.Kind(), i), func(yes bool) {
		c.asking = false
		if !yes {
			return
		}
		if c.highlight != i || i >= c.store.Len() {
			// selection moved on while the question was open
			return
		}
		if err := c.store.Delete(i); err != nil {
			c.log.Warn("delete failed", "err", err)
			return
		}
		c.log.Info("shape deleted", "index", i, "kind", sh.Kind())
		c.redraw(NoHighlight)
		c.changed(ChangeDelete, i, sh.Kind())
	})
}

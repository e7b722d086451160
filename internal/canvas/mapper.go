package canvas

import "github.com/example/inkpad/internal/geom"

// mapper converts client coordinates to surface coordinates. It is captured
// once per gesture since panning changes the translation.
type mapper struct {
	left, top      float64
	scaleX, scaleY float64
	tx, ty         float64
}

func (c *Controller) newMapper() mapper {
	r := c.el.ClientRect()
	w, h := c.el.BackingSize()
	m := mapper{left: r.Left, top: r.Top, scaleX: 1, scaleY: 1}
	if r.Width > 0 {
		m.scaleX = float64(w) / r.Width
	}
	if r.Height > 0 {
		m.scaleY = float64(h) / r.Height
	}
	t := c.context().Transform()
	m.tx, m.ty = t.E, t.F
	return m
}

func (m mapper) toSurface(x, y float64) geom.Point {
	return geom.Point{
		X: (x-m.left)*m.scaleX - m.tx,
		Y: (y-m.top)*m.scaleY - m.ty,
	}
}

// delta scales a client-space offset to surface units.
func (m mapper) delta(dx, dy float64) (float64, float64) {
	return dx * m.scaleX, dy * m.scaleY
}

package canvas

import (
	"math"

	"github.com/example/inkpad/internal/geom"
	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/shape"
)

// tracker is the tool specific half of a drag gesture.
type tracker interface {
	// update consumes the client points queued since the last frame, oldest
	// first. It is never called with an empty slice.
	update(pts []geom.Point)
	commit()
}

// gesture owns the window subscription of one drag from arm to release.
type gesture struct {
	c       *Controller
	tool    Tool
	m       mapper
	origin  geom.Point // client coordinates of the pointer-down
	start   geom.Point // the same point on the surface
	t       tracker
	sub     *input.Subscription
	queue   []geom.Point
	pending bool
	done    bool
}

func (c *Controller) pointerDown(e input.Event) {
	if c.active != nil {
		// the previous gesture has not been released yet
		return
	}
	m := c.newMapper()
	start := m.toSurface(e.X, e.Y)
	switch c.tool {
	case ToolPath, ToolRect, ToolCircle, ToolMove:
		c.arm(m, e, start)
	case ToolSelect:
		c.selectAt(start)
	case ToolText:
		c.placeText(start)
	}
}

func (c *Controller) arm(m mapper, e input.Event, start geom.Point) {
	g := &gesture{c: c, tool: c.tool, m: m, origin: geom.Pt(e.X, e.Y), start: start}
	switch g.tool {
	case ToolPath:
		g.t = newPathTracker(g)
	case ToolRect:
		g.t = &rectTracker{g: g}
	case ToolCircle:
		g.t = &circleTracker{g: g}
	case ToolMove:
		g.t = &moveTracker{g: g, last: g.origin}
	}
	g.sub = c.window.Subscribe(g.handle, input.PointerMove, input.TouchMove, input.PointerUp, input.TouchEnd)
	c.active = g
	c.log.Debug("gesture armed", "tool", g.tool, "x", start.X, "y", start.Y)
}

func (g *gesture) handle(e input.Event) {
	switch e.Kind {
	case input.PointerMove, input.TouchMove:
		g.queue = append(g.queue, geom.Pt(e.X, e.Y))
		if !g.pending {
			g.pending = true
			g.c.frames.RequestFrame(g.frame)
		}
	case input.PointerUp, input.TouchEnd:
		g.finish()
	}
}

func (g *gesture) frame() {
	g.pending = false
	if g.done {
		return
	}
	g.drain()
}

func (g *gesture) drain() {
	if len(g.queue) == 0 {
		return
	}
	pts := g.queue
	g.queue = nil
	g.t.update(pts)
}

// finish applies moves still waiting for a frame, commits and releases. The
// release runs even if commit panics.
func (g *gesture) finish() {
	if g.done {
		return
	}
	defer g.release()
	g.drain()
	g.done = true
	g.t.commit()
}

func (g *gesture) release() {
	g.done = true
	g.sub.Release()
	if g.c.active == g {
		g.c.active = nil
	}
}

// extent is the signed surface-space size of the drag to client point p.
func (g *gesture) extent(p geom.Point) (w, h float64) {
	return g.m.delta(p.X-g.origin.X, p.Y-g.origin.Y)
}

type pathTracker struct {
	g      *gesture
	points []geom.Point
}

func newPathTracker(g *gesture) *pathTracker {
	ctx := g.c.context()
	ctx.SetStrokeColor(g.c.palette.Stroke)
	g.c.store.Expand(g.start)
	return &pathTracker{g: g, points: []geom.Point{g.start}}
}

func (t *pathTracker) update(pts []geom.Point) {
	ctx := t.g.c.context()
	ctx.SetStrokeColor(t.g.c.palette.Stroke)
	for _, cp := range pts {
		p := t.g.m.toSurface(cp.X, cp.Y)
		last := t.points[len(t.points)-1]
		if p == last {
			continue
		}
		t.points = append(t.points, p)
		t.g.c.store.Expand(p)
		ctx.BeginPath()
		ctx.MoveTo(last.X, last.Y)
		ctx.LineTo(p.X, p.Y)
		ctx.Stroke()
	}
}

func (t *pathTracker) commit() {
	if len(t.points) == 0 {
		return
	}
	c := t.g.c
	i := c.store.Append(shape.Path{Points: t.points})
	c.log.Debug("path committed", "index", i, "points", len(t.points))
	c.changed(ChangeAdd, i, shape.KindPath)
}

type rectTracker struct {
	g             *gesture
	width, height float64
}

func (t *rectTracker) update(pts []geom.Point) {
	t.width, t.height = t.g.extent(pts[len(pts)-1])
	c := t.g.c
	c.redraw(NoHighlight)
	ctx := c.context()
	ctx.SetStrokeColor(c.palette.Stroke)
	ctx.StrokeRect(t.g.start.X, t.g.start.Y, t.width, t.height)
}

func (t *rectTracker) commit() {
	c := t.g.c
	if t.width == 0 || t.height == 0 {
		c.log.Debug("rect discarded", "width", t.width, "height", t.height)
		return
	}
	s := t.g.start
	i := c.store.Append(shape.Rect{Location: s, Width: t.width, Height: t.height})
	c.store.Expand(s, s.Add(geom.Pt(t.width, t.height)))
	c.log.Debug("rect committed", "index", i, "width", t.width, "height", t.height)
	c.changed(ChangeAdd, i, shape.KindRect)
}

// circleTracker fits a circle into the square spanned by the drag. span is
// the side of that square, so the radius is span/2.
type circleTracker struct {
	g                    *gesture
	span                 float64
	horizontal, vertical float64
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

func (t *circleTracker) center() geom.Point {
	return t.g.start.Add(geom.Pt(t.span*t.horizontal/2, t.span*t.vertical/2))
}

func (t *circleTracker) update(pts []geom.Point) {
	w, h := t.g.extent(pts[len(pts)-1])
	t.span = math.Min(math.Abs(w), math.Abs(h))
	t.horizontal, t.vertical = sign(w), sign(h)
	c := t.g.c
	c.redraw(NoHighlight)
	ctx := c.context()
	ctx.SetStrokeColor(c.palette.Stroke)
	ctx.BeginPath()
	ctr := t.center()
	ctx.Arc(ctr.X, ctr.Y, t.span/2, 0, 2*math.Pi)
	ctx.Stroke()
}

func (t *circleTracker) commit() {
	c := t.g.c
	if t.span == 0 {
		c.log.Debug("circle discarded")
		return
	}
	ctr := t.center()
	r := t.span / 2
	i := c.store.Append(shape.Circle{Center: ctr, Radius: r})
	c.store.Expand(ctr.Sub(geom.Pt(r, r)), ctr.Add(geom.Pt(r, r)))
	c.log.Debug("circle committed", "index", i, "radius", r)
	c.changed(ChangeAdd, i, shape.KindCircle)
}

// moveTracker pans the view. It never touches the store.
type moveTracker struct {
	g    *gesture
	last geom.Point
}

func (t *moveTracker) update(pts []geom.Point) {
	p := pts[len(pts)-1]
	dx, dy := t.g.m.delta(p.X-t.last.X, p.Y-t.last.Y)
	t.last = p
	c := t.g.c
	c.context().Translate(dx, dy)
	c.redraw(c.highlight)
}

func (t *moveTracker) commit() {
	m := t.g.c.context().Transform()
	t.g.c.log.Debug("pan finished", "tx", m.E, "ty", m.F)
}

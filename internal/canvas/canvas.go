// Package canvas is the drawing engine: it owns the shape store, turns
// pointer gestures into shapes according to the active tool, and repaints
// through a surface.Context.
package canvas

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"github.com/example/inkpad/internal/geom"
	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/log"
	"github.com/example/inkpad/internal/shape"
	"github.com/example/inkpad/internal/surface"
)

// Tool selects what a pointer-down on the canvas does.
type Tool int

const (
	ToolNone Tool = iota
	ToolPath
	ToolRect
	ToolCircle
	ToolMove
	ToolSelect
	ToolText
)

var toolNames = map[Tool]string{
	ToolNone:   "none",
	ToolPath:   "path",
	ToolRect:   "rect",
	ToolCircle: "circle",
	ToolMove:   "move",
	ToolSelect: "select",
	ToolText:   "text",
}

func (t Tool) String() string {
	if n, ok := toolNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool accepts the names printed by Tool.String.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, n := range toolNames {
		if n == s {
			return t, nil
		}
	}
	return ToolNone, fmt.Errorf("unknown tool %q", s)
}

// NoHighlight means no shape is selected.
const NoHighlight = -1

// ClientRect is the element's on-screen box in client coordinates.
type ClientRect struct {
	Left, Top, Width, Height float64
}

// Element is the host widget the canvas draws into.
type Element interface {
	ClientRect() ClientRect
	DevicePixelRatio() float64
	SetBackingSize(w, h int)
	BackingSize() (w, h int)
	// Context may return nil, in which case drawing is skipped.
	Context() surface.Context
	// Events delivers pointer-down, touch-start and double-click events
	// that hit the element.
	Events() *input.Bus
}

// Prompter asks the operator for input. Answers may arrive later, from the
// host's event loop.
type Prompter interface {
	Prompt(message, initial string, done func(text string, ok bool))
	Confirm(message string, done func(ok bool))
}

// Palette holds the stroke colors.
type Palette struct {
	Stroke    color.Color
	Highlight color.Color
}

// ChangeOp names a store mutation reported to a ChangeFunc.
type ChangeOp string

const (
	ChangeAdd    ChangeOp = "add"
	ChangeEdit   ChangeOp = "edit"
	ChangeDelete ChangeOp = "delete"
)

// Change describes a committed mutation of the store.
type Change struct {
	Op    ChangeOp
	Index int
	Kind  shape.Kind
}

// Controller is a mounted canvas. It is not safe for concurrent use; all
// calls and events must come from the host's event loop.
type Controller struct {
	el       Element
	window   *input.Bus
	frames   input.Scheduler
	prompter Prompter
	log      *slog.Logger
	onChange func(Change)

	palette     Palette
	textStyle   shape.TextStyle
	threshold   float64
	clearMargin float64
	deleteKeys  map[string]bool

	store     *shape.Store
	tool      Tool
	highlight int
	active    *gesture
	deleteSub *input.Subscription
	elSubs    []*input.Subscription
	asking    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithWindow sets the bus delivering window-wide move, up and key events.
func WithWindow(b *input.Bus) Option { return func(c *Controller) { c.window = b } }

// WithScheduler sets the animation frame source.
func WithScheduler(s input.Scheduler) Option { return func(c *Controller) { c.frames = s } }

// WithPrompter sets the text and confirmation provider.
func WithPrompter(p Prompter) Option { return func(c *Controller) { c.prompter = p } }

// WithPalette overrides the default black and red strokes.
func WithPalette(p Palette) Option { return func(c *Controller) { c.palette = p } }

// WithTextStyle sets the style given to new text labels.
func WithTextStyle(s shape.TextStyle) Option { return func(c *Controller) { c.textStyle = s } }

// WithSelectThreshold sets how close a click must be to select a shape.
func WithSelectThreshold(d float64) Option { return func(c *Controller) { c.threshold = d } }

// WithClearMargin sets the padding cleared around the border on redraw.
func WithClearMargin(m float64) Option { return func(c *Controller) { c.clearMargin = m } }

// WithDeleteKeys replaces the keys that delete the highlighted shape.
func WithDeleteKeys(keys ...string) Option {
	return func(c *Controller) {
		c.deleteKeys = map[string]bool{}
		for _, k := range keys {
			c.deleteKeys[k] = true
		}
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.log = l } }

// WithChangeHandler registers fn to hear about every store mutation.
func WithChangeHandler(fn func(Change)) Option { return func(c *Controller) { c.onChange = fn } }

type immediate struct{}

func (immediate) RequestFrame(fn func()) { fn() }

type declineAll struct{}

func (declineAll) Prompt(_, _ string, done func(string, bool)) { done("", false) }
func (declineAll) Confirm(_ string, done func(bool))           { done(false) }

// Init mounts a canvas on el. The backing store is sized to the client rect
// times the device pixel ratio and the border starts at that extent.
func Init(el Element, opts ...Option) *Controller {
	c := &Controller{
		el:          el,
		frames:      immediate{},
		prompter:    declineAll{},
		palette:     Palette{Stroke: color.Black, Highlight: color.RGBA{R: 0xff, A: 0xff}},
		textStyle:   shape.TextStyle{FontFamily: "sans", FontSize: 16, Color: color.RGBA{A: 0xff}},
		threshold:   10,
		clearMargin: 100,
		deleteKeys:  map[string]bool{input.KeyDelete: true, input.KeyBackspace: true},
		highlight:   NoHighlight,
	}
	for _, o := range opts {
		o(c)
	}
	if c.window == nil {
		c.window = &input.Bus{}
	}
	if c.log == nil {
		c.log = log.WithComponent("canvas")
	}

	r := el.ClientRect()
	dpr := c.dpr()
	w, h := int(math.Round(r.Width*dpr)), int(math.Round(r.Height*dpr))
	el.SetBackingSize(w, h)
	c.store = shape.NewStore(float64(w), float64(h))

	ev := el.Events()
	c.elSubs = append(c.elSubs,
		ev.Subscribe(c.pointerDown, input.PointerDown, input.TouchStart),
		ev.Subscribe(c.doubleClick, input.DoubleClick),
	)
	c.log.Debug("canvas mounted", "width", w, "height", h, "dpr", dpr)
	return c
}

// SetTool switches the active tool. A gesture already in progress finishes
// with the tool it started with.
func (c *Controller) SetTool(t Tool) {
	if t == c.tool {
		return
	}
	c.log.Debug("tool changed", "from", c.tool, "to", t)
	c.tool = t
}

// Tool returns the active tool.
func (c *Controller) Tool() Tool { return c.tool }

// Highlight returns the highlighted shape index or NoHighlight.
func (c *Controller) Highlight() int { return c.highlight }

// Store exposes the shapes read-only. Use Add to place shapes.
func (c *Controller) Store() shape.View { return c.store }

// Add places sh on top of the drawing as a tool commit would: the border
// grows to cover it and the change handler hears about it. It does not
// redraw.
func (c *Controller) Add(sh shape.Shape) int {
	i := c.store.Append(sh)
	switch s := sh.(type) {
	case shape.Rect:
		c.store.Expand(s.Location, s.Location.Add(geom.Pt(s.Width, s.Height)))
	case shape.Circle:
		c.store.Expand(s.Center.Sub(geom.Pt(s.Radius, s.Radius)), s.Center.Add(geom.Pt(s.Radius, s.Radius)))
	case shape.Path:
		c.store.Expand(s.Points...)
	case shape.Text:
		x0, y0, x1, y1 := s.Box(c.dpr())
		c.store.Expand(geom.Pt(x0, y0), geom.Pt(x1, y1))
	}
	c.changed(ChangeAdd, i, sh.Kind())
	return i
}

// Selected returns the highlighted shape.
func (c *Controller) Selected() (shape.Shape, int, bool) {
	if c.highlight == NoHighlight || c.highlight >= c.store.Len() {
		return nil, NoHighlight, false
	}
	return c.store.At(c.highlight), c.highlight, true
}

// Redraw repaints everything, keeping the current highlight.
func (c *Controller) Redraw() { c.redraw(c.highlight) }

// Close drops every subscription the controller holds, including those of a
// gesture in flight.
func (c *Controller) Close() {
	for _, s := range c.elSubs {
		s.Release()
	}
	c.elSubs = nil
	if c.active != nil {
		c.active.release()
	}
	c.deleteSub.Release()
	c.deleteSub = nil
}

func (c *Controller) dpr() float64 {
	if d := c.el.DevicePixelRatio(); d > 0 {
		return d
	}
	return 1
}

func (c *Controller) context() surface.Context {
	if ctx := c.el.Context(); ctx != nil {
		return ctx
	}
	return surface.Nop{}
}

func (c *Controller) changed(op ChangeOp, i int, k shape.Kind) {
	if c.onChange != nil {
		c.onChange(Change{Op: op, Index: i, Kind: k})
	}
}

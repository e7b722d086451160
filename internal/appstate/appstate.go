package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/inkpad/internal/canvas"
	"github.com/example/inkpad/internal/theme"
)

const (
	buttonHeight = 24
	bottomHeight = 24
	minToolbar   = 48
	title        = "inkpad"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button is an interactive piece of window chrome.
type Button interface {
	Draw(dst *image.RGBA, th *theme.Theme, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton remembers the rendering of each state of the wrapped Button
// until its rectangle changes.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	r := cb.Button.Rect()
	if cb.cache[state] == nil {
		img := image.NewRGBA(r)
		cb.Button.Draw(img, th, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, r, cb.cache[state], r.Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// ToolButton selects a canvas tool.
type ToolButton struct {
	label    string
	tool     canvas.Tool
	rect     image.Rectangle
	onSelect func()
}

func (tb *ToolButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	fillButton(dst, tb.rect, th, state)
	drawLabel(dst, tb.label, tb.rect.Min.X+4, tb.rect.Min.Y+16, th.ButtonText)
}

func (tb *ToolButton) Rect() image.Rectangle     { return tb.rect }
func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// Shortcut is a clickable hint in the status bar.
type Shortcut struct {
	label  string
	action func()
	rect   image.Rectangle
}

func (s *Shortcut) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	fillButton(dst, s.rect, th, state)
	strokeRect(dst, s.rect, th.ButtonBorder)
	drawLabel(dst, s.label, s.rect.Min.X+2, s.rect.Min.Y+14, th.ButtonText)
}

func (s *Shortcut) Rect() image.Rectangle     { return s.rect }
func (s *Shortcut) SetRect(r image.Rectangle) { s.rect = r }

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}

var toolLabels = []struct {
	label string
	tool  canvas.Tool
	key   rune
}{
	{"P:Path", canvas.ToolPath, 'p'},
	{"R:Rect", canvas.ToolRect, 'r'},
	{"C:Circle", canvas.ToolCircle, 'c'},
	{"M:Move", canvas.ToolMove, 'm'},
	{"S:Select", canvas.ToolSelect, 's'},
	{"T:Text", canvas.ToolText, 't'},
}

// toolbarWidth fits the program title and every tool label.
func toolbarWidth() int {
	width := minToolbar
	for _, s := range append([]string{title}, labelsOf()...) {
		if w := textWidth(s) + 8; w > width {
			width = w
		}
	}
	return width
}

func labelsOf() []string {
	out := make([]string, len(toolLabels))
	for i, t := range toolLabels {
		out[i] = t.label
	}
	return out
}

// toolIndexAt returns the toolbar button under y, or -1.
func toolIndexAt(y, count int) int {
	y -= buttonHeight // title row
	if y < 0 {
		return -1
	}
	if idx := y / buttonHeight; idx < count {
		return idx
	}
	return -1
}

func textWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

func drawLabel(dst *image.RGBA, s string, x, y int, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

func fillButton(dst *image.RGBA, r image.Rectangle, th *theme.Theme, state ButtonState) {
	c := th.ButtonBackground
	switch state {
	case StateHover:
		c = blend(th.ButtonBackground, th.ButtonActive)
	case StatePressed:
		c = th.ButtonActive
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: uint8((int(a.A) + int(b.A)) / 2),
	}
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

package appstate

import (
	"image"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"

	"github.com/example/inkpad/internal/canvas"
	"github.com/example/inkpad/internal/clipboard"
	"github.com/example/inkpad/internal/geom"
	"github.com/example/inkpad/internal/notify"
	"github.com/example/inkpad/internal/platform"
	"github.com/example/inkpad/internal/shape"
)

type harness struct {
	t     *testing.T
	s     *session
	queue []any
	clip  *clipboard.Memory
	sent  []string
	clock time.Time
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{t: t, clip: &clipboard.Memory{}, clock: time.Unix(1700000000, 0)}
	n := notify.New(func(_, body string, _ platform.Options) error {
		h.sent = append(h.sent, body)
		return nil
	})
	n.Enable(notify.EventCopy, true)
	n.Enable(notify.EventDelete, true)
	base := []Option{WithSize(300, 240), WithClipboard(h.clip), WithNotifier(n)}
	a := New(append(base, opts...)...)
	h.s = newSession(a, func(e any) { h.queue = append(h.queue, e) })
	h.s.now = func() time.Time { return h.clock }
	return h
}

// pump delivers queued frame events the way the window loop would.
func (h *harness) pump() {
	for len(h.queue) > 0 {
		e := h.queue[0]
		h.queue = h.queue[1:]
		if _, ok := e.(frameEvent); ok {
			h.s.runFrame()
		}
	}
}

func (h *harness) mouse(dir mouse.Direction, x, y float64) {
	btn := mouse.ButtonLeft
	if dir == mouse.DirNone {
		btn = mouse.ButtonNone
	}
	h.s.handleMouse(mouse.Event{X: float32(x) + float32(h.s.toolbarW), Y: float32(y), Button: btn, Direction: dir})
}

func (h *harness) drag(x0, y0, x1, y1 float64) {
	h.mouse(mouse.DirPress, x0, y0)
	h.mouse(mouse.DirNone, x1, y1)
	h.pump()
	h.mouse(mouse.DirRelease, x1, y1)
}

func (h *harness) typeRune(r rune) {
	h.s.handleKey(key.Event{Rune: r, Direction: key.DirPress})
}

func (h *harness) press(code key.Code, mods key.Modifiers) {
	h.s.handleKey(key.Event{Rune: -1, Code: code, Modifiers: mods, Direction: key.DirPress})
}

func (h *harness) addLabel(text string) {
	style := shape.TextStyle{FontFamily: "sans", FontSize: 16}
	h.s.canvas.Add(shape.Text{Location: geom.Pt(20, 40), Text: text, Width: 30, Style: style})
}

func TestRectDrawnThroughWindowEvents(t *testing.T) {
	h := newHarness(t)
	h.typeRune('r')
	if got := h.s.canvas.Tool(); got != canvas.ToolRect {
		t.Fatalf("tool = %v, want rect", got)
	}
	h.drag(10, 10, 110, 60)

	st := h.s.canvas.Store()
	if st.Len() != 1 {
		t.Fatalf("store has %d shapes, want 1", st.Len())
	}
	want := shape.Rect{Location: geom.Pt(10, 10), Width: 100, Height: 50}
	if got := st.At(0); got != want {
		t.Errorf("shape = %+v, want %+v", got, want)
	}
}

func TestToolbarClickSelectsTool(t *testing.T) {
	h := newHarness(t)
	// second button, below the title row
	h.s.handleMouse(mouse.Event{X: 5, Y: float32(2*buttonHeight + 5), Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	if got := h.s.canvas.Tool(); got != canvas.ToolRect {
		t.Errorf("tool = %v, want rect", got)
	}
	if h.s.canvas.Store().Len() != 0 {
		t.Errorf("toolbar press reached the canvas")
	}
}

func TestToolIndexAt(t *testing.T) {
	tests := []struct {
		y, want int
	}{
		{0, -1},
		{buttonHeight - 1, -1},
		{buttonHeight, 0},
		{2*buttonHeight + 3, 1},
		{6 * buttonHeight, 5},
		{7 * buttonHeight, -1},
	}
	for _, tc := range tests {
		if got := toolIndexAt(tc.y, len(toolLabels)); got != tc.want {
			t.Errorf("toolIndexAt(%d) = %d, want %d", tc.y, got, tc.want)
		}
	}
}

func TestTextPromptCommitsLabel(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolText))
	h.mouse(mouse.DirPress, 20, 40)
	if !h.s.prompt.active() {
		t.Fatal("prompt not opened")
	}
	h.typeRune('h')
	h.typeRune('i')
	h.press(key.CodeDeleteBackspace, 0)
	h.typeRune('o')
	if got := h.s.prompt.line(); got != "Text: ho|" {
		t.Errorf("prompt line = %q", got)
	}
	h.press(key.CodeReturnEnter, 0)

	if h.s.prompt.active() {
		t.Error("prompt still open after Enter")
	}
	st := h.s.canvas.Store()
	if st.Len() != 1 {
		t.Fatalf("store has %d shapes, want 1", st.Len())
	}
	txt, ok := st.At(0).(shape.Text)
	if !ok || txt.Text != "ho" || txt.Location != geom.Pt(20, 40) {
		t.Errorf("label = %+v", st.At(0))
	}
}

func TestPromptPasteAndCancel(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolText))
	if err := h.clip.WriteText("pasted"); err != nil {
		t.Fatal(err)
	}
	h.mouse(mouse.DirPress, 20, 40)
	h.s.handleKey(key.Event{Rune: 'v', Code: key.CodeV, Modifiers: key.ModControl, Direction: key.DirPress})
	if got := h.s.prompt.buf.String(); got != "pasted" {
		t.Errorf("buffer = %q, want pasted", got)
	}
	h.press(key.CodeEscape, 0)
	if h.s.prompt.active() || h.s.canvas.Store().Len() != 0 {
		t.Errorf("escape should close the prompt without adding a label")
	}
}

func TestPromptSwallowsPresses(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolText))
	h.mouse(mouse.DirPress, 20, 40)
	h.typeRune('a')
	h.mouse(mouse.DirPress, 80, 80)
	h.typeRune('q')
	if h.s.quit {
		t.Error("q reached the shortcut table while a prompt was open")
	}
	if got := h.s.prompt.line(); got != "Text: aq|" {
		t.Errorf("prompt line = %q", got)
	}
}

func TestDeleteAfterConfirmation(t *testing.T) {
	h := newHarness(t)
	h.s.canvas.Add(shape.Rect{Location: geom.Pt(10, 10), Width: 50, Height: 20})
	h.typeRune('s')
	h.mouse(mouse.DirPress, 10, 15)
	h.mouse(mouse.DirRelease, 10, 15)
	if got := h.s.canvas.Highlight(); got != 0 {
		t.Fatalf("highlight = %d, want 0", got)
	}

	h.press(key.CodeDeleteForward, 0)
	if h.s.prompt.mode != promptConfirm {
		t.Fatal("delete did not ask for confirmation")
	}
	h.press(key.CodeReturnEnter, 0)

	if n := h.s.canvas.Store().Len(); n != 0 {
		t.Errorf("store has %d shapes after delete", n)
	}
	if len(h.sent) != 1 || h.sent[0] != "Deleted rect #0" {
		t.Errorf("notifications = %q", h.sent)
	}
}

func TestDeleteDeclined(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolSelect))
	h.s.canvas.Add(shape.Rect{Location: geom.Pt(10, 10), Width: 50, Height: 20})
	h.mouse(mouse.DirPress, 10, 15)
	h.press(key.CodeDeleteForward, 0)
	h.press(key.CodeEscape, 0)
	if n := h.s.canvas.Store().Len(); n != 1 {
		t.Errorf("store has %d shapes, want 1", n)
	}
	if len(h.sent) != 0 {
		t.Errorf("unexpected notifications %q", h.sent)
	}
}

func TestCopyLabel(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolSelect))
	h.addLabel("hi")
	h.mouse(mouse.DirPress, 30, 30)
	h.s.handleKey(key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress})

	got, err := h.clip.ReadText()
	if err != nil || got != "hi" {
		t.Errorf("clipboard = %q, %v", got, err)
	}
	if h.s.canvas.Tool() != canvas.ToolSelect {
		t.Error("ctrl+c switched tool")
	}
	if len(h.sent) != 1 || h.sent[0] != `Copied "hi" to the clipboard` {
		t.Errorf("notifications = %q", h.sent)
	}
}

func TestCopyWithoutLabel(t *testing.T) {
	h := newHarness(t)
	h.s.handleKey(key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress})
	if _, err := h.clip.ReadText(); err != clipboard.ErrEmpty {
		t.Errorf("clipboard written without a selected label: %v", err)
	}
	if h.s.message == "" {
		t.Error("no status message")
	}
}

func TestDoubleClickEditsLabel(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolSelect))
	h.addLabel("hi")
	h.mouse(mouse.DirPress, 30, 30)
	h.mouse(mouse.DirRelease, 30, 30)
	h.clock = h.clock.Add(150 * time.Millisecond)
	h.mouse(mouse.DirPress, 31, 30)
	if h.s.prompt.mode != promptText || h.s.prompt.buf.String() != "hi" {
		t.Fatalf("edit prompt = %v %q", h.s.prompt.mode, h.s.prompt.buf.String())
	}
	h.press(key.CodeDeleteBackspace, 0)
	h.press(key.CodeDeleteBackspace, 0)
	h.typeRune('y')
	h.typeRune('o')
	h.press(key.CodeReturnEnter, 0)

	txt := h.s.canvas.Store().At(0).(shape.Text)
	if txt.Text != "yo" {
		t.Errorf("label = %q, want yo", txt.Text)
	}
}

func TestTouchFollowsFirstFinger(t *testing.T) {
	h := newHarness(t, WithTool(canvas.ToolRect))
	tw := float32(h.s.toolbarW)
	h.s.handleTouch(touch.Event{X: tw + 10, Y: 10, Sequence: 0, Type: touch.TypeBegin})
	h.s.handleTouch(touch.Event{X: tw + 90, Y: 90, Sequence: 1, Type: touch.TypeBegin})
	h.s.handleTouch(touch.Event{X: tw + 60, Y: 60, Sequence: 0, Type: touch.TypeMove})
	h.pump()
	h.s.handleTouch(touch.Event{X: tw + 90, Y: 90, Sequence: 1, Type: touch.TypeEnd})
	if h.s.canvas.Store().Len() != 0 {
		t.Fatal("second finger ended the gesture")
	}
	h.s.handleTouch(touch.Event{X: tw + 60, Y: 60, Sequence: 0, Type: touch.TypeEnd})

	st := h.s.canvas.Store()
	if st.Len() != 1 {
		t.Fatalf("store has %d shapes, want 1", st.Len())
	}
	want := shape.Rect{Location: geom.Pt(10, 10), Width: 50, Height: 50}
	if got := st.At(0); got != want {
		t.Errorf("shape = %+v, want %+v", got, want)
	}
}

func TestQuitShortcut(t *testing.T) {
	h := newHarness(t)
	h.typeRune('Q')
	if !h.s.quit {
		t.Error("Q did not quit")
	}
}

func TestPaintLayout(t *testing.T) {
	h := newHarness(t)
	th := h.s.app.Theme
	dst := image.NewRGBA(image.Rect(0, 0, h.s.width, h.s.height))
	h.s.paint(dst)
	if got := dst.RGBAAt(h.s.toolbarW+1, 1); got != th.Paper {
		t.Errorf("canvas pixel = %v, want paper %v", got, th.Paper)
	}
	if got := dst.RGBAAt(1, h.s.height-bottomHeight-1); got != th.ToolbarBackground {
		t.Errorf("toolbar pixel = %v, want %v", got, th.ToolbarBackground)
	}
	if len(h.s.shortcuts) == 0 {
		t.Error("status bar has no shortcuts")
	}

	h.s.prompt.Prompt("Text", "", func(string, bool) {})
	h.s.paint(dst)
	if got := dst.RGBAAt(1, h.s.height-2); got != th.PromptBackground {
		t.Errorf("prompt bar pixel = %v, want %v", got, th.PromptBackground)
	}
}

func TestPaintScalesBackingStore(t *testing.T) {
	h := newHarness(t, WithDevicePixelRatio(2))
	if w, hh := h.s.el.BackingSize(); w != 600 || hh != 480 {
		t.Fatalf("backing = %dx%d, want 600x480", w, hh)
	}
	dst := image.NewRGBA(image.Rect(0, 0, h.s.width, h.s.height))
	h.s.paint(dst)
	if got := dst.RGBAAt(h.s.toolbarW+100, 50); got.R < 250 || got.G < 250 || got.B < 250 {
		t.Errorf("scaled canvas pixel = %v, want paper", got)
	}
}

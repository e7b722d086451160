package appstate

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"time"
	"unicode"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/touch"

	"github.com/example/inkpad/internal/canvas"
	"github.com/example/inkpad/internal/input"
	"github.com/example/inkpad/internal/shape"
)

const messageTTL = 2 * time.Second

// session routes window events to one mounted canvas and renders the window
// chrome around it. Everything runs on the window's event goroutine. An open
// prompt swallows presses and keys; moves and releases still reach a gesture
// in flight.
type session struct {
	app    *App
	send   func(any)
	log    *slog.Logger
	now    func() time.Time
	width  int
	height int

	toolbarW int
	el       *element
	window   input.Bus
	frames   *frameScheduler
	prompt   *prompter
	canvas   *canvas.Controller

	toolButtons   []*CacheButton
	shortcuts     []Shortcut
	hoverTool     int
	hoverShortcut int
	clicks        clickTracker
	touchID       touch.Sequence
	touching      bool

	actions        map[string]func()
	keyboardAction map[KeyShortcut]string

	message      string
	messageUntil time.Time
	quit         bool
}

func newSession(a *App, send func(any)) *session {
	s := &session{
		app:           a,
		send:          send,
		log:           a.log,
		now:           time.Now,
		toolbarW:      toolbarWidth(),
		hoverTool:     -1,
		hoverShortcut: -1,
	}
	s.width = s.toolbarW + a.Width
	s.height = a.Height + bottomHeight
	s.el = &element{
		rect:      canvas.ClientRect{Left: float64(s.toolbarW), Width: float64(a.Width), Height: float64(a.Height)},
		dpr:       a.DPR,
		paper:     a.Theme.Paper,
		lineWidth: a.StrokeWidth,
	}
	s.frames = &frameScheduler{send: send}
	s.prompt = &prompter{changed: s.repaint}

	style := a.TextStyle
	style.Color = a.Theme.Text
	s.canvas = canvas.Init(s.el,
		canvas.WithWindow(&s.window),
		canvas.WithScheduler(s.frames),
		canvas.WithPrompter(s.prompt),
		canvas.WithPalette(canvas.Palette{Stroke: a.Theme.Ink, Highlight: a.Theme.Highlight}),
		canvas.WithTextStyle(style),
		canvas.WithSelectThreshold(a.SelectThreshold),
		canvas.WithClearMargin(a.ClearMargin),
		canvas.WithDeleteKeys(a.DeleteKeys...),
		canvas.WithChangeHandler(s.changed),
	)
	s.canvas.SetTool(a.Tool)
	s.canvas.Redraw()
	s.configure()
	return s
}

// configure builds the toolbar and registers keyboard actions.
func (s *session) configure() {
	s.actions = map[string]func(){}
	s.keyboardAction = map[KeyShortcut]string{}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		s.actions[name] = fn
		for _, sc := range keys.KeyboardShortcuts() {
			s.keyboardAction[sc] = name
		}
	}

	s.toolButtons = s.toolButtons[:0]
	for _, t := range toolLabels {
		tool := t.tool
		s.toolButtons = append(s.toolButtons, &CacheButton{Button: &ToolButton{
			label:    t.label,
			tool:     tool,
			onSelect: func() { s.setTool(tool) },
		}})
		register("tool:"+tool.String(), shortcutList{{Rune: t.key}}, func() { s.setTool(tool) })
	}

	register("copy", shortcutList{
		{Rune: 'c', Modifiers: key.ModControl},
		{Rune: 'c', Modifiers: key.ModMeta},
	}, s.copyLabel)
	register("delete", shortcutList{}, func() {
		s.window.Dispatch(input.Event{Kind: input.KeyDown, Key: input.KeyDelete})
	})
	register("quit", shortcutList{{Rune: 'q'}, {Rune: 'q', Modifiers: key.ModControl}}, func() {
		s.quit = true
	})
}

func (s *session) trigger(action string) {
	if fn, ok := s.actions[action]; ok {
		fn()
	}
	s.repaint()
}

func (s *session) setTool(t canvas.Tool) {
	s.canvas.SetTool(t)
	s.clicks.reset()
}

func (s *session) repaint() {
	if s.send != nil {
		s.send(paint.Event{})
	}
}

func (s *session) flash(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageUntil = s.now().Add(messageTTL)
	s.log.Info(s.message)
}

func (s *session) copyLabel() {
	sh, _, ok := s.canvas.Selected()
	t, isText := sh.(shape.Text)
	if !ok || !isText {
		s.flash("select a text label to copy")
		return
	}
	if err := s.app.Clipboard.WriteText(t.Text); err != nil {
		s.log.Warn("copy failed", "err", err)
		s.flash("copy failed: %v", err)
		return
	}
	s.flash("label copied to clipboard")
	s.app.Notifier.Copy(t.Text)
}

func (s *session) changed(ch canvas.Change) {
	s.log.Debug("store changed", "op", ch.Op, "index", ch.Index, "kind", ch.Kind)
	switch ch.Op {
	case canvas.ChangeAdd:
		s.flash("added %s #%d", ch.Kind, ch.Index)
	case canvas.ChangeEdit:
		s.flash("edited %s #%d", ch.Kind, ch.Index)
	case canvas.ChangeDelete:
		what := fmt.Sprintf("%s #%d", ch.Kind, ch.Index)
		s.flash("deleted %s", what)
		s.app.Notifier.Delete(what)
	}
	s.repaint()
}

func (s *session) runFrame() {
	if s.frames.run() > 0 {
		s.repaint()
	}
}

func (s *session) handleMouse(e mouse.Event) {
	x, y := float64(e.X), float64(e.Y)
	if e.Button != mouse.ButtonLeft && e.Button != mouse.ButtonNone {
		return
	}
	switch e.Direction {
	case mouse.DirNone:
		s.hover(int(x), int(y))
		s.window.Dispatch(input.Event{Kind: input.PointerMove, X: x, Y: y})
	case mouse.DirPress:
		if s.prompt.active() {
			return
		}
		switch {
		case s.el.contains(x, y):
			s.el.events.Dispatch(input.Event{Kind: input.PointerDown, X: x, Y: y})
			if s.clicks.press(s.now(), x, y) {
				s.el.events.Dispatch(input.Event{Kind: input.DoubleClick, X: x, Y: y})
			}
		case int(x) < s.toolbarW:
			if idx := toolIndexAt(int(y), len(s.toolButtons)); idx >= 0 {
				s.toolButtons[idx].Activate()
			}
		default:
			for i := range s.shortcuts {
				if image.Pt(int(x), int(y)).In(s.shortcuts[i].rect) {
					s.shortcuts[i].Activate()
					break
				}
			}
		}
		s.repaint()
	case mouse.DirRelease:
		s.window.Dispatch(input.Event{Kind: input.PointerUp, X: x, Y: y})
		s.repaint()
	}
}

func (s *session) hover(x, y int) {
	tool, sc := -1, -1
	if x < s.toolbarW && y < s.height-bottomHeight {
		tool = toolIndexAt(y, len(s.toolButtons))
	}
	for i := range s.shortcuts {
		if image.Pt(x, y).In(s.shortcuts[i].rect) {
			sc = i
			break
		}
	}
	if tool != s.hoverTool || sc != s.hoverShortcut {
		s.hoverTool, s.hoverShortcut = tool, sc
		s.repaint()
	}
}

// handleTouch follows the first finger down and ignores the rest until it
// lifts.
func (s *session) handleTouch(e touch.Event) {
	x, y := float64(e.X), float64(e.Y)
	switch e.Type {
	case touch.TypeBegin:
		if s.touching || s.prompt.active() || !s.el.contains(x, y) {
			return
		}
		s.touching, s.touchID = true, e.Sequence
		s.el.events.Dispatch(input.Event{Kind: input.TouchStart, X: x, Y: y})
	case touch.TypeMove:
		if s.touching && e.Sequence == s.touchID {
			s.window.Dispatch(input.Event{Kind: input.TouchMove, X: x, Y: y})
		}
	case touch.TypeEnd:
		if s.touching && e.Sequence == s.touchID {
			s.touching = false
			s.window.Dispatch(input.Event{Kind: input.TouchEnd, X: x, Y: y})
			s.repaint()
		}
	}
}

func (s *session) handleKey(e key.Event) {
	if e.Direction != key.DirPress {
		return
	}
	if s.prompt.active() {
		if e.Modifiers&(key.ModControl|key.ModMeta) != 0 && unicode.ToLower(e.Rune) == 'v' {
			text, err := s.app.Clipboard.ReadText()
			if err != nil {
				s.log.Debug("paste failed", "err", err)
				return
			}
			s.prompt.paste(text)
			return
		}
		s.prompt.key(e)
		return
	}
	if action, ok := s.shortcutFor(e); ok {
		s.trigger(action)
		return
	}
	if name := keyName(e); name != "" {
		s.window.Dispatch(input.Event{Kind: input.KeyDown, Key: name})
		s.repaint()
	}
}

func (s *session) shortcutFor(e key.Event) (string, bool) {
	mods := e.Modifiers &^ key.ModShift
	if e.Rune > 0 {
		if a, ok := s.keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]; ok {
			return a, true
		}
	}
	a, ok := s.keyboardAction[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return a, ok
}

func (s *session) close() { s.canvas.Close() }

// paint renders the whole window into dst.
func (s *session) paint(dst *image.RGBA) {
	th := s.app.Theme
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)

	if s.el.raster != nil {
		img, r := s.el.raster.Image(), s.el.bounds()
		if img.Bounds().Size() == r.Size() {
			draw.Draw(dst, r, img, image.Point{}, draw.Src)
		} else {
			xdraw.ApproxBiLinear.Scale(dst, r, img, img.Bounds(), draw.Src, nil)
		}
	}

	s.drawToolbar(dst)
	s.drawStatus(dst)
}

func (s *session) drawToolbar(dst *image.RGBA) {
	th := s.app.Theme
	bar := image.Rect(0, 0, s.toolbarW, s.height-bottomHeight)
	draw.Draw(dst, bar, image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)
	drawLabel(dst, title, 4, 16, th.ButtonText)

	y := buttonHeight
	for i, cb := range s.toolButtons {
		cb.SetRect(image.Rect(0, y, s.toolbarW, y+buttonHeight))
		state := StateDefault
		if cb.Button.(*ToolButton).tool == s.canvas.Tool() {
			state = StatePressed
		} else if i == s.hoverTool {
			state = StateHover
		}
		cb.Draw(dst, th, state)
		y += buttonHeight
	}
}

func (s *session) drawStatus(dst *image.RGBA) {
	th := s.app.Theme
	rect := image.Rect(0, s.height-bottomHeight, s.width, s.height)
	baseline := s.height - bottomHeight + 16

	if s.prompt.active() {
		draw.Draw(dst, rect, image.NewUniform(th.PromptBackground), image.Point{}, draw.Src)
		drawLabel(dst, s.prompt.line(), 4, baseline, th.PromptText)
		s.shortcuts = s.shortcuts[:0]
		return
	}

	draw.Draw(dst, rect, image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)
	s.shortcuts = s.shortcuts[:0]
	s.shortcuts = append(s.shortcuts, Shortcut{label: "^C:copy label", action: func() { s.trigger("copy") }})
	if s.canvas.Tool() == canvas.ToolSelect {
		s.shortcuts = append(s.shortcuts, Shortcut{label: "Del:delete", action: func() { s.trigger("delete") }})
	}
	s.shortcuts = append(s.shortcuts, Shortcut{label: "Q:quit", action: func() { s.trigger("quit") }})

	x := 4
	for i := range s.shortcuts {
		sc := &s.shortcuts[i]
		sc.SetRect(image.Rect(x-2, baseline-14, x+textWidth(sc.label)+2, baseline+4))
		state := StateDefault
		if i == s.hoverShortcut {
			state = StateHover
		}
		sc.Draw(dst, th, state)
		x = sc.rect.Max.X + 8
	}

	if s.message != "" && s.now().Before(s.messageUntil) {
		drawLabel(dst, s.message, x+8, baseline, th.ButtonText)
	}
}

// Package appstate hosts a canvas in a desktop window: it owns the shiny
// event loop, the tool bar, the status bar prompts and the clipboard.
package appstate

import (
	"image"
	"log/slog"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/example/inkpad/internal/canvas"
	"github.com/example/inkpad/internal/clipboard"
	"github.com/example/inkpad/internal/log"
	"github.com/example/inkpad/internal/notify"
	"github.com/example/inkpad/internal/shape"
	"github.com/example/inkpad/internal/theme"
)

// App holds the window configuration.
type App struct {
	Width, Height   int
	DPR             float64
	Tool            canvas.Tool
	Theme           *theme.Theme
	TextStyle       shape.TextStyle
	StrokeWidth     float64
	SelectThreshold float64
	ClearMargin     float64
	DeleteKeys      []string
	Clipboard       clipboard.Clipboard
	Notifier        *notify.Notifier

	log       *slog.Logger
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithSize sets the drawing area in window pixels.
func WithSize(w, h int) Option { return func(a *App) { a.Width, a.Height = w, h } }

// WithDevicePixelRatio sets how many backing pixels cover one window pixel.
func WithDevicePixelRatio(dpr float64) Option { return func(a *App) { a.DPR = dpr } }

// WithTool selects the tool active at start up.
func WithTool(t canvas.Tool) Option { return func(a *App) { a.Tool = t } }

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithTextStyle sets the font used for new labels. The color comes from the
// theme.
func WithTextStyle(s shape.TextStyle) Option { return func(a *App) { a.TextStyle = s } }

// WithStrokeWidth sets the line width in window pixels.
func WithStrokeWidth(w float64) Option { return func(a *App) { a.StrokeWidth = w } }

// WithSelectThreshold sets the hit distance for the select tool.
func WithSelectThreshold(d float64) Option { return func(a *App) { a.SelectThreshold = d } }

// WithClearMargin sets the padding cleared around the drawing on redraw.
func WithClearMargin(m float64) Option { return func(a *App) { a.ClearMargin = m } }

// WithDeleteKeys names the keys that delete the selected shape.
func WithDeleteKeys(keys ...string) Option { return func(a *App) { a.DeleteKeys = keys } }

// WithClipboard replaces the system clipboard.
func WithClipboard(c clipboard.Clipboard) Option { return func(a *App) { a.Clipboard = c } }

// WithNotifier sets where copy and delete notifications go.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{
		Width:           960,
		Height:          640,
		DPR:             1,
		Tool:            canvas.ToolPath,
		Theme:           theme.Default(),
		TextStyle:       shape.TextStyle{FontFamily: "sans", FontSize: 16},
		StrokeWidth:     2,
		SelectThreshold: 10,
		ClearMargin:     100,
		DeleteKeys:      []string{"Delete", "Backspace"},
		Clipboard:       clipboard.System,
		log:             log.WithComponent("appstate"),
	}
	for _, o := range opts {
		o(a)
	}
	if a.DPR <= 0 {
		a.DPR = 1
	}
	return a
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// Main runs the event loop on an existing screen until the window closes.
func (a *App) Main(s screen.Screen) {
	sess := newSession(a, nil)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: sess.width, Height: sess.height, Title: title})
	if err != nil {
		a.log.Error("new window", "err", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()
	defer sess.close()

	sess.send = w.Send
	sess.frames.send = w.Send

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			sess.width, sess.height = e.WidthPx, e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			drawFrame(s, w, sess)
		case frameEvent:
			sess.runFrame()
		case mouse.Event:
			sess.handleMouse(e)
		case touch.Event:
			sess.handleTouch(e)
		case key.Event:
			sess.handleKey(e)
		case error:
			a.log.Error("window event", "err", e)
		}
		if sess.quit {
			return
		}
	}
}

func drawFrame(s screen.Screen, w screen.Window, sess *session) {
	if sess.width <= 0 || sess.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{sess.width, sess.height})
	if err != nil {
		sess.log.Error("new buffer", "err", err)
		return
	}
	defer b.Release()
	sess.paint(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

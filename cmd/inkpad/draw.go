package main

import (
	"flag"
	"fmt"

	"github.com/example/inkpad/internal/appstate"
	"github.com/example/inkpad/internal/canvas"
	"github.com/example/inkpad/internal/shape"
)

// drawCmd opens the drawing window.
type drawCmd struct {
	*root
	fs       *flag.FlagSet
	toolName string
	tool     canvas.Tool
	width    int
	height   int
	dpr      float64
}

func (d *drawCmd) FlagSet() *flag.FlagSet { return d.fs }
func (d *drawCmd) Program() string        { return d.root.subcommand("draw") }

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.toolName, "tool", canvas.ToolPath.String(), "initial tool: path, rect, circle, move, select or text")
	fs.IntVar(&d.width, "width", r.config.Canvas.Width, "canvas width in pixels")
	fs.IntVar(&d.height, "height", r.config.Canvas.Height, "canvas height in pixels")
	fs.Float64Var(&d.dpr, "dpr", r.config.Canvas.DevicePixelRatio, "device pixel ratio of the backing store (0 = 1)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: d, reason: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	tool, err := canvas.ParseTool(d.toolName)
	if err != nil || tool == canvas.ToolNone {
		return nil, &UsageError{of: d, reason: fmt.Sprintf("invalid -tool %q", d.toolName)}
	}
	d.tool = tool
	if d.width <= 0 || d.height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", d.width, d.height)
	}
	if d.dpr < 0 {
		return nil, fmt.Errorf("-dpr %v must not be negative", d.dpr)
	}
	return d, nil
}

func (d *drawCmd) options() []appstate.Option {
	cfg := d.root.config
	opts := []appstate.Option{
		appstate.WithSize(d.width, d.height),
		appstate.WithDevicePixelRatio(d.dpr),
		appstate.WithTool(d.tool),
		appstate.WithTextStyle(shape.TextStyle{FontFamily: cfg.Text.FontFamily, FontSize: cfg.Text.FontSize}),
		appstate.WithStrokeWidth(cfg.Stroke.Width),
		appstate.WithSelectThreshold(cfg.Canvas.SelectThreshold),
		appstate.WithClearMargin(cfg.Canvas.ClearMargin),
		appstate.WithDeleteKeys(cfg.Keys.Delete...),
		appstate.WithNotifier(d.root.notifier),
	}
	if d.root.activeTheme != nil {
		opts = append(opts, appstate.WithTheme(d.root.activeTheme))
	}
	return opts
}

func (d *drawCmd) Run() error {
	appstate.New(d.options()...).Run()
	return nil
}

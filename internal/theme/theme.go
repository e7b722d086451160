package theme

import (
	"image/color"
)

// Theme is the color palette for the drawing window.
type Theme struct {
	Name string

	// Canvas
	Paper     color.RGBA // what the drawing surface clears to
	Ink       color.RGBA // shape strokes
	Highlight color.RGBA // the selected shape
	Text      color.RGBA // new text labels

	// Window chrome
	Background        color.RGBA
	ToolbarBackground color.RGBA
	ButtonBackground  color.RGBA
	ButtonActive      color.RGBA
	ButtonText        color.RGBA
	ButtonBorder      color.RGBA
	PromptBackground  color.RGBA
	PromptText        color.RGBA
}

// Default returns the built in light theme.
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Paper:             color.RGBA{255, 255, 255, 255},
		Ink:               color.RGBA{0, 0, 0, 255},
		Highlight:         color.RGBA{255, 0, 0, 255},
		Text:              color.RGBA{0, 0, 0, 255},
		Background:        color.RGBA{220, 220, 220, 255},
		ToolbarBackground: color.RGBA{220, 220, 220, 255},
		ButtonBackground:  color.RGBA{200, 200, 200, 255},
		ButtonActive:      color.RGBA{150, 150, 150, 255},
		ButtonText:        color.RGBA{0, 0, 0, 255},
		ButtonBorder:      color.RGBA{0, 0, 0, 255},
		PromptBackground:  color.RGBA{255, 255, 224, 255},
		PromptText:        color.RGBA{0, 0, 0, 255},
	}
}

package appstate

import (
	"math"
	"time"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkpad/internal/input"
)

const (
	doubleClickInterval = 400 * time.Millisecond
	doubleClickSlop     = 4
)

// clickTracker recognises two presses close together in time and space.
type clickTracker struct {
	at   time.Time
	x, y float64
	// armed is set by the first press and cleared by the second.
	armed bool
}

// press records a press and reports whether it completes a double click.
func (c *clickTracker) press(now time.Time, x, y float64) bool {
	if c.armed && now.Sub(c.at) <= doubleClickInterval &&
		math.Abs(x-c.x) <= doubleClickSlop && math.Abs(y-c.y) <= doubleClickSlop {
		c.armed = false
		return true
	}
	c.at, c.x, c.y, c.armed = now, x, y, true
	return false
}

func (c *clickTracker) reset() { c.armed = false }

// keyName converts a key press to the name carried by input.Event.Key.
func keyName(e key.Event) string {
	switch e.Code {
	case key.CodeDeleteForward:
		return input.KeyDelete
	case key.CodeDeleteBackspace:
		return input.KeyBackspace
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		return input.KeyEnter
	case key.CodeEscape:
		return input.KeyEscape
	}
	if e.Rune > 0 {
		return string(e.Rune)
	}
	return ""
}

// Package input carries pointer, touch and key events from a host to the
// canvas. Listeners subscribe to a Bus and receive a Subscription handle that
// removes them again.
package input

import "fmt"

// Kind identifies an event type.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	TouchStart
	TouchMove
	TouchEnd
	KeyDown
	DoubleClick
)

var kindNames = [...]string{
	PointerDown: "pointerdown",
	PointerMove: "pointermove",
	PointerUp:   "pointerup",
	TouchStart:  "touchstart",
	TouchMove:   "touchmove",
	TouchEnd:    "touchend",
	KeyDown:     "keydown",
	DoubleClick: "dblclick",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Key names delivered in Event.Key for non-printing keys.
const (
	KeyDelete    = "Delete"
	KeyBackspace = "Backspace"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
)

// Event is a single input event. X and Y are client coordinates; for touch
// events they are those of the first touch point.
type Event struct {
	Kind Kind
	X, Y float64
	Key  string
}

// Handler receives events.
type Handler func(Event)

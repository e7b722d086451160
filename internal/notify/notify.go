// Package notify raises desktop notifications for canvas events the user
// opted into.
package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/inkpad/internal/log"
	"github.com/example/inkpad/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCopy fires when a label is copied to the clipboard.
	EventCopy Event = "copy"
	// EventDelete fires when a shape is deleted.
	EventDelete Event = "delete"
)

// Templates maps each event to a fmt template taking one %s detail.
var Templates = map[Event]string{
	EventCopy:   "Copied %q to the clipboard",
	EventDelete: "Deleted %s",
}

// Sender delivers one notification. platform.Notify is the default.
type Sender func(title, body string, opts platform.Options) error

// Notifier filters events by preference and sends the rest.
type Notifier struct {
	Title   string
	Expire  time.Duration
	send    Sender
	enabled map[Event]bool
	log     *slog.Logger
}

// New returns a notifier with every event disabled. A nil sender uses
// platform.Notify.
func New(send Sender) *Notifier {
	if send == nil {
		send = platform.Notify
	}
	return &Notifier{
		Title:   "inkpad",
		Expire:  4 * time.Second,
		send:    send,
		enabled: map[Event]bool{},
		log:     log.WithComponent("notify"),
	}
}

// Enable turns an event on or off.
func (n *Notifier) Enable(e Event, on bool) {
	if n == nil {
		return
	}
	n.enabled[e] = on
}

// Enabled reports whether e will be sent.
func (n *Notifier) Enabled(e Event) bool {
	return n != nil && n.enabled[e]
}

// Copy announces a clipboard copy of text.
func (n *Notifier) Copy(text string) { n.dispatch(EventCopy, text) }

// Delete announces a deleted shape, described like "rect #2".
func (n *Notifier) Delete(what string) { n.dispatch(EventDelete, what) }

func (n *Notifier) dispatch(e Event, detail string) {
	if !n.Enabled(e) {
		return
	}
	tmpl := Templates[e]
	if tmpl == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
	if err := n.send(n.Title, body, platform.Options{Expire: n.Expire}); err != nil {
		n.log.Warn("notification failed", "event", e, "err", err)
	}
}

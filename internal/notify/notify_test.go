package notify

import (
	"errors"
	"testing"

	"github.com/example/inkpad/internal/platform"
)

type sent struct{ title, body string }

func recorder(out *[]sent, err error) Sender {
	return func(title, body string, _ platform.Options) error {
		*out = append(*out, sent{title, body})
		return err
	}
}

func TestDisabledByDefault(t *testing.T) {
	var got []sent
	n := New(recorder(&got, nil))
	n.Copy("hello")
	n.Delete("rect #1")
	if len(got) != 0 {
		t.Fatalf("sent %v", got)
	}
}

func TestEnabledEvents(t *testing.T) {
	var got []sent
	n := New(recorder(&got, nil))
	n.Enable(EventDelete, true)
	n.Copy("hello")
	n.Delete(" circle #0 ")
	if len(got) != 1 || got[0].body != "Deleted circle #0" || got[0].title != "inkpad" {
		t.Fatalf("sent %+v", got)
	}
	n.Enable(EventCopy, true)
	n.Copy("hi")
	if got[1].body != `Copied "hi" to the clipboard` {
		t.Fatalf("copy body %q", got[1].body)
	}
}

func TestSendErrorIsSwallowed(t *testing.T) {
	var got []sent
	n := New(recorder(&got, errors.New("no bus")))
	n.Enable(EventCopy, true)
	n.Copy("x")
	if len(got) != 1 {
		t.Fatalf("sent %v", got)
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	n.Enable(EventCopy, true)
	n.Copy("x")
	if n.Enabled(EventCopy) {
		t.Fatal("nil notifier reports enabled")
	}
}

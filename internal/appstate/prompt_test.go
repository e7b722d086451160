package appstate

import (
	"testing"
	"time"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkpad/internal/input"
)

func TestClickTracker(t *testing.T) {
	t0 := time.Unix(0, 0)
	var c clickTracker
	if c.press(t0, 10, 10) {
		t.Fatal("first press reported a double click")
	}
	if !c.press(t0.Add(300*time.Millisecond), 12, 9) {
		t.Fatal("second nearby press missed")
	}
	if c.press(t0.Add(350*time.Millisecond), 12, 9) {
		t.Fatal("third press continued the pair")
	}

	c.reset()
	c.press(t0, 10, 10)
	if c.press(t0.Add(500*time.Millisecond), 10, 10) {
		t.Error("slow press counted")
	}
	if c.press(t0.Add(600*time.Millisecond), 30, 10) {
		t.Error("distant press counted")
	}
}

func TestFrameSchedulerKeepsOneEventInFlight(t *testing.T) {
	var sent int
	f := &frameScheduler{send: func(e any) {
		if _, ok := e.(frameEvent); ok {
			sent++
		}
	}}
	var ran []int
	f.RequestFrame(func() { ran = append(ran, 1) })
	f.RequestFrame(func() {
		ran = append(ran, 2)
		f.RequestFrame(func() { ran = append(ran, 3) })
	})
	if sent != 1 {
		t.Fatalf("sent %d events, want 1", sent)
	}
	if n := f.run(); n != 2 {
		t.Errorf("run executed %d callbacks, want 2", n)
	}
	if sent != 2 {
		t.Errorf("request during run did not post a new event")
	}
	f.run()
	if len(ran) != 3 || ran[2] != 3 {
		t.Errorf("ran = %v", ran)
	}
}

func TestPrompterAnswers(t *testing.T) {
	p := &prompter{}
	var got string
	var ok bool
	p.Prompt("Name", "ab", func(s string, k bool) { got, ok = s, k })
	p.Prompt("Other", "", func(s string, k bool) {
		if k {
			t.Error("second prompt accepted while one is open")
		}
	})
	p.key(key.Event{Rune: 'c', Direction: key.DirPress})
	p.key(key.Event{Rune: 'x', Modifiers: key.ModControl, Direction: key.DirPress})
	p.key(key.Event{Code: key.CodeReturnEnter, Direction: key.DirPress})
	if !ok || got != "abc" {
		t.Errorf("answer = %q %v", got, ok)
	}

	var confirmed *bool
	p.Confirm("Sure?", func(k bool) { confirmed = &k })
	if got := p.line(); got != "Sure?  Enter: yes / Esc: no" {
		t.Errorf("confirm line = %q", got)
	}
	p.key(key.Event{Rune: 'z', Direction: key.DirPress})
	p.key(key.Event{Code: key.CodeEscape, Direction: key.DirPress})
	if confirmed == nil || *confirmed {
		t.Errorf("confirm answer = %v", confirmed)
	}
	if p.active() {
		t.Error("prompter still active")
	}
}

func TestEditBufferSkipsControlRunes(t *testing.T) {
	var b editBuffer
	b.insert("a\tb\x00ü")
	if got := b.String(); got != "abü" {
		t.Errorf("buffer = %q", got)
	}
	b.backspace()
	if got := b.String(); got != "ab" {
		t.Errorf("after backspace = %q", got)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.Event{Code: key.CodeDeleteForward, Rune: -1}, input.KeyDelete},
		{key.Event{Code: key.CodeDeleteBackspace, Rune: -1}, input.KeyBackspace},
		{key.Event{Code: key.CodeReturnEnter, Rune: '\r'}, input.KeyEnter},
		{key.Event{Code: key.CodeEscape, Rune: -1}, input.KeyEscape},
		{key.Event{Code: key.CodeX, Rune: 'x'}, "x"},
		{key.Event{Code: key.CodeLeftShift, Rune: -1}, ""},
	}
	for _, tc := range tests {
		if got := keyName(tc.ev); got != tc.want {
			t.Errorf("keyName(%v) = %q, want %q", tc.ev.Code, got, tc.want)
		}
	}
}

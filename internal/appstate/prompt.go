package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkpad/internal/canvas"
)

type promptMode int

const (
	promptNone promptMode = iota
	promptText
	promptConfirm
)

// editBuffer is the single line being typed into a text prompt.
type editBuffer struct {
	runes []rune
}

func (b *editBuffer) set(s string) { b.runes = []rune(s) }

func (b *editBuffer) insert(s string) {
	for _, r := range s {
		if unicode.IsPrint(r) {
			b.runes = append(b.runes, r)
		}
	}
}

func (b *editBuffer) backspace() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = b.runes[:len(b.runes)-1]
	return true
}

func (b *editBuffer) String() string { return string(b.runes) }

// prompter answers canvas prompts from the status bar. While a prompt is
// open it owns the keyboard.
type prompter struct {
	mode    promptMode
	message string
	buf     editBuffer
	text    func(string, bool)
	confirm func(bool)
	// changed asks for a repaint.
	changed func()
}

var _ canvas.Prompter = (*prompter)(nil)

func (p *prompter) Prompt(message, initial string, done func(string, bool)) {
	if p.mode != promptNone {
		done("", false)
		return
	}
	p.mode = promptText
	p.message = message
	p.buf.set(initial)
	p.text = done
	p.repaint()
}

func (p *prompter) Confirm(message string, done func(bool)) {
	if p.mode != promptNone {
		done(false)
		return
	}
	p.mode = promptConfirm
	p.message = message
	p.confirm = done
	p.repaint()
}

func (p *prompter) active() bool { return p.mode != promptNone }

// paste appends clipboard text to an open text prompt.
func (p *prompter) paste(s string) {
	if p.mode != promptText {
		return
	}
	p.buf.insert(s)
	p.repaint()
}

// key feeds a key press to the open prompt.
func (p *prompter) key(e key.Event) {
	switch e.Code {
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		p.finish(true)
		return
	case key.CodeEscape:
		p.finish(false)
		return
	}
	if p.mode != promptText {
		return
	}
	if e.Code == key.CodeDeleteBackspace {
		if p.buf.backspace() {
			p.repaint()
		}
		return
	}
	if e.Rune > 0 && e.Modifiers&(key.ModControl|key.ModMeta) == 0 {
		p.buf.insert(string(e.Rune))
		p.repaint()
	}
}

// finish closes the prompt before answering, so the callback may open
// another one.
func (p *prompter) finish(ok bool) {
	mode, text, confirm, value := p.mode, p.text, p.confirm, p.buf.String()
	p.mode = promptNone
	p.message = ""
	p.buf.set("")
	p.text, p.confirm = nil, nil
	p.repaint()
	switch mode {
	case promptText:
		if !ok {
			value = ""
		}
		text(value, ok)
	case promptConfirm:
		confirm(ok)
	}
}

func (p *prompter) repaint() {
	if p.changed != nil {
		p.changed()
	}
}

// line is what the status bar shows for the open prompt.
func (p *prompter) line() string {
	switch p.mode {
	case promptText:
		return p.message + ": " + p.buf.String() + "|"
	case promptConfirm:
		return p.message + "  Enter: yes / Esc: no"
	}
	return ""
}

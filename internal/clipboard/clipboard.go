// Package clipboard moves text label contents to and from the desktop
// clipboard.
package clipboard

import (
	"errors"
	"strings"
	"sync"
)

// ErrEmpty means the clipboard holds no text.
var ErrEmpty = errors.New("clipboard does not contain text data")

// Clipboard reads and writes plain text.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// System is the desktop clipboard.
var System Clipboard = system{}

type system struct{}

func (system) WriteText(text string) error { return writeText(text) }

func (system) ReadText() (string, error) {
	s, err := readText()
	if err != nil {
		return "", err
	}
	return SingleLine(s), nil
}

// Memory is a process local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.text == "" {
		return "", ErrEmpty
	}
	return m.text, nil
}

// SingleLine folds line breaks and tabs to spaces and drops trailing NULs,
// since labels are a single line.
func SingleLine(s string) string {
	s = strings.TrimRight(s, "\x00")
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}

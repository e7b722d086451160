package clipboard

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	var m Memory
	if _, err := m.ReadText(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty read err = %v", err)
	}
	if err := m.WriteText("label"); err != nil {
		t.Fatal(err)
	}
	if got, err := m.ReadText(); err != nil || got != "label" {
		t.Fatalf("ReadText = %q, %v", got, err)
	}
}

func TestSingleLine(t *testing.T) {
	for in, want := range map[string]string{
		"a\r\nb":    "a b",
		"a\nb\tc":   "a b c",
		"plain\x00": "plain",
	} {
		if got := SingleLine(in); got != want {
			t.Errorf("SingleLine(%q) = %q, want %q", in, got, want)
		}
	}
}

package clipboard

import (
	stderrors "errors"
	"testing"

	"github.com/go-futura/futura/pkg/errors"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	if err := m.Write("hello"); err != nil {
		t.Fatal(err)
	}
	got, err := m.Read()
	if err != nil || got != "hello" {
		t.Errorf("Read() = %q, %v", got, err)
	}

	m.Unavailable = true
	if _, err := m.Read(); !stderrors.Is(err, errors.ErrClipboardUnavailable) {
		t.Errorf("Read() error = %v", err)
	}
	if err := m.Write("x"); !stderrors.Is(err, errors.ErrClipboardUnavailable) {
		t.Errorf("Write() error = %v", err)
	}
}

func TestSystemImplementsClipboard(t *testing.T) {
	var _ Clipboard = System()
}

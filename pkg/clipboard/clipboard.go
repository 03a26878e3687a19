// Package clipboard exposes the process-wide clipboard used by copy, cut
// and paste.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/go-futura/futura/pkg/errors"
)

// Clipboard reads and writes plain text. Implementations return an error
// wrapping errors.ErrClipboardUnavailable when the platform refuses.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System returns the platform clipboard.
func System() Clipboard {
	return systemClipboard{}
}

type systemClipboard struct{}

func (systemClipboard) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (systemClipboard) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard for headless sessions and tests.
type Memory struct {
	text        string
	Unavailable bool
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	if m.Unavailable {
		return "", errors.ErrClipboardUnavailable
	}
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	if m.Unavailable {
		return errors.ErrClipboardUnavailable
	}
	m.text = text
	return nil
}

// Package sysclip adapts the platform clipboard behind a small interface so
// the engine can treat clipboard access as fallible I/O and tests can run
// against an in-memory fake.
package sysclip

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported indicates no platform clipboard is available.
var ErrUnsupported = errors.New("platform clipboard unsupported")

// Clipboard is the engine's view of a clipboard. Both operations may fail;
// the clipboard lives outside process lifetime control.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System is the platform clipboard.
type System struct{}

// NewSystem returns the platform clipboard, or ErrUnsupported when the
// platform has none (headless Linux without xclip/xsel, for example).
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnsupported
	}
	return &System{}, nil
}

// Read returns the current clipboard text.
func (s *System) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the clipboard text.
func (s *System) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard for tests and clipboard-less
// environments. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Best returns the platform clipboard when available, falling back to an
// in-memory one.
func Best() Clipboard {
	if sys, err := NewSystem(); err == nil {
		return sys
	}
	return NewMemory()
}

//go:build !linux && !windows && !darwin

package global

import (
	"errors"

	"github.com/google/perfoverlay/internal/hotkey"
)

var errUnsupported = errors.New("global hotkeys are not supported on this platform")

// Manager is unavailable here; use hotkey.LocalManager instead.
type Manager struct{}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Register(hotkey.Chord) (hotkey.Binding, error) {
	return hotkey.Binding{}, errUnsupported
}

func (m *Manager) Receiver() hotkey.Receiver { return hotkey.NewQueue() }

func (m *Manager) Close() error { return nil }

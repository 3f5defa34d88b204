//go:build linux || windows || darwin

// Package global registers chords with the operating system so they fire
// whichever window has focus.
//
// On Linux the underlying library opens the X11 display while the package
// initialises and panics when none is available. Only link this package
// into binaries that need OS-wide hotkeys.
package global

import (
	"fmt"
	"sync"

	xhotkey "golang.design/x/hotkey"

	"github.com/google/perfoverlay/internal/hotkey"
)

var keys = map[rune]xhotkey.Key{
	'A': xhotkey.KeyA, 'B': xhotkey.KeyB, 'C': xhotkey.KeyC, 'D': xhotkey.KeyD,
	'E': xhotkey.KeyE, 'F': xhotkey.KeyF, 'G': xhotkey.KeyG, 'H': xhotkey.KeyH,
	'I': xhotkey.KeyI, 'J': xhotkey.KeyJ, 'K': xhotkey.KeyK, 'L': xhotkey.KeyL,
	'M': xhotkey.KeyM, 'N': xhotkey.KeyN, 'O': xhotkey.KeyO, 'P': xhotkey.KeyP,
	'Q': xhotkey.KeyQ, 'R': xhotkey.KeyR, 'S': xhotkey.KeyS, 'T': xhotkey.KeyT,
	'U': xhotkey.KeyU, 'V': xhotkey.KeyV, 'W': xhotkey.KeyW, 'X': xhotkey.KeyX,
	'Y': xhotkey.KeyY, 'Z': xhotkey.KeyZ,
	'0': xhotkey.Key0, '1': xhotkey.Key1, '2': xhotkey.Key2, '3': xhotkey.Key3,
	'4': xhotkey.Key4, '5': xhotkey.Key5, '6': xhotkey.Key6, '7': xhotkey.Key7,
	'8': xhotkey.Key8, '9': xhotkey.Key9,
}

// Manager is a hotkey.Manager backed by OS-wide registrations.
type Manager struct {
	mu     sync.Mutex
	regs   []registration
	closed bool
	queue  *hotkey.Queue
}

type registration struct {
	hk  *xhotkey.Hotkey
	fwd *hotkey.Forwarder
}

func NewManager() *Manager {
	return &Manager{queue: hotkey.NewQueue()}
}

func (m *Manager) Register(c hotkey.Chord) (hotkey.Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return hotkey.Binding{}, hotkey.ErrClosed
	}

	key, ok := keys[c.Key]
	if !ok {
		return hotkey.Binding{}, fmt.Errorf("register %s: unsupported key", c)
	}
	mods := make([]xhotkey.Modifier, 0, len(c.Modifiers))
	for _, mod := range c.Modifiers {
		pm, ok := platformModifier(mod)
		if !ok {
			return hotkey.Binding{}, fmt.Errorf("register %s: modifier %s not supported on this platform", c, mod)
		}
		mods = append(mods, pm)
	}

	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return hotkey.Binding{}, fmt.Errorf("register %s: %w", c, err)
	}

	b := hotkey.Binding{ID: hotkey.NextID(), Chord: c}
	m.regs = append(m.regs, registration{
		hk:  hk,
		fwd: hotkey.StartForwarder(hk.Keydown(), b.ID, m.queue),
	})
	return b, nil
}

func (m *Manager) Receiver() hotkey.Receiver {
	return m.queue
}

// Close stops the forwarders and unregisters every chord.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	var firstErr error
	for _, reg := range m.regs {
		reg.fwd.Stop()
		if err := reg.hk.Unregister(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.regs = nil
	return firstErr
}

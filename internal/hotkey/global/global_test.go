//go:build display && (linux || windows || darwin)

// These tests grab real OS hotkeys. Run them on a desktop session with
// `go test -tags display ./internal/hotkey/global/`.
package global

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/perfoverlay/internal/hotkey"
)

func requireDisplay(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" {
		t.Skip("no X11 display")
	}
}

func TestRegisterAndClose(t *testing.T) {
	requireDisplay(t)

	m := NewManager()
	chord := hotkey.Chord{Modifiers: []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, Key: '9'}
	b, err := m.Register(chord)
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	require.Len(t, m.regs, 1)
	fwd := m.regs[0].fwd

	require.NoError(t, m.Close())
	assert.Nil(t, m.regs)

	// Stop after Close returns at once: the forwarder already exited.
	fwd.Stop()

	_, ok := m.Receiver().TryRecv()
	assert.False(t, ok)

	_, err = m.Register(chord)
	assert.ErrorIs(t, err, hotkey.ErrClosed)
	assert.NoError(t, m.Close())
}

func TestRegisterRejectsUnknownKey(t *testing.T) {
	requireDisplay(t)

	m := NewManager()
	defer m.Close()
	_, err := m.Register(hotkey.Chord{Modifiers: []hotkey.Modifier{hotkey.ModAlt}, Key: '#'})
	assert.Error(t, err)
}

//go:build noglobalhotkey

package main

import (
	"errors"

	"github.com/google/perfoverlay/internal/hotkey"
)

// Built without OS-wide hotkeys so the binary starts where no X11 display
// exists (headless, Wayland-only). Toggle with --hotkey-mode=terminal.

func runMain(fn func()) {
	fn()
}

func newGlobalManager() (hotkey.Manager, error) {
	return nil, errors.New("built with noglobalhotkey; use --hotkey-mode=terminal")
}

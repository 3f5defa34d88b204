//go:build !noglobalhotkey

package main

import (
	"golang.design/x/hotkey/mainthread"

	"github.com/google/perfoverlay/internal/hotkey"
	"github.com/google/perfoverlay/internal/hotkey/global"
)

// runMain runs fn on the main thread; macOS delivers hotkeys only there.
func runMain(fn func()) {
	mainthread.Init(fn)
}

func newGlobalManager() (hotkey.Manager, error) {
	return global.NewManager(), nil
}

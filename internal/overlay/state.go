package overlay

import (
	"time"

	"github.com/google/perfoverlay/internal/metrics"
)

const fpsWindow = time.Second

// FPSCounter measures frames per second over tumbling one-second windows.
// Each window restarts at the frame that closed the previous one, so a
// window can run slightly longer than a second under load.
type FPSCounter struct {
	frames      int
	windowStart time.Time
	current     int
}

func NewFPSCounter(now time.Time) FPSCounter {
	return FPSCounter{windowStart: now}
}

// RecordFrame counts one frame and closes the window once a second has
// passed since it opened.
func (f *FPSCounter) RecordFrame(now time.Time) {
	f.frames++
	if now.Sub(f.windowStart) >= fpsWindow {
		f.current = f.frames
		f.frames = 0
		f.windowStart = now
	}
}

// Current returns the rate published by the last closed window.
func (f *FPSCounter) Current() int {
	return f.current
}

// Pending returns the frames counted in the open window.
func (f *FPSCounter) Pending() int {
	return f.frames
}

// State is everything the panel shows plus the bookkeeping to refresh it.
type State struct {
	GPU         metrics.GPUSnapshot
	CPU         metrics.CPUSnapshot
	LastRefresh time.Time
	Visible     bool
	FPS         FPSCounter
}

// NewState returns an empty, visible state. The first poll is due one
// second after now.
func NewState(now time.Time) *State {
	return &State{
		LastRefresh: now,
		Visible:     true,
		FPS:         NewFPSCounter(now),
	}
}

// View is the read-only copy handed to a draw call.
type View struct {
	GPU     metrics.GPUSnapshot
	CPU     metrics.CPUSnapshot
	FPS     int
	Visible bool
}

func (s *State) view() View {
	return View{
		GPU:     s.GPU,
		CPU:     s.CPU,
		FPS:     s.FPS.Current(),
		Visible: s.Visible,
	}
}

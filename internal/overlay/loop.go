// Package overlay drives the per-frame refresh of the performance panel.
package overlay

import (
	"time"

	"github.com/google/perfoverlay/internal/hotkey"
	"github.com/google/perfoverlay/internal/logger"
	"github.com/google/perfoverlay/internal/metrics"
)

const (
	// VisibleInterval paces redraws at roughly display rate.
	VisibleInterval = 16 * time.Millisecond
	// HiddenInterval is how often a hidden overlay wakes to check hotkeys.
	HiddenInterval = time.Second
	// RefreshInterval is the telemetry poll cadence.
	RefreshInterval = time.Second
)

// Collector produces a GPU and CPU snapshot pair, or nothing.
type Collector interface {
	Collect() (metrics.GPUSnapshot, metrics.CPUSnapshot, error)
}

// Loop is the frame callback body. It is not safe for concurrent use; the
// host must call Frame from one goroutine.
type Loop struct {
	state     *State
	collector Collector
	toggle    hotkey.Binding
	events    hotkey.Receiver
}

// NewLoop builds a visible loop whose first poll happens one second after
// now.
func NewLoop(now time.Time, collector Collector, toggle hotkey.Binding, events hotkey.Receiver) *Loop {
	return &Loop{
		state:     NewState(now),
		collector: collector,
		toggle:    toggle,
		events:    events,
	}
}

// Frame runs one frame at time now. draw is called at most once, only while
// the overlay is visible, and before any telemetry poll of this frame. The
// returned duration is a hint for when the host should call Frame next.
func (l *Loop) Frame(now time.Time, draw func(View)) time.Duration {
	l.drainHotkeys()

	if !l.state.Visible {
		return HiddenInterval
	}

	l.state.FPS.RecordFrame(now)
	if draw != nil {
		draw(l.state.view())
	}

	if now.Sub(l.state.LastRefresh) >= RefreshInterval {
		l.refresh(now)
	}

	return VisibleInterval
}

// drainHotkeys flips visibility once per matching event already queued.
func (l *Loop) drainHotkeys() {
	for {
		ev, ok := l.events.TryRecv()
		if !ok {
			return
		}
		if !l.toggle.Matches(ev) {
			logger.Debug().Uint32("event", ev.ID).Uint32("binding", l.toggle.ID).Msg("ignoring foreign hotkey event")
			continue
		}
		l.state.Visible = !l.state.Visible
		logger.Debug().Bool("visible", l.state.Visible).Msg("overlay toggled")
	}
}

// refresh polls the collector. A failed poll keeps the previous snapshots
// on screen but still counts as an attempt.
func (l *Loop) refresh(now time.Time) {
	gpu, cpu, err := l.collector.Collect()
	l.state.LastRefresh = now
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry collection failed, keeping last snapshot")
		return
	}
	l.state.GPU = gpu
	l.state.CPU = cpu
}

// Visible reports whether the panel is currently shown.
func (l *Loop) Visible() bool {
	return l.state.Visible
}

// Snapshot returns a copy of what the next draw would show.
func (l *Loop) Snapshot() View {
	return l.state.view()
}

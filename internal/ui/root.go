package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/perfoverlay/internal/config"
	"github.com/google/perfoverlay/internal/hotkey"
	"github.com/google/perfoverlay/internal/overlay"
)

// FrameMsg asks the model to run one overlay frame at the given time.
type FrameMsg time.Time

// frame schedules the next FrameMsg. The delay is advisory; Bubble Tea may
// deliver it late under load.
func frame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Presser receives toggle presses the terminal captured itself.
type Presser interface {
	Press(hotkey.Chord) int
}

type RootModel struct {
	loop    *overlay.Loop
	presser Presser
	chord   hotkey.Chord
	keys    keyMap
	styles  Styles

	// Sub-models
	gpu    GPUModel
	cpu    CPUModel
	footer FooterModel

	width, height int
	panelWidth    int

	// Panel drawn during the last visible frame.
	rendered string
}

// NewRootModel wires a loop to the terminal. presser may be nil when
// toggling is handled by a global hotkey.
func NewRootModel(loop *overlay.Loop, cfg *config.OverlayConfiguration, presser Presser) RootModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	chord := cfg.Chord()
	termKey := ""
	if presser != nil {
		termKey = terminalKey(chord)
	}
	styles := NewStyles(cfg.Theme)
	keys := newKeyMap(chord.String(), termKey)

	m := RootModel{
		loop:       loop,
		presser:    presser,
		chord:      chord,
		keys:       keys,
		styles:     styles,
		gpu:        NewGPUModel(styles),
		cpu:        NewCPUModel(styles),
		footer:     NewFooterModel(keys, cfg.ShowHint, styles),
		panelWidth: cfg.PanelWidth,
	}
	m.resizeModules()
	return m
}

// terminalKey renders a chord the way Bubble Tea names key presses, or ""
// if a terminal cannot report it (Shift and Super are not distinguishable).
func terminalKey(c hotkey.Chord) string {
	var alt, ctrl bool
	for _, mod := range c.Modifiers {
		switch mod {
		case hotkey.ModAlt:
			alt = true
		case hotkey.ModCtrl:
			ctrl = true
		default:
			return ""
		}
	}
	k := strings.ToLower(string(c.Key))
	if ctrl {
		k = "ctrl+" + k
	}
	if alt {
		k = "alt+" + k
	}
	return k
}

func (m RootModel) Init() tea.Cmd {
	return frame(0)
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.presser != nil && key.Matches(msg, m.keys.Toggle):
			m.presser.Press(m.chord)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeModules()

	case FrameMsg:
		next := m.loop.Frame(time.Time(msg), func(v overlay.View) {
			m.rendered = m.render(v)
		})
		if !m.loop.Visible() {
			m.rendered = ""
		}
		return m, frame(next)
	}

	return m, nil
}

func (m *RootModel) resizeModules() {
	w := m.panelWidth
	if m.width > 0 && m.width < w {
		w = m.width
	}
	// Border and padding take two columns each side.
	inner := w - 4
	if inner < 1 {
		inner = 1
	}

	m.gpu.SetSize(inner)
	m.cpu.SetSize(inner)
	m.footer.SetSize(inner)
}

// render draws the whole panel from a frame's view.
func (m RootModel) render(v overlay.View) string {
	inner := m.gpu.width

	header := row(m.styles, inner, "Performance Overlay", fpsLabel(v.FPS))
	sep := m.styles.Separator.Render(strings.Repeat("─", inner))

	parts := []string{
		header,
		sep,
		m.gpu.View(v.GPU),
		sep,
		m.cpu.View(v.CPU),
	}
	if hint := m.footer.View(); hint != "" {
		parts = append(parts, "", hint)
	}

	// Width covers content and padding; the border sits outside it.
	return m.styles.Panel.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// View returns the panel from the last visible frame, or nothing while
// hidden.
func (m RootModel) View() string {
	return m.rendered
}

package config

import (
	"fmt"
	"strings"

	"github.com/google/perfoverlay/internal/hotkey"
	"github.com/google/perfoverlay/internal/metrics"
)

const (
	HotkeyModeGlobal   = "global"
	HotkeyModeTerminal = "terminal"

	minPanelWidth = 28
	maxPanelWidth = 120
)

// OverlayConfiguration defines the startup settings for the overlay.
type OverlayConfiguration struct {
	Theme          string `json:"theme"`
	PanelWidth     int    `json:"panel_width"`     // In terminal columns
	Hotkey         string `json:"hotkey"`          // e.g. "alt+t"
	HotkeyMode     string `json:"hotkey_mode"`     // "global" or "terminal"
	CPUTemperature string `json:"cpu_temperature"` // "placeholder" or "sensors"
	ShowHint       bool   `json:"show_hint"`
}

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() *OverlayConfiguration {
	return &OverlayConfiguration{
		Theme:          "lich-king",
		PanelWidth:     34,
		Hotkey:         "alt+t",
		HotkeyMode:     HotkeyModeGlobal,
		CPUTemperature: "placeholder",
		ShowHint:       true,
	}
}

// Validate fills in blanks with defaults and rejects values the overlay
// cannot use.
func (c *OverlayConfiguration) Validate() error {
	def := DefaultConfig()

	if c.Theme == "" {
		c.Theme = def.Theme
	}
	c.Theme = strings.ToLower(c.Theme)
	if _, ok := themes[c.Theme]; !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	if c.PanelWidth == 0 {
		c.PanelWidth = def.PanelWidth
	}
	if c.PanelWidth < minPanelWidth || c.PanelWidth > maxPanelWidth {
		return fmt.Errorf("panel_width %d out of range [%d, %d]", c.PanelWidth, minPanelWidth, maxPanelWidth)
	}

	if c.Hotkey == "" {
		c.Hotkey = def.Hotkey
	}
	if _, err := hotkey.ParseChord(c.Hotkey); err != nil {
		return err
	}

	if c.HotkeyMode == "" {
		c.HotkeyMode = def.HotkeyMode
	}
	c.HotkeyMode = strings.ToLower(c.HotkeyMode)
	if c.HotkeyMode != HotkeyModeGlobal && c.HotkeyMode != HotkeyModeTerminal {
		return fmt.Errorf("hotkey_mode must be %q or %q, got %q", HotkeyModeGlobal, HotkeyModeTerminal, c.HotkeyMode)
	}

	if c.CPUTemperature == "" {
		c.CPUTemperature = def.CPUTemperature
	}
	if _, err := metrics.ParseCPUTemperatureSource(c.CPUTemperature); err != nil {
		return err
	}

	return nil
}

// Chord returns the parsed toggle hotkey. Call after Validate.
func (c *OverlayConfiguration) Chord() hotkey.Chord {
	chord, err := hotkey.ParseChord(c.Hotkey)
	if err != nil {
		return hotkey.DefaultChord
	}
	return chord
}

// TemperatureSource returns the parsed CPU temperature source. Call after
// Validate.
func (c *OverlayConfiguration) TemperatureSource() metrics.CPUTemperatureSource {
	src, _ := metrics.ParseCPUTemperatureSource(c.CPUTemperature)
	return src
}

var themes = map[string]struct{}{
	"lich-king": {},
	"mono":      {},
}

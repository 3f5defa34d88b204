package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/perfoverlay/internal/metrics"
)

// alertPercent is where VRAM usage switches to the alert colour.
const alertPercent = 80

type GPUModel struct {
	width  int
	styles Styles
	bar    progress.Model
	alert  progress.Model
}

func NewGPUModel(styles Styles) GPUModel {
	return GPUModel{
		styles: styles,
		bar:    progress.New(progress.WithSolidFill(styles.BarFill), progress.WithoutPercentage()),
		alert:  progress.New(progress.WithSolidFill(styles.AlertFill), progress.WithoutPercentage()),
	}
}

func (m *GPUModel) SetSize(w int) {
	m.width = w
	m.bar.Width = w
	m.alert.Width = w
}

func (m GPUModel) View(s metrics.GPUSnapshot) string {
	vram := fmt.Sprintf("%.1f/%.1f GB (%d%%)", s.MemoryUsedGB, s.MemoryTotalGB, s.MemoryUsedPercent)

	bar := m.bar
	if s.MemoryUsedPercent > alertPercent {
		bar = m.alert
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(truncate("GPU: "+s.Name, m.width)),
		styledRow(m.styles, m.width, "VRAM Usage:", vram, m.vramStyle(s.MemoryUsedPercent)),
		bar.ViewAs(percentRatio(s.MemoryUsedPercent)),
		row(m.styles, m.width, "Temperature:", fmt.Sprintf("%d°C", s.Temperature)),
		row(m.styles, m.width, "Core Clock:", fmt.Sprintf("%d MHz", s.CoreClock)),
		row(m.styles, m.width, "Memory Clock:", fmt.Sprintf("%d MHz", s.MemoryClock)),
		row(m.styles, m.width, "Fan Speed:", fmt.Sprintf("%d%%", s.FanSpeed)),
		row(m.styles, m.width, "Power Usage:", fmt.Sprintf("%.1f W", s.PowerUsage)),
	)
}

func (m GPUModel) vramStyle(pct int8) lipgloss.Style {
	if pct > alertPercent {
		return m.styles.Alert
	}
	return m.styles.Value
}

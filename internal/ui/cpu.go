package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/perfoverlay/internal/metrics"
)

type CPUModel struct {
	width  int
	styles Styles
}

func NewCPUModel(styles Styles) CPUModel {
	return CPUModel{styles: styles}
}

func (m *CPUModel) SetSize(w int) {
	m.width = w
}

func (m CPUModel) View(s metrics.CPUSnapshot) string {
	lines := []string{
		row(m.styles, m.width, "CPU Usage:", fmt.Sprintf("%d%%", s.UsagePercent)),
	}
	// No reading, no line.
	if temp, ok := s.TemperatureC(); ok {
		lines = append(lines, row(m.styles, m.width, "CPU Temperature:", fmt.Sprintf("%.1f°C", temp)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

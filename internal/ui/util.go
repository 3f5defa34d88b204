package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func fpsLabel(fps int) string {
	return fmt.Sprintf("%d FPS", fps)
}

// row renders a label on the left and its value flush right.
func row(st Styles, width int, label, value string) string {
	return styledRow(st, width, label, value, st.Value)
}

func styledRow(st Styles, width int, label, value string, valueStyle lipgloss.Style) string {
	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return st.Label.Render(label) + strings.Repeat(" ", gap) + valueStyle.Render(value)
}

// percentRatio maps a displayed percentage onto a 0..1 bar fill.
func percentRatio(pct int8) float64 {
	switch {
	case pct <= 0:
		return 0
	case pct >= 100:
		return 1
	default:
		return float64(pct) / 100
	}
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

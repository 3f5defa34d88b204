package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors based on "Wrath of the Lich King" palette
const (
	ColorMidnightBlack = "#0A001F" // Background
	ColorIceBlue       = "#81A1C1" // Primary UI/Text
	ColorSteelGray     = "#4C566A" // Panels/Borders
	ColorPaleBlue      = "#8FBCBB" // Graphs/Normal Metrics
	ColorBloodCrimson  = "#C41E3A" // Alerts/Errors
)

// Monochrome palette for terminals with poor colour support
const (
	ColorBlack = "#000000"
	ColorWhite = "#E5E5E5"
	ColorGray  = "#7F7F7F"
)

// Styles is the set of lipgloss styles a panel is drawn with.
type Styles struct {
	Panel     lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Alert     lipgloss.Style
	Separator lipgloss.Style
	BarFill   string
	AlertFill string
}

type palette struct {
	background, text, border, metric, alert string
}

var palettes = map[string]palette{
	"lich-king": {ColorMidnightBlack, ColorIceBlue, ColorSteelGray, ColorPaleBlue, ColorBloodCrimson},
	"mono":      {ColorBlack, ColorWhite, ColorGray, ColorWhite, ColorWhite},
}

// NewStyles builds the styles for a theme, falling back to lich-king.
func NewStyles(theme string) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["lich-king"]
	}

	return Styles{
		// The dark fill stands in for the translucent backdrop.
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Background(lipgloss.Color(p.background)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.border)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.metric)),
		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.alert)).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.border)),
		BarFill:   p.metric,
		AlertFill: p.alert,
	}
}

package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

// newKeyMap binds the terminal keys. terminalKey is the chord as the
// terminal reports it, or "" when toggling is left to the global hotkey.
func newKeyMap(chordLabel, terminalKey string) keyMap {
	keys := []string{chordLabel}
	if terminalKey != "" {
		keys = []string{terminalKey}
	}
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp("["+chordLabel+"]", "Toggle Overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type FooterModel struct {
	width int
	show  bool
	keys  keyMap
	help  help.Model
}

func NewFooterModel(keys keyMap, show bool, styles Styles) FooterModel {
	h := help.New()
	h.Styles.ShortKey = styles.Label
	h.Styles.ShortDesc = styles.Label
	h.Styles.ShortSeparator = styles.Separator
	return FooterModel{keys: keys, show: show, help: h}
}

func (m *FooterModel) SetSize(w int) {
	m.width = w
	m.help.Width = w
}

func (m FooterModel) View() string {
	if !m.show {
		return ""
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.help.ShortHelpView([]key.Binding{m.keys.Toggle}))
}

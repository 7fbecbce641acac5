package monitor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// renderHelpOverlay shows every binding in columns, centred in the window.
func (m Model) renderHelpOverlay() string {
	full := m.help
	full.ShowAll = true

	box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Keyboard Shortcuts"),
		"",
		full.FullHelpView(m.keys.FullHelp()),
		"",
		LabelStyle.Render("Press ? or esc to close"),
	))

	width, height := m.width, m.height
	if width == 0 {
		width = defaultWidth
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

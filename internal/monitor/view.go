package monitor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 120

// Column split of a block, in twelfths of the width.
const (
	listColumns    = 3
	detailsColumns = 3
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with the main key hints.
func (m Model) renderHeader() string {
	flame := FlameStyle.Render("♨")
	title := flame + TitleStyle.Render(" senso ") + flame

	hints := LabelStyle.Render(" | Pin (P/Enter) | Down (J/↓) | Up (K/↑)")

	var status string
	if n := len(m.snap.Chips); n > 0 {
		status = lipgloss.NewStyle().Foreground(ColorTextMuted).
			Render(fmt.Sprintf(" | %d chips | %s", n, m.tickRate))
	}

	return HeaderStyle.Render(title + hints + status)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(m.keys))
}

// bodyWidth returns the width available to blocks.
func (m Model) bodyWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return m.width
}

// renderBody renders the selected block, and the pinned block when the
// pinned chip is present in the current enumeration.
func (m Model) renderBody() string {
	if m.lastErr != nil {
		if errors.Is(m.lastErr, ErrNoChipsAvailable) {
			return LabelStyle.Render("No sensor chips found. Is the hwmon or nvml backend available?")
		}
		return ErrorStyle.Render("✗ " + m.lastErr.Error())
	}
	if len(m.snap.Chips) == 0 {
		return LabelStyle.Render("Reading sensors...")
	}

	blocks := []string{m.renderBlock(m.snap.Current, false)}
	if m.snap.Pinned >= 0 {
		blocks = append(blocks, m.renderBlock(m.snap.Pinned, true))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderBlock renders one chip-list / details / graphs row for the chip at index.
func (m Model) renderBlock(index int, pinned bool) string {
	width := m.bodyWidth()
	listWidth := width * listColumns / 12
	detailsWidth := width * detailsColumns / 12
	graphsWidth := width - listWidth - detailsWidth

	chip := m.snap.Chips[index]

	list := m.renderChipList(index)
	details := renderChipDetails(chip, m.bands)
	var graphs []string
	for _, f := range chip.Temperatures() {
		graphs = append(graphs, m.renderTemperatureGraph(f, graphsWidth-4)...)
	}
	if len(graphs) == 0 {
		graphs = []string{LabelStyle.Render("No temperature sensors")}
	}

	rows := len(list)
	if len(details) > rows {
		rows = len(details)
	}
	if len(graphs) > rows {
		rows = len(graphs)
	}

	listTitle := "Sensors List"
	if pinned {
		listTitle = "Pinned"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		Section(listTitle, "", list, listWidth, rows),
		Section("Sensor Details", "", details, detailsWidth, rows),
		Section("Temperatures", chip.Prefix, graphs, graphsWidth, rows),
	)
}

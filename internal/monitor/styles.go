package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Temperature bands
	ColorCool = lipgloss.Color("#3DA9FC") // Ice blue
	ColorWarm = lipgloss.Color("#FFAA00") // Electric amber
	ColorHot  = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
	ColorFlame     = lipgloss.Color("#FF3B30") // Title glyph
)

// Default band thresholds, as a percentage of a feature's critical value.
const (
	WarningThreshold  = 50
	CriticalThreshold = 80
	// DefaultCritical is the assumed critical temperature in °C for features
	// that do not report one.
	DefaultCritical = 100.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	FlameStyle = lipgloss.NewStyle().
			Foreground(ColorFlame)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorHot)

	// ChipSelectedStyle inverts the highlighted row of the chip list.
	ChipSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(ColorTextPrimary)

	ChipStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// Bands maps temperatures to colours by their share of the critical value.
type Bands struct {
	WarningPercent  int
	CriticalPercent int
	DefaultCritical float64
}

// DefaultBands returns the cool/warm/hot split used when nothing is configured.
func DefaultBands() Bands {
	return Bands{
		WarningPercent:  WarningThreshold,
		CriticalPercent: CriticalThreshold,
		DefaultCritical: DefaultCritical,
	}
}

// Percent returns current as a percentage of critical, clamped to 0-100.
// A zero critical value leaves the reading unscaled.
func Percent(current, critical float64) float64 {
	p := current
	if critical != 0 {
		p = current / critical * 100
	}
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Color returns the band colour for a percentage of critical.
func (b Bands) Color(percent float64) lipgloss.Color {
	return BandColor(percent, b.WarningPercent, b.CriticalPercent)
}

// BandColor returns cool below warning, warm below critical, hot otherwise.
func BandColor(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorHot
	case percent >= float64(warning):
		return ColorWarm
	default:
		return ColorCool
	}
}

// ThinProgressBar renders a minimal line-based progress bar using thin characters.
// Uses ━ for filled segments and ─ for empty segments.
func ThinProgressBar(width int, percent float64, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}

	// Clamp percentage to 0-100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	// Left: "╭─ " (3 chars) + title + " " (1 char)
	leftWidth := 3 + lipgloss.Width(title) + 1

	// Right: " " (1 char) + value + " ╮" (2 chars)
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorAccentDim).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰────────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}

	middle := strings.Repeat("─", width-2)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return borderStyle.Render("╰" + middle + "╯")
}

// SectionContentLine renders a content line with left and right borders, properly padded to width.
// Content wider than the section is truncated.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	// Inner width is total width minus "│ " on the left and " │" on the right
	innerWidth := width - 4
	if lipgloss.Width(content) > innerWidth {
		content = lipgloss.NewStyle().MaxWidth(innerWidth).Render(content)
	}

	padding := innerWidth - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}

// Section renders a complete bordered section with at least minLines content rows.
func Section(title, value string, lines []string, width, minLines int) string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, SectionHeader(title, value, width))
	for _, line := range lines {
		out = append(out, SectionContentLine(line, width))
	}
	for i := len(lines); i < minLines; i++ {
		out = append(out, SectionContentLine("", width))
	}
	out = append(out, SectionFooter(width))
	return strings.Join(out, "\n")
}

package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Temperature band thresholds, in percent of the critical value.
const (
	WarningPercent  = 50
	CriticalPercent = 80
)

// ThresholdColor returns green below warning, yellow below critical, red otherwise.
func ThresholdColor(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorError
	case percent >= float64(warning):
		return ColorWarning
	default:
		return ColorSuccess
	}
}

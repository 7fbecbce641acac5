package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		critical float64
		want     float64
	}{
		{"half of critical", 50, 100, 50},
		{"over critical clamps", 120, 100, 100},
		{"negative clamps", -5, 100, 0},
		{"zero critical is unscaled", 42, 0, 42},
		{"custom critical", 45, 90, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percent(tt.current, tt.critical), 0.0001)
		})
	}
}

func TestBandColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    lipgloss.Color
	}{
		{0, ColorCool},
		{49.9, ColorCool},
		{50, ColorWarm},
		{79.9, ColorWarm},
		{80, ColorHot},
		{100, ColorHot},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandColor(tt.percent, WarningThreshold, CriticalThreshold), "percent %v", tt.percent)
	}
}

func TestBands_CustomThresholds(t *testing.T) {
	b := Bands{WarningPercent: 60, CriticalPercent: 90, DefaultCritical: 100}

	assert.Equal(t, ColorCool, b.Color(55))
	assert.Equal(t, ColorWarm, b.Color(85))
	assert.Equal(t, ColorHot, b.Color(95))
}

func TestThinProgressBar(t *testing.T) {
	bar := ThinProgressBar(10, 50, ColorCool)
	assert.Equal(t, 10, lipgloss.Width(bar))
	assert.Contains(t, bar, strings.Repeat("━", 5))

	assert.Equal(t, 1, lipgloss.Width(ThinProgressBar(0, 50, ColorCool)))
	assert.NotContains(t, ThinProgressBar(4, -20, ColorCool), "━")
}

func TestSection(t *testing.T) {
	out := Section("Sensors List", "", []string{"acpitz/acpitz-virtual-0"}, 30, 3)
	lines := strings.Split(out, "\n")

	// header + 3 content rows + footer
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.Contains(t, lines[0], "Sensors List")
	assert.Contains(t, lines[1], "acpitz/acpitz-virtual-0")
}

func TestSectionContentLine_TruncatesWideContent(t *testing.T) {
	line := SectionContentLine(strings.Repeat("x", 50), 20)
	assert.Equal(t, 20, lipgloss.Width(line))
}

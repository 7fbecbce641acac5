package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/senso/internal/sensor"
)

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// graphHeight is the number of braille rows per temperature graph.
const graphHeight = 3

// axisWidth is the space reserved for the y-axis labels right of a graph.
const axisWidth = 7

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// RenderBrailleGraph renders data as a filled braille area graph on a fixed
// 0..maxVal scale. Each character holds 2 data points and 4 vertical levels.
// Data shorter than the graph is right-aligned so the newest reading is
// always at the right edge.
func RenderBrailleGraph(data []float64, width, height int, maxVal float64, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if maxVal <= 0 {
		maxVal = DefaultCritical
	}

	totalDots := height * 4
	targetPoints := width * 2

	resampled := data
	if len(data) > targetPoints {
		resampled = resampleData(data, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	horizOffset := targetPoints - len(resampled)
	if horizOffset < 0 {
		horizOffset = 0
	}

	for i, val := range resampled {
		normalized := normalizeValue(val, 0, maxVal)
		dotHeight := clampInt(int(normalized*float64(totalDots)), totalDots)

		charCol := (i + horizOffset) / 2
		if charCol >= width {
			continue
		}
		subCol := (i + horizOffset) % 2

		// Fill dots from bottom up
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			if row < 0 {
				continue
			}
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// resampleData resamples data to the target size.
// When downsampling (compressing), uses max-based sampling to preserve peaks/spikes.
// When upsampling (expanding), uses linear interpolation.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	// Downsampling: use max within each bucket to preserve peaks
	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}
			if start < 0 {
				start = 0
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxVal {
					maxVal = data[j]
				}
			}
			result[i] = maxVal
		}
		return result
	}

	// Upsampling: linear interpolation
	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}

	return result
}

// formatCelsius renders a temperature without a trailing ".0".
func formatCelsius(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%dC", int64(v))
	}
	return fmt.Sprintf("%.1fC", v)
}

// renderTemperatureGraph renders one feature: a title line with the live
// reading, then the history graph with 0, half and critical axis labels.
func (m Model) renderTemperatureGraph(f sensor.Feature, width int) []string {
	label := f.DisplayLabel()
	current := f.Current()
	critical := f.Critical(m.bands.DefaultCritical)
	color := m.bands.Color(Percent(current, critical))

	title := LabelStyle.Render(label) + " " +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%.1f°C", current))

	graphWidth := width - axisWidth
	if graphWidth < 4 {
		graphWidth = 4
	}
	data := m.store.Tail(label, graphWidth*2)
	graph := strings.Split(RenderBrailleGraph(data, graphWidth, graphHeight, critical, color), "\n")

	axis := []string{formatCelsius(critical), formatCelsius(float64(int64(critical/2 + 0.5))), "0C"}
	lines := []string{title}
	for i, row := range graph {
		tick := ""
		switch i {
		case 0:
			tick = axis[0]
		case len(graph) / 2:
			tick = axis[1]
		case len(graph) - 1:
			tick = axis[2]
		}
		lines = append(lines, row+" "+LabelStyle.Render(tick))
	}
	return lines
}

package monitor

import (
	"fmt"

	"github.com/rileyhilliard/senso/internal/sensor"
	"github.com/rileyhilliard/senso/internal/ui"
)

// renderChipList renders every chip as "prefix/name", highlighting highlight.
func (m Model) renderChipList(highlight int) []string {
	lines := make([]string, 0, len(m.snap.Chips))
	for i, chip := range m.snap.Chips {
		name := chip.DisplayName()
		if i == m.snap.Pinned {
			name += " " + ui.SymbolPinned
		}
		if i == highlight {
			lines = append(lines, ChipSelectedStyle.Render(name))
		} else {
			lines = append(lines, ChipStyle.Render(name))
		}
	}
	return lines
}

// detailBarWidth is the width of the percent-of-critical bar next to each
// feature label.
const detailBarWidth = 10

// renderChipDetails lists each temperature feature with a bar showing how
// close it is to critical, followed by its sub-readings.
func renderChipDetails(chip sensor.Chip, bands Bands) []string {
	var lines []string
	for _, f := range chip.Temperatures() {
		pct := Percent(f.Current(), f.Critical(bands.DefaultCritical))
		lines = append(lines, ValueStyle.Render(f.DisplayLabel())+" "+ThinProgressBar(detailBarWidth, pct, bands.Color(pct)))
		for _, sf := range f.SubFeatures {
			lines = append(lines, LabelStyle.Render(fmt.Sprintf(" [%s %s]", sf.Name, formatReading(f, sf))))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, LabelStyle.Render("No temperature sensors"))
	}
	return lines
}

// formatReading renders a sub-reading in the feature's unit.
// Alarm flags are shown as bare 0 or 1.
func formatReading(f sensor.Feature, sf sensor.SubFeature) string {
	if sf.Kind == sensor.SubAlarm || sf.Kind == sensor.SubCritAlarm {
		return fmt.Sprintf("%.0f", sf.Value)
	}
	return fmt.Sprintf("%.1f%s", sf.Value, f.DisplayUnit())
}

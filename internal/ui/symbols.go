package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Unicode symbols for status indicators.
const (
	SymbolFail    = "✗"
	SymbolSkipped = "⊘"
	SymbolPinned  = "*"
)

// PrintError writes err in red, prefixed with the failure symbol unless the
// message already carries it.
func PrintError(w io.Writer, err error) {
	msg := strings.TrimRight(err.Error(), "\n")
	if !strings.HasPrefix(msg, SymbolFail) {
		msg = SymbolFail + " " + msg
	}
	style := lipgloss.NewStyle().Foreground(ColorError)
	fmt.Fprintln(w, style.Render(msg))
}

// PrintSkipped writes a muted notice for something that was left out.
func PrintSkipped(w io.Writer, format string, args ...interface{}) {
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintln(w, style.Render(SymbolSkipped+" "+fmt.Sprintf(format, args...)))
}

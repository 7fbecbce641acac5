// Package ui provides the styled text output shared by senso's one-shot
// commands.
//
// The full-screen dashboard lives in the monitor package. This package covers
// what is printed to plain stdout: tables, sparklines, status symbols and the
// error banner.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Cool readings, successful operations
//	ColorWarning   (yellow) - Warm readings, skipped backends
//	ColorError     (red)    - Hot readings and failures
//	ColorMuted     (gray)   - Secondary text
//
// # Tables
//
//	out := ui.RenderSimpleTable(columns, rows)
//
// RenderSimpleTable renders a non-interactive Bubbles table, sized to its rows.
package ui

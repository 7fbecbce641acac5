// Package monitor implements the senso terminal dashboard.
//
// The dashboard lists sensor chips, shows the temperature readings of the
// selected chip, and graphs each temperature's recent history, colour banded
// by its share of the critical value.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds application state (snapshot, history, layout)
//   - Update: Processes messages (keystrokes, tick events, resizes)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Model      - The Bubble Tea model containing all dashboard state
//	Navigator  - Selected and pinned chips, held as identities
//	Sampler    - Records every temperature reading into a history.Store
//
// # Message Flow
//
// The dashboard runs on one fixed tick:
//
//  1. tickMsg fires at the configured tick rate (default 100ms)
//  2. Update enumerates chips once, samples them, and resolves the navigator
//  3. View() re-renders from that state
//
// Key presses are applied to the Navigator inside Update, so no state is
// shared across goroutines.
//
// # Pinning
//
// Pinning keeps a second chip on screen below the selected one. The pin is an
// identity, not a snapshot: if the pinned chip disappears its block is hidden,
// and it returns if the chip does.
//
// # Keyboard Shortcuts
//
//	q, Esc, Ctrl+C  - Quit
//	j/k, ↓/↑        - Next / previous chip (stops at either end)
//	Home/End        - First / last chip
//	Enter, p        - Pin or unpin the current chip
//	PgUp/PgDn       - Scroll
//	?               - Toggle help overlay
package monitor

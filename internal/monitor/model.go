package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensor"
)

// DefaultTickRate is the sampling and redraw interval.
const DefaultTickRate = 100 * time.Millisecond

// Reserved rows around the scrollable body.
const (
	headerHeight = 2
	footerHeight = 1
)

// Options configures a dashboard Model.
type Options struct {
	TickRate    time.Duration
	HistorySize int
	Bands       Bands
}

// Model is the Bubble Tea model for the sensor dashboard.
//
// Each tick samples every chip into the history store and resolves the
// navigator against the same enumeration, so graphs and chip list always
// agree within a frame.
type Model struct {
	registry  *sensor.Registry
	navigator *Navigator
	sampler   *Sampler
	store     *history.Store
	log       logger.Logger

	tickRate time.Duration
	bands    Bands
	keys     KeyMap
	help     help.Model

	snap    Snapshot
	lastErr error
	ticks   int

	width    int
	height   int
	showHelp bool
	quitting bool

	// Body viewport for content taller than the terminal
	viewport      viewport.Model
	viewportReady bool
}

// tickMsg signals a periodic sample and redraw.
type tickMsg time.Time

// NewModel creates a dashboard over registry.
func NewModel(registry *sensor.Registry, opts Options, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.HistorySize < 1 {
		opts.HistorySize = history.DefaultCapacity
	}
	if opts.Bands == (Bands{}) {
		opts.Bands = DefaultBands()
	}

	store := history.NewStore()
	return Model{
		registry:  registry,
		navigator: NewNavigator(registry),
		sampler:   NewSampler(registry, store, opts.HistorySize, log),
		store:     store,
		log:       log,
		tickRate:  opts.TickRate,
		bands:     opts.Bands,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		snap:      Snapshot{Pinned: -1},
	}
}

// Init samples immediately, then on every tick.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case tickMsg:
		m.tick()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the tick rate.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tick enumerates once, samples, and resolves the navigator.
func (m *Model) tick() {
	m.ticks++
	chips, err := m.registry.Chips()
	if err != nil {
		m.setError(err)
		return
	}
	m.sampler.Sample(chips)
	m.resolve(chips)
}

// refresh re-resolves the navigator without sampling, after a key press.
func (m *Model) refresh() {
	chips, err := m.registry.Chips()
	if err != nil {
		m.setError(err)
		return
	}
	m.resolve(chips)
}

func (m *Model) resolve(chips []sensor.Chip) {
	snap, err := m.navigator.Resolve(chips)
	m.snap = snap
	m.lastErr = err
	m.updateViewportContent()
}

func (m *Model) setError(err error) {
	if m.lastErr == nil || m.lastErr.Error() != err.Error() {
		m.log.Error("enumerate chips: %v", err)
	}
	m.lastErr = err
	m.snap = Snapshot{Pinned: -1}
	m.updateViewportContent()
}

// updateViewportContent re-renders the body into the viewport.
func (m *Model) updateViewportContent() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

// Snapshot returns the state resolved on the last tick or key press.
func (m Model) Snapshot() Snapshot {
	return m.snap
}

// Store returns the history store the dashboard samples into.
func (m Model) Store() *history.Store {
	return m.store
}

// Navigator returns the dashboard's chip navigator.
func (m Model) Navigator() *Navigator {
	return m.navigator
}

// Err returns the error from the last enumeration, if any.
func (m Model) Err() error {
	return m.lastErr
}

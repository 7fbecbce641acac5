package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/monitor"
	"github.com/rileyhilliard/senso/internal/sensor"
)

// isTerminal reports whether stdout is interactive. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// monitorCommand starts the TUI dashboard.
func monitorCommand(cmd *cobra.Command) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if !isTerminal() {
		return errors.New(errors.ErrUI,
			"The dashboard needs an interactive terminal",
			"Use 'senso list' for one-shot output you can pipe or redirect.")
	}

	log, closer, err := startLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	backend, _, err := openBackends(cfg, log)
	if err != nil {
		return err
	}
	registry := sensor.NewRegistry(backend)
	defer func() {
		if cerr := registry.Close(); cerr != nil {
			log.Warn("close backends: %v", cerr)
		}
	}()

	model := monitor.NewModel(registry, monitor.Options{
		TickRate:    cfg.TickRate,
		HistorySize: cfg.HistorySize,
		Bands:       bandsFromConfig(cfg),
	}, log)

	log.Info("dashboard started: tick %s, history %d", cfg.TickRate, cfg.HistorySize)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"The dashboard stopped unexpectedly",
			"Check the log file for details.")
	}

	log.Info("dashboard stopped")
	return nil
}

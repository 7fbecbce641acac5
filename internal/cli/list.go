package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/monitor"
	"github.com/rileyhilliard/senso/internal/sensor"
	"github.com/rileyhilliard/senso/internal/ui"
)

// trendWidth is the number of readings shown in the trend column.
const trendWidth = 16

// List command flags
var (
	listSamples int
	listAll     bool
)

// listCmd prints every chip and its readings once
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print sensor chips and readings as a table",
	Long: `Enumerate every sensor chip once and print its readings as a table.

By default only temperature sensors are shown. With --samples, senso samples
several times at the tick rate first and adds a trend sparkline per sensor.

Examples:
  senso list
  senso list --all
  senso list --samples 20 --tick-rate 250ms`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(cmd)
	},
}

func init() {
	listCmd.Flags().IntVar(&listSamples, "samples", 1, "readings to take before printing (adds a trend column when > 1)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "include fans, voltages and other non-temperature features")
	rootCmd.AddCommand(listCmd)
}

func listCommand(cmd *cobra.Command) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log, closer, err := startLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	backend, skipped, err := openBackends(cfg, log)
	if err != nil {
		return err
	}
	registry := sensor.NewRegistry(backend)
	defer registry.Close()

	out := cmd.OutOrStdout()
	for _, s := range skipped {
		ui.PrintSkipped(cmd.ErrOrStderr(), "%s backend skipped: %v", s.Name, s.Err)
	}

	return runList(out, registry, cfg, log, listOptions{Samples: listSamples, All: listAll})
}

// listOptions controls what runList samples and prints.
type listOptions struct {
	Samples int
	All     bool
}

// runList samples the registry and writes the table to w.
func runList(w io.Writer, registry *sensor.Registry, cfg *config.Config, log logger.Logger, opts listOptions) error {
	if opts.Samples < 1 {
		opts.Samples = 1
	}

	store := history.NewStore()
	sampler := monitor.NewSampler(registry, store, cfg.HistorySize, log)

	for i := 0; i < opts.Samples; i++ {
		if i > 0 {
			time.Sleep(cfg.TickRate)
		}
		if _, err := sampler.Tick(); err != nil {
			return errors.Wrap(err, "Couldn't read sensors")
		}
	}

	chips, err := registry.Chips()
	if err != nil {
		return errors.Wrap(err, "Couldn't read sensors")
	}
	if len(chips) == 0 {
		return errors.WrapWithCode(monitor.ErrNoChipsAvailable, errors.ErrSensor,
			"No sensor chips found",
			"Is the hwmon or nvml backend available?")
	}

	fmt.Fprintln(w, renderChipTable(chips, store, cfg.Display.DefaultCritical, opts))
	return nil
}

// renderChipTable builds one row per feature. Trends are only shown once
// more than one reading was taken.
func renderChipTable(chips []sensor.Chip, store *history.Store, defaultCritical float64, opts listOptions) string {
	columns := []ui.TableColumn{
		{Title: "Chip", Width: 16},
		{Title: "Bus", Width: 7},
		{Title: "Feature", Width: 12},
		{Title: "Kind", Width: 11},
		{Title: "Current", Width: 9},
		{Title: "Critical", Width: 9},
	}
	showTrend := opts.Samples > 1
	if showTrend {
		columns = append(columns, ui.TableColumn{Title: "Trend", Width: trendWidth})
	}

	var rows [][]string
	for _, chip := range chips {
		for _, f := range chip.Features {
			if !opts.All && f.Kind != sensor.KindTemperature {
				continue
			}

			critical := "-"
			if crit, ok := f.Value(sensor.SubCrit); ok {
				critical = formatFeatureValue(f, crit)
			}

			row := []string{
				chip.DisplayName(),
				chip.Bus,
				f.DisplayLabel(),
				f.Kind.String(),
				formatFeatureValue(f, f.Current()),
				critical,
			}
			if showTrend {
				trend := ""
				if f.Kind == sensor.KindTemperature {
					series := store.Tail(f.DisplayLabel(), trendWidth)
					trend = ui.RenderSparkline(series, trendWidth, f.Critical(defaultCritical))
				}
				row = append(row, trend)
			}
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return "No matching sensors. Use --all to include non-temperature features."
	}
	return ui.RenderSimpleTable(columns, rows)
}

// formatFeatureValue renders v in the feature's unit.
func formatFeatureValue(f sensor.Feature, v float64) string {
	return fmt.Sprintf("%.1f%s", v, f.DisplayUnit())
}

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/ui"
)

// Persistent flags shared by every command
var (
	cfgFile      string
	tickRateFlag time.Duration
	historyFlag  int
	backendFlag  []string
)

// rootCmd runs the live dashboard
var rootCmd = &cobra.Command{
	Use:   "senso",
	Short: "Live terminal dashboard for hardware temperature sensors",
	Long: `senso polls hardware temperature sensors and renders the chip list,
per-chip readings, and a rolling temperature history for every sensor.

Sensors are read from Linux hwmon (/sys/class/hwmon) and, when a driver is
present, NVIDIA GPUs through NVML.

Keyboard shortcuts:
  down/j      Select next chip
  up/k        Select previous chip
  home/g      First chip
  end/G       Last chip
  enter/p     Pin or unpin the selected chip
  ?           Show help
  q / esc     Quit

Examples:
  senso
  senso --tick-rate 500ms
  senso --backend hwmon`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for senso.

Examples:
  # Bash
  senso completion bash > /etc/bash_completion.d/senso

  # Zsh
  senso completion zsh > "${fpath[1]}/_senso"

  # Fish
  senso completion fish > ~/.config/fish/completions/senso.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.senso.yaml or ~/.config/senso/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&tickRateFlag, "tick-rate", 0, "sampling and redraw interval (e.g., 100ms, 1s)")
	rootCmd.PersistentFlags().IntVar(&historyFlag, "history", 0, "readings kept per temperature sensor")
	rootCmd.PersistentFlags().StringSliceVar(&backendFlag, "backend", nil, "sensor backends to use (hwmon, nvml)")

	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command and exits with a status derived from the
// error code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			err = unknownCommandError(err)
		}
		ui.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "senso"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// unknownCommandError turns a cobra usage error into a structured one.
func unknownCommandError(err error) error {
	if name := extractUnknownCommand(err); name != "" && strings.HasPrefix(err.Error(), "unknown command") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a senso command", name),
			"Run 'senso --help' to see what's available.")
	}
	return errors.WrapWithCode(err, errors.ErrConfig,
		"Couldn't parse the command line",
		"Run 'senso --help' for usage.")
}

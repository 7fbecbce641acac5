package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
)

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration senso would run with, after the config file,
SENSO_* environment variables and flags have been applied.

The output is a valid config file.

Examples:
  senso config
  senso config > .senso.yaml
  senso config --tick-rate 1s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't render the config",
				"This is a bug, please report it.")
		}

		out := cmd.OutOrStdout()
		if path != "" {
			fmt.Fprintf(out, "# loaded from %s\n", path)
		} else {
			fmt.Fprintln(out, "# defaults (no config file found)")
		}
		_, err = out.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/monitor"
)

// flagCommand builds a command bound to the persistent flag variables and
// restores them when the test ends.
func flagCommand(t *testing.T) *cobra.Command {
	t.Helper()
	origCfg, origTick, origHistory, origBackend := cfgFile, tickRateFlag, historyFlag, backendFlag
	t.Cleanup(func() {
		cfgFile, tickRateFlag, historyFlag, backendFlag = origCfg, origTick, origHistory, origBackend
	})

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&cfgFile, "config", "", "")
	cmd.Flags().DurationVar(&tickRateFlag, "tick-rate", 0, "")
	cmd.Flags().IntVar(&historyFlag, "history", 0, "")
	cmd.Flags().StringSliceVar(&backendFlag, "backend", nil, "")
	return cmd
}

func TestApplyFlagOverrides(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "no flags keeps config",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.DefaultConfig(), cfg)
			},
		},
		{
			name: "tick rate",
			args: []string{"--tick-rate", "250ms"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 250*time.Millisecond, cfg.TickRate)
			},
		},
		{
			name: "history",
			args: []string{"--history", "30"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 30, cfg.HistorySize)
			},
		},
		{
			name: "backend list",
			args: []string{"--backend", "nvml"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []string{"nvml"}, cfg.Backends)
			},
		},
		{
			name: "explicit zero is still applied",
			args: []string{"--history", "0"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 0, cfg.HistorySize)
				assert.Error(t, config.Validate(cfg))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := flagCommand(t)
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := config.DefaultConfig()
			applyFlagOverrides(cmd, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadSettings_ValidatesAfterOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cmd := flagCommand(t)
	require.NoError(t, cmd.ParseFlags([]string{"--tick-rate", "1ms"}))

	_, _, err := loadSettings(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too fast")
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, path, err := loadSettings(flagCommand(t))
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, config.DefaultTickRate, cfg.TickRate)
}

func TestBandsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.WarningPercent = 40
	cfg.Display.CriticalPercent = 70
	cfg.Display.DefaultCritical = 90

	assert.Equal(t, monitor.Bands{WarningPercent: 40, CriticalPercent: 70, DefaultCritical: 90}, bandsFromConfig(cfg))
}

// Package cli implements the senso command-line interface.
//
// The root command runs the live dashboard. Subcommands cover one-shot use:
//
//	senso               - Live temperature dashboard
//	senso list          - Print chips and readings as a table
//	senso config        - Print the effective configuration as YAML
//	senso version       - Print build information
//	senso completion    - Generate shell completion scripts
//
// # Settings
//
// Every command resolves its settings the same way: the config file found by
// --config, ./.senso.yaml or ~/.config/senso/config.yaml, then SENSO_*
// environment variables, then the persistent flags (--tick-rate, --history,
// --backend) when they were set explicitly. The result is validated before
// any backend is opened.
//
// # Backends
//
// Each configured backend is opened independently. One that cannot start
// (no NVIDIA driver, missing sysfs) is logged and skipped; the command only
// fails when no backend is left.
package cli

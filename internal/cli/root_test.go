package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sensoerrors "github.com/rileyhilliard/senso/internal/errors"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unknown command error", err: errors.New(`unknown command "foo" for "senso"`), want: true},
		{name: "unknown flag error", err: errors.New(`unknown flag: --foo`), want: true},
		{name: "unknown shorthand", err: errors.New(`unknown shorthand flag: 'x' in -x`), want: true},
		{name: "other error", err: errors.New("permission denied"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "standard cobra format", err: errors.New(`unknown command "foo" for "senso"`), want: "foo"},
		{name: "command with hyphen", err: errors.New(`unknown command "my-cmd" for "senso"`), want: "my-cmd"},
		{name: "no quotes returns empty", err: errors.New("unknown command foo"), want: ""},
		{name: "single quote returns empty", err: errors.New(`unknown command "foo`), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestUnknownCommandError(t *testing.T) {
	err := unknownCommandError(errors.New(`unknown command "lsit" for "senso"`))
	assert.True(t, sensoerrors.IsCode(err, sensoerrors.ErrConfig))
	assert.Contains(t, err.Error(), "'lsit' isn't a senso command")

	err = unknownCommandError(errors.New("unknown flag: --nope"))
	assert.True(t, sensoerrors.IsCode(err, sensoerrors.ErrConfig))
	assert.Contains(t, err.Error(), "unknown flag: --nope")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"list", "config", "version", "completion"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "tick-rate", "history", "backend"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
}

func TestCompletionGeneration(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_senso"},
		{"zsh", "#compdef senso"},
		{"fish", "complete -c senso"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			completionCmd.SetOut(&buf)
			t.Cleanup(func() { completionCmd.SetOut(nil) })

			err := completionCmd.RunE(completionCmd, []string{tt.shell})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

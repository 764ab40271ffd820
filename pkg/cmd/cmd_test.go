package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/zoneprof/zoneprof/pkg/cmd/options"
)

func testOptions() *options.CommonOptions {
	return options.NewCommonOptions(
		options.WithContext(context.Background()),
		options.WithLogger(log.New(log.ConsoleWriter{Out: os.Stderr})),
	)
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name     string
		options  *options.CommonOptions
		validate func(*testing.T, *cobra.Command)
	}{
		{
			name:    "default command creation",
			options: testOptions(),
			validate: func(t *testing.T, cmd *cobra.Command) {
				require.Equal(t, "zoneprof", cmd.Name())
				require.Contains(t, cmd.Short, "zone-based sampling profiler")
				require.True(t, cmd.HasSubCommands())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand(tt.options)
			require.NotNil(t, cmd)

			if tt.validate != nil {
				tt.validate(t, cmd)
			}
		})
	}
}

func TestCommandFlags(t *testing.T) {
	cmd := NewCommand(testOptions())

	flag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	require.Equal(t, "string", flag.Value.Type())
	require.Equal(t, "info", flag.DefValue)
	require.Contains(t, flag.Usage, "log level")
}

func TestCommandSubcommands(t *testing.T) {
	cmd := NewCommand(testOptions())

	actualSubcommands := make([]string, 0)
	for _, subCmd := range cmd.Commands() {
		actualSubcommands = append(actualSubcommands, subCmd.Name())
	}

	require.Contains(t, actualSubcommands, "demo")
}

func TestCommandHelp(t *testing.T) {
	cmd := NewCommand(testOptions())

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpOutput := output.String()
	require.Contains(t, helpOutput, "zoneprof")
	require.Contains(t, helpOutput, "Available Commands:")
	require.Contains(t, helpOutput, "demo")
}

func TestCommandInvalidFlag(t *testing.T) {
	cmd := NewCommand(testOptions())

	var output bytes.Buffer
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--invalid-flag"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, output.String(), "unknown flag")
}

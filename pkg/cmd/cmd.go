package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zoneprof/zoneprof/internal/settings"
	"github.com/zoneprof/zoneprof/pkg/cmd/demo"
	"github.com/zoneprof/zoneprof/pkg/cmd/options"
)

const logLevelInfo = "info"

func NewCommand(opts *options.CommonOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   settings.CmdName,
		Short: fmt.Sprintf("%s is a zone-based sampling profiler", settings.CmdName),
		Long: fmt.Sprintf(`%s aggregates statistical samples into named zones pushed and popped
around regions of interest, and renders ranked per-function reports.`, settings.CmdName),
		DisableAutoGenTag: true,
	}
	cmd.AddCommand(demo.NewCommand(demo.NewOptions(opts)))
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", logLevelInfo, "Set the log level (trace, debug, info, warn, error, fatal, panic)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(log.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts := options.NewCommonOptions(
		options.WithContext(ctx),
		options.WithLogger(logger),
	)

	if err := NewCommand(opts).Execute(); err != nil {
		os.Exit(1)
	}
}

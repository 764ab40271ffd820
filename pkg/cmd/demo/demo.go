package demo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zoneprof/zoneprof/internal/output"
	"github.com/zoneprof/zoneprof/pkg/profile"
	"github.com/zoneprof/zoneprof/pkg/sampler"
)

const CmdName = "demo"

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdName,
		Short: "Profile a synthetic workload and print the report",
		Long: fmt.Sprintf(`
%s keeps one or more zones active for a fixed duration while the synthetic
sampler replays a weighted workload, then prints the per-zone report.
The built-in workload can be replaced with a YAML file.
`, CmdName),
		DisableAutoGenTag: true,
		RunE:              o.Run,
	}

	cmd.Flags().DurationVarP(&o.duration, "duration", "d", 2*time.Second, "How long to keep the zones active")
	cmd.Flags().StringVarP(&o.workloadPath, "workload", "w", "", "Path to a YAML workload file")
	cmd.Flags().StringSliceVar(&o.zones, "zone", nil, "Zone names to push (repeatable; default one auto-named zone)")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Seed for the synthetic sampler (0 picks one)")
	cmd.Flags().BoolVar(&o.report, "report", false, fmt.Sprintf("Write the JSON report (as %s)", profile.ReportFileName))
	cmd.Flags().BoolVar(&o.status, "status", true, "Periodically print a status of the profile")

	return cmd
}

func (o *Options) Run(_ *cobra.Command, _ []string) error {
	logLevel, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		o.Logger.Fatal().Err(err).Msg("invalid log level")
	}
	o.Logger = o.Logger.Level(logLevel)

	workload := sampler.DefaultWorkload()
	if o.workloadPath != "" {
		f, err := os.Open(o.workloadPath)
		if err != nil {
			return errors.Wrapf(err, "failed to open workload %s", o.workloadPath)
		}
		defer f.Close()
		if workload, err = sampler.LoadWorkload(f); err != nil {
			return errors.Wrapf(err, "failed to load workload %s", o.workloadPath)
		}
	}

	synth := sampler.NewSynthetic(
		sampler.WithContext(o.Ctx),
		sampler.WithWorkload(workload),
		sampler.WithSeed(o.seed),
		sampler.WithLogger(&o.Logger),
	)
	sess := profile.NewSession(
		profile.WithSampler(synth),
		profile.WithLogger(&o.Logger),
	)

	zones := o.zones
	if len(zones) == 0 {
		// An empty name makes the session auto-name the zone.
		zones = []string{""}
	}
	for _, zone := range zones {
		if err := sess.Push(zone); err != nil {
			return errors.Wrap(err, "failed to push zone")
		}
	}

	if err := o.wait(sess); err != nil {
		return err
	}

	for range zones {
		if err := sess.Pop(); err != nil {
			return errors.Wrap(err, "failed to pop zone")
		}
	}

	fmt.Print(sess.Report())

	if o.report {
		f, err := os.Create(profile.ReportFileName)
		if err != nil {
			return errors.Wrap(err, "failed to create the report file")
		}
		defer f.Close()
		if err := sess.Snapshot().WriteReport(f); err != nil {
			return errors.Wrap(err, "failed to write the report")
		}
		o.Logger.Info().Str("path", profile.ReportFileName).Msg("report written")
	}

	return nil
}

// wait blocks for the demo duration, streaming the status bar.
func (o *Options) wait(sess *profile.Session) error {
	runCtx, cancel := context.WithTimeout(o.Ctx, o.duration)
	defer cancel()

	wg, runCtx := errgroup.WithContext(runCtx)
	if o.status {
		started := time.Now()
		var lastTicks uint64
		wg.Go(func() error {
			output.StatusBar(runCtx,
				time.Second, // bar refresh interval.
				func() {
					ticks := sess.TotalTicks()
					rate := ticks - lastTicks
					lastTicks = ticks
					progress := int(time.Since(started) * 100 / o.duration)
					if progress > 100 {
						progress = 100
					}
					output.PrintRight(output.PrettyProfileStatus(progress, sess.ActiveZones(), rate))
				},
			)
			return nil
		})
	}
	wg.Go(func() error {
		<-runCtx.Done()
		return nil
	})
	if err := wg.Wait(); err != nil {
		return err
	}
	if o.status {
		fmt.Println()
	}

	return nil
}

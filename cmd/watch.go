package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"m3u-playlist-cleaner/probe"
	"m3u-playlist-cleaner/updater"
)

var (
	watchOpts     cleanFlags
	watchInterval time.Duration
	watchSchedule string
	watchForce    bool
	watchCacheTTL time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the cleaner on a schedule",
	Long: `Run the cleaning pipeline immediately and then again on every tick
of the schedule. Sources whose content is unchanged since the previous tick
are skipped, and recently probed URLs are trusted for --cache-ttl instead of
being probed again.

Examples:
  # Refresh the TNT playlist every 6 hours
  m3u-playlist-cleaner watch --category french --interval 6h

  # Cron expression, re-probing everything each run
  m3u-playlist-cleaner watch --schedule "0 4 * * *" --force`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchOpts.register(watchCmd, "filtered.m3u", "all")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 12*time.Hour,
		"time between runs")
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "",
		"cron expression, overriding --interval")
	watchCmd.Flags().BoolVar(&watchForce, "force", false,
		"re-probe every run even when no source changed")
	watchCmd.Flags().DurationVar(&watchCacheTTL, "cache-ttl", probe.DefaultCacheTTL,
		"how long probe verdicts stay trusted")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := watchOpts.options()
	if err != nil {
		return err
	}

	schedule := watchSchedule
	if schedule == "" {
		schedule = fmt.Sprintf("@every %s", watchInterval)
	}

	ctx, cancel := signalContext()
	defer cancel()

	u, err := updater.Initialize(ctx, updater.Options{
		Clean:     opts,
		Schedule:  schedule,
		Force:     watchForce,
		CacheTTL:  watchCacheTTL,
		RunOnBoot: true,
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	u.Cron.Stop()
	return nil
}

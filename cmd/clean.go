package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"m3u-playlist-cleaner/channel"
	"m3u-playlist-cleaner/cleaner"
	"m3u-playlist-cleaner/config"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/probe"
)

// cleanFlags are the knobs shared by every command that runs the pipeline.
type cleanFlags struct {
	sources     []string
	category    string
	output      string
	workers     int
	timeout     int
	method      string
	rate        int
	noDedup     bool
	maxFallback int
}

func (f *cleanFlags) register(cmd *cobra.Command, defaultOutput, defaultCategory string) {
	cmd.Flags().StringSliceVar(&f.sources, "sources", nil,
		"playlist URLs to clean, overriding --category")
	cmd.Flags().StringVar(&f.category, "category", defaultCategory,
		"built-in source category, see the sources command")
	cmd.Flags().StringVar(&f.output, "output", defaultOutput,
		"output playlist file")
	cmd.Flags().IntVar(&f.workers, "workers", probe.DefaultWorkers,
		"parallel probe workers (1-50)")
	cmd.Flags().IntVar(&f.timeout, "timeout", 15,
		"per-stream probe timeout in seconds (1-60)")
	cmd.Flags().StringVar(&f.method, "method", probe.MethodFFprobe,
		"probe method: ffprobe, curl or hls")
	cmd.Flags().IntVar(&f.rate, "rate", 0,
		"max probe launches per second, 0 for unpaced")
	cmd.Flags().BoolVar(&f.noDedup, "no-deduplication", false,
		"keep exact duplicate URLs instead of probing them once")
	cmd.Flags().IntVar(&f.maxFallback, "max-fallback", channel.DefaultMaxFallback,
		"candidate streams kept per channel")
}

// options validates the flags and turns them into a cleaner configuration.
func (f *cleanFlags) options() (cleaner.Options, error) {
	if err := config.ValidateWorkers(f.workers); err != nil {
		return cleaner.Options{}, err
	}
	if err := config.ValidateTimeout(f.timeout); err != nil {
		return cleaner.Options{}, err
	}

	sources := playlist.MakeSources(f.sources)
	if len(sources) == 0 {
		sources = playlist.SourcesByCategory(f.category)
	}

	return cleaner.Options{
		Sources:        sources,
		Output:         f.output,
		Workers:        f.workers,
		Timeout:        time.Duration(f.timeout) * time.Second,
		Method:         f.method,
		Rate:           f.rate,
		KeepDuplicates: f.noDedup,
		MaxFallback:    f.maxFallback,
	}, nil
}

// signalContext is the run context for one-shot commands: Ctrl-C stops
// probing, in-flight probes resolve as interrupted.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

var cleanOpts cleanFlags

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Probe playlist sources and write the working streams",
	Long: `Download the configured playlist sources, probe every stream and
write a playlist keeping, for each channel, the best stream that actually
plays.

Examples:
  # Clean the built-in French sources with 20 workers
  m3u-playlist-cleaner clean --category french --workers 20

  # Clean a custom playlist with the lightweight header check
  m3u-playlist-cleaner clean --sources https://example.com/list.m3u --method curl`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanOpts.register(cleanCmd, "filtered.m3u", "all")
}

func runClean(cmd *cobra.Command, args []string) error {
	opts, err := cleanOpts.options()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	_, err = cleaner.New(opts).Run(ctx)
	return err
}

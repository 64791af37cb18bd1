package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"m3u-playlist-cleaner/config"
	"m3u-playlist-cleaner/logger"
)

var rootCmd = &cobra.Command{
	Use:   "m3u-playlist-cleaner",
	Short: "Validate IPTV playlists and keep the best stream per channel",
	Long: `m3u-playlist-cleaner downloads M3U playlists, probes every stream to
see whether it actually plays, and writes a cleaned playlist that keeps the
best working stream per channel.

Every flag can also be set through a CLEANER_* environment variable, e.g.
CLEANER_WORKERS=20 is the same as --workers 20.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)

		if viper.GetBool("verbose") {
			logger.SetVerbose(true)
		}
		if dataDir := viper.GetString("data-dir"); dataDir != "" {
			cfg := *config.GetConfig()
			cfg.DataPath = dataDir
			config.SetConfig(&cfg)
		}
	},
}

// bindFlags fills every flag the command line left untouched from the
// matching CLEANER_* environment variable.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// Execute runs the command tree. Errors are returned for main to turn into
// an exit code, cobra already printed them.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for state kept between watch runs")

	viper.SetEnvPrefix("CLEANER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"m3u-playlist-cleaner/playlist"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the built-in source categories",
	Long: `Print every built-in source category and the playlist URLs behind it.
Pass a category name to clean or tnt with --category, or replace the catalog
entirely with --sources.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(playlist.CategoryUsage())
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

package main

import (
	"os"

	"m3u-playlist-cleaner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

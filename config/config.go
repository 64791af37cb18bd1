package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the filesystem locations used by the cleaner. DataPath keeps
// state that survives between runs (source snapshots for watch mode),
// TempPath is scratch space.
type Config struct {
	DataPath string
	TempPath string
}

var globalConfig = &Config{
	DataPath: ".m3u-cleaner/",
	TempPath: filepath.Join(os.TempDir(), "m3u-cleaner"),
}

func GetConfig() *Config {
	return globalConfig
}

func SetConfig(c *Config) {
	globalConfig = c
}

func GetSnapshotsDirPath() string {
	return filepath.Join(globalConfig.DataPath, "snapshots/")
}

// Probe boundary limits. Values outside these ranges are rejected at the
// command line rather than clamped.
const (
	MinWorkers = 1
	MaxWorkers = 50

	MinTimeout = 1
	MaxTimeout = 60
)

func ValidateWorkers(n int) error {
	if n < MinWorkers || n > MaxWorkers {
		return fmt.Errorf("workers must be between %d and %d, got %d", MinWorkers, MaxWorkers, n)
	}
	return nil
}

func ValidateTimeout(seconds int) error {
	if seconds < MinTimeout || seconds > MaxTimeout {
		return fmt.Errorf("timeout must be between %d and %d seconds, got %d", MinTimeout, MaxTimeout, seconds)
	}
	return nil
}

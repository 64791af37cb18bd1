package probe

import (
	"os"
	"os/exec"
	"path/filepath"
)

// fallbackToolDirs are searched when a tool is not on PATH, which happens
// under cron and launchd where PATH is minimal.
var fallbackToolDirs = []string{
	"/usr/local/bin",
	"/opt/homebrew/bin",
	"/usr/bin",
}

// ResolveTool returns the absolute path of an external tool, or "" when the
// tool cannot be found anywhere.
func ResolveTool(name string) string {
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	for _, dir := range fallbackToolDirs {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0111 != 0 {
			return candidate
		}
	}
	return ""
}

// CheckTool reports whether an external tool is usable.
func CheckTool(name string) bool {
	return ResolveTool(name) != ""
}

package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandExists checks if a command is available in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// FirstCommand returns the first candidate found in PATH, or "" if none is.
func FirstCommand(candidates ...string) string {
	for _, c := range candidates {
		if c != "" && CommandExists(c) {
			return c
		}
	}
	return ""
}

// ExpandPath expands a leading ~ to the home directory. Other paths are
// returned unchanged so relative targets keep resolving against the working
// directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// DigitCount is the length of n written in decimal.
func DigitCount(n int64) int {
	count := 1
	if n < 0 {
		count++
		n = -n
	}
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

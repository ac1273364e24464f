// Package logger appends leveled lines to ~/.config/lsl/lsl.log. The browser
// owns the terminal, so nothing is ever written to stdout or stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	fileName   = "lsl.log"
	maxLogSize = 5 * 1024 * 1024 // rotate to .old past 5MB
)

var (
	mu      sync.Mutex
	out     io.WriteCloser
	enabled = true
)

// Dir returns ~/.config/lsl, shared by the log and the config file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lsl"), nil
}

// Init opens the log file for appending, rotating it first when it has
// grown too large.
func Init() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	path := filepath.Join(dir, fileName)
	rotate(path)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	out = file
	mu.Unlock()
	return nil
}

func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	old := path + ".old"
	_ = os.Remove(old)
	_ = os.Rename(path, old)
}

// Close flushes and closes the log file. Later calls log nothing.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		out.Close()
		out = nil
	}
}

// Disable silences every level, used by tests.
func Disable() {
	mu.Lock()
	enabled = false
	mu.Unlock()
}

func Info(format string, args ...any)  { write("INFO", format, args...) }
func Warn(format string, args ...any)  { write("WARN", format, args...) }
func Error(format string, args ...any) { write("ERROR", format, args...) }

func write(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || out == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

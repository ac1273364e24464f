package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesLogLines(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Info("opened %s", "/tmp")
	Warn("slow stat on %d entries", 3)
	Error("cannot read %s", "dir")

	data, err := os.ReadFile(filepath.Join(homeDir, ".config", "lsl", "lsl.log"))
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	out := string(data)
	for _, want := range []string{"INFO: opened /tmp", "WARN: slow stat on 3 entries", "ERROR: cannot read dir"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDisableSuppressesOutput(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Disable()
	defer func() {
		mu.Lock()
		enabled = true
		mu.Unlock()
	}()
	Error("hidden")

	data, _ := os.ReadFile(filepath.Join(homeDir, ".config", "lsl", "lsl.log"))
	if strings.Contains(string(data), "hidden") {
		t.Error("disabled logger still wrote")
	}
}

func TestLoggingBeforeInitIsNoop(t *testing.T) {
	Close()
	Error("nowhere to go")
}

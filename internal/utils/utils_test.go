package utils

import (
	"path/filepath"
	"testing"
)

func TestCommandExists(t *testing.T) {
	if !CommandExists("sh") {
		t.Error("'sh' command should exist")
	}
	if CommandExists("nonexistentcommandxyz123") {
		t.Error("Nonexistent command should return false")
	}
}

func TestFirstCommand(t *testing.T) {
	if got := FirstCommand("nonexistentcommandxyz123", "", "sh"); got != "sh" {
		t.Errorf("FirstCommand = %q, want sh", got)
	}
	if got := FirstCommand("nonexistentcommandxyz123"); got != "" {
		t.Errorf("FirstCommand = %q, want empty", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/src", filepath.Join(home, "src")},
		{"src", "src"},
		{"/etc", "/etc"},
		{"~user", "~user"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {4096, 4}, {1234567890, 10}, {-5, 2},
	}
	for _, tt := range tests {
		if got := DigitCount(tt.n); got != tt.want {
			t.Errorf("DigitCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

package git

import (
	"testing"
)

func TestParsePorcelain(t *testing.T) {
	output := " M src/listing/listing.go\n" +
		"?? notes.txt\n" +
		"R  old.go -> cmd/new.go\n" +
		"?? \"with space.txt\"\n" +
		" M docs/readme.md\n" +
		"?? build/\n"

	got := parsePorcelain(output, "/repo", "/repo")
	for _, want := range []string{"src", "notes.txt", "cmd", "with space.txt", "docs", "build"} {
		if !got[want] {
			t.Errorf("expected %q to be marked, got %v", want, got)
		}
	}
	if got["old.go"] {
		t.Error("rename source should not be marked")
	}
}

func TestParsePorcelainSubdirectory(t *testing.T) {
	output := " M src/listing/listing.go\n M src/main.go\n M docs/readme.md\n"

	got := parsePorcelain(output, "/repo", "/repo/src")
	if !got["listing"] || !got["main.go"] {
		t.Errorf("expected listing and main.go, got %v", got)
	}
	if got["docs"] || got["readme.md"] || got[".."] {
		t.Errorf("entries outside dir leaked in: %v", got)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries, got %v", got)
	}
}

func TestNotARepository(t *testing.T) {
	dir := t.TempDir()
	if got := ModifiedEntries(dir); len(got) != 0 {
		t.Errorf("expected no entries outside a repository, got %v", got)
	}
	if got := GetBranch(dir); got != "" {
		t.Errorf("expected no branch outside a repository, got %q", got)
	}
}

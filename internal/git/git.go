package git

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// ModifiedEntries returns the names of entries in dir that are, or contain,
// files git reports as changed. Outside a repository the map is empty.
func ModifiedEntries(dir string) map[string]bool {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	top, err := cmd.Output()
	if err != nil {
		return map[string]bool{}
	}

	cmd = exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return map[string]bool{}
	}

	return parsePorcelain(string(output), strings.TrimSpace(string(top)), dir)
}

// parsePorcelain maps `git status --porcelain` lines, whose paths are
// relative to the repository root, onto the first path component below dir.
func parsePorcelain(output, toplevel, dir string) map[string]bool {
	modified := make(map[string]bool)
	for _, line := range strings.Split(output, "\n") {
		if len(line) <= 3 {
			continue
		}
		// Status is in first two characters, filename starts at position 3
		name := line[3:]
		if i := strings.Index(name, " -> "); i >= 0 {
			name = name[i+4:]
		}
		name = strings.TrimSuffix(strings.Trim(strings.TrimSpace(name), `"`), "/")
		if name == "" {
			continue
		}

		rel, err := filepath.Rel(dir, filepath.Join(toplevel, name))
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		first := strings.SplitN(rel, string(filepath.Separator), 2)[0]
		modified[first] = true
	}
	return modified
}

// GetBranch returns the current git branch name
func GetBranch(dir string) string {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

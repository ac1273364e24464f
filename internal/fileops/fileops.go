package fileops

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// EntryInfo is the metadata the browser shows for one entry.
type EntryInfo struct {
	Name    string
	Size    int64
	Mode    fs.FileMode
	IsDir   bool
	ModTime time.Time
}

// OS is the filesystem backed by the real operating system. Relative paths
// resolve against the process working directory.
type OS struct{}

// ReadDir lists entry names in the order the directory yields them.
func (OS) ReadDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", dir, err)
	}
	return names, nil
}

// Stat follows symlinks so a link to a directory reports as a directory.
func (OS) Stat(path string) (EntryInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return EntryInfo{}, err
	}
	return EntryInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    info.Mode(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}, nil
}

// CreateFile creates a new empty file. It fails if the path already exists.
func (OS) CreateFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return file.Close()
}

// CreateDir creates a directory along with any missing parents.
func (OS) CreateDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}

func (OS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (OS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the process working directory. It fails for anything that
// is not a directory.
func (OS) Chdir(path string) error {
	return os.Chdir(path)
}

// ReadLines returns at most n lines from the start of a file.
func (OS) ReadLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for len(lines) < n && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("cannot read %s: %w", filepath.Base(path), err)
	}
	return lines, nil
}

// FormatError rewrites common filesystem errors into short messages for the
// status line.
func FormatError(err error, path, operation string) error {
	if err == nil {
		return nil
	}
	name := filepath.Base(path)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s: %s not found", operation, name)
	case os.IsPermission(err):
		return fmt.Errorf("%s: permission denied for %s", operation, name)
	case os.IsExist(err):
		return fmt.Errorf("%s: %s already exists", operation, name)
	}
	return fmt.Errorf("%s %s: %w", operation, name, err)
}

package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestCreateFile(t *testing.T) {
	tempDir := t.TempDir()
	fsys := OS{}

	// Test successful file creation
	filePath := filepath.Join(tempDir, "testfile.txt")
	if err := fsys.CreateFile(filePath); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		t.Error("File was not created")
	}

	// Test creating file that already exists
	if err := fsys.CreateFile(filePath); err == nil {
		t.Error("Expected error when creating existing file")
	}

	// Creating inside a missing directory fails
	if err := fsys.CreateFile(filepath.Join(tempDir, "missing", "x.txt")); err == nil {
		t.Error("Expected error when parent directory is missing")
	}
}

func TestCreateFileKeepsExistingContent(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "keep.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	OS{}.CreateFile(filePath)

	data, _ := os.ReadFile(filePath)
	if string(data) != "content" {
		t.Errorf("existing file was truncated, got %q", data)
	}
}

func TestCreateDir(t *testing.T) {
	tempDir := t.TempDir()
	fsys := OS{}

	// Nested directories are created in one call
	dirPath := filepath.Join(tempDir, "a", "b", "c")
	if err := fsys.CreateDir(dirPath); err != nil {
		t.Fatalf("CreateDir failed: %v", err)
	}

	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		t.Error("Directory was not created")
	}
	if err == nil && !info.IsDir() {
		t.Error("Created path is not a directory")
	}

	// Existing directory is not an error
	if err := fsys.CreateDir(dirPath); err != nil {
		t.Errorf("CreateDir on existing directory failed: %v", err)
	}
}

func TestReadDirReturnsAllNames(t *testing.T) {
	tempDir := t.TempDir()
	os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(tempDir, "c.rs"), []byte("c"), 0644)
	os.Mkdir(filepath.Join(tempDir, "b"), 0755)

	names, err := OS{}.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	sort.Strings(names)
	if strings.Join(names, ",") != "a.txt,b,c.rs" {
		t.Errorf("ReadDir returned %v", names)
	}

	if _, err := (OS{}).ReadDir(filepath.Join(tempDir, "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestStat(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "file.txt")
	os.WriteFile(filePath, []byte("12345"), 0644)

	info, err := OS{}.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size != 5 || info.IsDir || info.Name != "file.txt" {
		t.Errorf("unexpected info: %+v", info)
	}

	info, err = OS{}.Stat(tempDir)
	if err != nil || !info.IsDir {
		t.Errorf("expected directory, got %+v (%v)", info, err)
	}
}

func TestRemoveAndRemoveAll(t *testing.T) {
	tempDir := t.TempDir()
	fsys := OS{}

	filePath := filepath.Join(tempDir, "file.txt")
	os.WriteFile(filePath, []byte("x"), 0644)
	if err := fsys.Remove(filePath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Error("file still exists after Remove")
	}

	dir := filepath.Join(tempDir, "tree")
	os.MkdirAll(filepath.Join(dir, "sub"), 0755)
	os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("x"), 0644)

	// Remove refuses a non-empty directory
	if err := fsys.Remove(dir); err == nil {
		t.Error("Expected error removing non-empty directory")
	}
	if err := fsys.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory still exists after RemoveAll")
	}
}

func TestChdirRejectsFiles(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "file.txt")
	os.WriteFile(filePath, []byte("x"), 0644)

	orig, _ := os.Getwd()
	defer os.Chdir(orig)

	fsys := OS{}
	if err := fsys.Chdir(filePath); err == nil {
		t.Error("Chdir into a file should fail")
	}
	if err := fsys.Chdir(tempDir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	wd, _ := fsys.Getwd()
	want, _ := filepath.EvalSymlinks(tempDir)
	got, _ := filepath.EvalSymlinks(wd)
	if got != want {
		t.Errorf("Getwd = %s, want %s", got, want)
	}
}

func TestReadLines(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "lines.txt")
	os.WriteFile(filePath, []byte("one\ntwo\nthree\n"), 0644)

	lines, err := OS{}.ReadLines(filePath, 2)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if strings.Join(lines, "|") != "one|two" {
		t.Errorf("ReadLines = %v", lines)
	}

	lines, _ = OS{}.ReadLines(filePath, 10)
	if len(lines) != 3 {
		t.Errorf("expected 3 lines, got %d", len(lines))
	}
}

func TestFormatError(t *testing.T) {
	// Test with nil error
	if err := FormatError(nil, "/test/path", "test operation"); err != nil {
		t.Error("FormatError should return nil for nil input")
	}

	err := FormatError(os.ErrNotExist, "/test/file.txt", "read")
	if err == nil || !strings.Contains(err.Error(), "file.txt not found") {
		t.Errorf("unexpected message: %v", err)
	}

	err = FormatError(os.ErrPermission, "/test/secret", "open")
	if err == nil || !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("unexpected message: %v", err)
	}

	generic := errors.New("boom")
	err = FormatError(generic, "/test/x", "delete")
	if !errors.Is(err, generic) {
		t.Error("generic errors should be wrapped")
	}
}

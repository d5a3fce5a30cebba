package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRealFileSystem(t *testing.T) {
	fs := NewRealFileSystem()
	if fs == nil {
		t.Error("NewRealFileSystem() should not return nil")
	}
}

func TestRealFileSystem_Integration(t *testing.T) {
	fs := NewRealFileSystem()
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "backend", "src")
	if err := fs.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if !fs.IsDir(nested) {
		t.Error("IsDir() should return true for created directory")
	}

	testFile := filepath.Join(nested, "index.ts")
	if err := fs.WriteFile(testFile, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, err := fs.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "hello world" {
		t.Errorf("ReadFile() = %q, want %q", string(content), "hello world")
	}

	if !fs.Exists(testFile) {
		t.Error("Exists() should return true")
	}
	if fs.IsDir(testFile) {
		t.Error("IsDir() should return false for a regular file")
	}
}

func TestRealFileSystem_WriteFileTruncates(t *testing.T) {
	fs := NewRealFileSystem()
	path := filepath.Join(t.TempDir(), "index.css")

	if err := os.WriteFile(path, []byte("a much longer original body"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "short" {
		t.Errorf("content = %q, want %q", string(content), "short")
	}
}

func TestRealFileSystem_MissingPaths(t *testing.T) {
	fs := NewRealFileSystem()
	missing := filepath.Join(t.TempDir(), "missing")

	if fs.Exists(missing) {
		t.Error("Exists() should return false for missing path")
	}
	if fs.IsDir(missing) {
		t.Error("IsDir() should return false for missing path")
	}
	if _, err := fs.ReadFile(missing); err == nil {
		t.Error("ReadFile() should fail for missing path")
	}
}

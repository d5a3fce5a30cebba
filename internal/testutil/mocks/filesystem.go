package mocks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// FileSystem is a thread-safe, in-memory test double for ports.FileSystem.
// Paths are cleaned before use, so "a/b/" and "a/b" are the same entry.
type FileSystem struct {
	mu          sync.RWMutex
	files       map[string][]byte
	dirs        map[string]bool
	writeErrors map[string]error
	mkdirErrors map[string]error
}

// NewFileSystem creates a new FileSystem mock.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:       make(map[string][]byte),
		dirs:        make(map[string]bool),
		writeErrors: make(map[string]error),
		mkdirErrors: make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem.
func (fs *FileSystem) AddFile(path string, content string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[filepath.Clean(path)] = []byte(content)
}

// AddDir adds a directory to the mock filesystem.
func (fs *FileSystem) AddDir(path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.dirs[filepath.Clean(path)] = true
}

// FailWrite makes every WriteFile to path return err.
func (fs *FileSystem) FailWrite(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.writeErrors[filepath.Clean(path)] = err
}

// FailMkdir makes every MkdirAll of path return err.
func (fs *FileSystem) FailMkdir(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.mkdirErrors[filepath.Clean(path)] = err
}

// ReadFile reads a file from the mock filesystem.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if content, ok := fs.files[filepath.Clean(path)]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

// WriteFile writes a file to the mock filesystem.
func (fs *FileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	key := filepath.Clean(path)
	if err, ok := fs.writeErrors[key]; ok {
		return err
	}
	fs.files[key] = append([]byte(nil), data...)
	return nil
}

// Exists checks if a file or directory exists in the mock filesystem.
func (fs *FileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	key := filepath.Clean(path)
	_, fileExists := fs.files[key]
	return fileExists || fs.dirs[key]
}

// IsDir checks if a path is a directory in the mock filesystem.
func (fs *FileSystem) IsDir(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.dirs[filepath.Clean(path)]
}

// MkdirAll records a directory and all of its parents.
func (fs *FileSystem) MkdirAll(path string, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	key := filepath.Clean(path)
	if err, ok := fs.mkdirErrors[key]; ok {
		return err
	}
	for dir := key; dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		if _, isFile := fs.files[dir]; isFile {
			return fmt.Errorf("mkdir %s: not a directory", dir)
		}
		fs.dirs[dir] = true
	}
	return nil
}

// Files returns the sorted paths of every file in the mock filesystem.
func (fs *FileSystem) Files() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Reset clears all files, directories, and injected failures.
func (fs *FileSystem) Reset() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files = make(map[string][]byte)
	fs.dirs = make(map[string]bool)
	fs.writeErrors = make(map[string]error)
	fs.mkdirErrors = make(map[string]error)
}

// Ensure FileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*FileSystem)(nil)

// Package e2e provides end-to-end testing utilities for the stackinit CLI.
package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// fakeNpm imitates the npm subcommands stackinit invokes. Every call is
// appended to $FAKE_NPM_LOG. A call whose arguments equal $FAKE_NPM_FAIL
// exits 1.
const fakeNpm = `#!/bin/sh
echo "npm $*" >> "$FAKE_NPM_LOG"
if [ -n "$FAKE_NPM_FAIL" ] && [ "$*" = "$FAKE_NPM_FAIL" ]; then
  echo "npm ERR! simulated failure" >&2
  exit 1
fi
case "$1" in
  --version)
    echo "10.2.4"
    ;;
  init)
    if [ ! -f package.json ]; then
      cat > package.json <<'JSON'
{
  "name": "backend",
  "version": "1.0.0",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
JSON
    fi
    ;;
  create)
    mkdir -p "$3/src"
    ;;
esac
exit 0
`

const fakeNode = `#!/bin/sh
echo "${FAKE_NODE_VERSION:-v20.11.1}"
`

// Harness provides utilities for end-to-end CLI testing.
type Harness struct {
	T            *testing.T
	BinaryPath   string
	ProjectDir   string
	ToolsDir     string
	NpmLog       string
	EnvVars      map[string]string
	Timeout      time.Duration
	LastOutput   string
	LastError    string
	LastExitCode int
}

// NewHarness creates a new end-to-end test harness with fake node and npm
// executables first on PATH. It builds the stackinit binary if needed.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain scripts require a POSIX shell")
	}

	tempDir := t.TempDir()
	projectDir := filepath.Join(tempDir, "project")
	toolsDir := filepath.Join(tempDir, "tools")

	for _, dir := range []string{projectDir, toolsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	for name, script := range map[string]string{"npm": fakeNpm, "node": fakeNode} {
		if err := os.WriteFile(filepath.Join(toolsDir, name), []byte(script), 0o755); err != nil {
			t.Fatalf("failed to write fake %s: %v", name, err)
		}
	}

	h := &Harness{
		T:          t,
		BinaryPath: getBinary(t),
		ProjectDir: projectDir,
		ToolsDir:   toolsDir,
		NpmLog:     filepath.Join(tempDir, "npm.log"),
		EnvVars:    make(map[string]string),
		Timeout:    30 * time.Second,
	}
	return h.
		WithEnv("PATH", toolsDir+string(os.PathListSeparator)+os.Getenv("PATH")).
		WithEnv("FAKE_NPM_LOG", h.NpmLog).
		WithEnv("STACKINIT_NO_COLOR", "1")
}

// getBinary returns the path to the stackinit binary.
// It builds the binary unless STACKINIT_BINARY points at one.
func getBinary(t *testing.T) string {
	t.Helper()

	if path := os.Getenv("STACKINIT_BINARY"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	binaryPath := filepath.Join(t.TempDir(), "stackinit-test")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/stackinit")
	cmd.Dir = findProjectRoot(t)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build stackinit binary: %v\n%s", err, stderr.String())
	}

	return binaryPath
}

// findProjectRoot finds the project root directory.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (no go.mod found)")
		}
		dir = parent
	}
}

// WithEnv sets an environment variable for commands.
func (h *Harness) WithEnv(key, value string) *Harness {
	h.EnvVars[key] = value
	return h
}

// FailNpm makes the fake npm exit 1 when called with exactly args.
func (h *Harness) FailNpm(args string) *Harness {
	return h.WithEnv("FAKE_NPM_FAIL", args)
}

// Run executes a stackinit command in the project directory and returns
// the exit code.
func (h *Harness) Run(args ...string) int {
	h.T.Helper()

	cmd := exec.Command(h.BinaryPath, args...)
	cmd.Dir = h.ProjectDir

	cmd.Env = os.Environ()
	for k, v := range h.EnvVars {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	done := make(chan error, 1)
	go func() {
		done <- cmd.Run()
	}()

	select {
	case err := <-done:
		h.LastOutput = stdout.String()
		h.LastError = stderr.String()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				h.LastExitCode = exitErr.ExitCode()
			} else {
				h.LastExitCode = -1
			}
		} else {
			h.LastExitCode = 0
		}
	case <-time.After(h.Timeout):
		_ = cmd.Process.Kill()
		h.T.Fatalf("command timed out after %v: %v", h.Timeout, args)
	}

	return h.LastExitCode
}

// RunSuccess executes a command and expects it to succeed.
func (h *Harness) RunSuccess(args ...string) string {
	h.T.Helper()

	exitCode := h.Run(args...)
	if exitCode != 0 {
		h.T.Fatalf("command failed with exit code %d: %v\nOutput: %s\nStderr: %s",
			exitCode, args, h.LastOutput, h.LastError)
	}

	return h.LastOutput
}

// RunFail executes a command and expects it to fail.
func (h *Harness) RunFail(args ...string) string {
	h.T.Helper()

	exitCode := h.Run(args...)
	if exitCode == 0 {
		h.T.Fatalf("command succeeded but expected failure: %v\nOutput: %s",
			args, h.LastOutput)
	}

	return h.LastOutput + h.LastError
}

// NpmCalls returns the npm invocations recorded by the fake, in order.
func (h *Harness) NpmCalls() []string {
	h.T.Helper()

	data, err := os.ReadFile(h.NpmLog)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		h.T.Fatalf("failed to read npm log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// FileExists checks if a file exists in the project directory.
func (h *Harness) FileExists(relativePath string) bool {
	_, err := os.Stat(filepath.Join(h.ProjectDir, filepath.FromSlash(relativePath)))
	return err == nil
}

// ReadFile reads a file from the project directory.
func (h *Harness) ReadFile(relativePath string) string {
	h.T.Helper()

	path := filepath.Join(h.ProjectDir, filepath.FromSlash(relativePath))
	content, err := os.ReadFile(path)
	if err != nil {
		h.T.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(content)
}

// OutputContains checks if the last output contains a string.
func (h *Harness) OutputContains(s string) bool {
	return strings.Contains(h.LastOutput, s) || strings.Contains(h.LastError, s)
}

// AssertOutputContains asserts the last output contains a string.
func (h *Harness) AssertOutputContains(s string) {
	h.T.Helper()

	if !h.OutputContains(s) {
		h.T.Errorf("expected output to contain %q, got:\n%s", s, h.LastOutput+h.LastError)
	}
}

// AssertFileExists asserts a file exists in the project directory.
func (h *Harness) AssertFileExists(relativePath string) {
	h.T.Helper()

	if !h.FileExists(relativePath) {
		h.T.Errorf("expected file to exist: %s", relativePath)
	}
}

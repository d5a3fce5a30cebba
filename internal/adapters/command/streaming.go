package command

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// StreamingRunner executes commands with their standard streams connected
// to the parent process, so interactive tools behave as if run by hand.
// Output is never captured.
type StreamingRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// StreamingOption configures a StreamingRunner.
type StreamingOption func(*StreamingRunner)

// WithStdio overrides the streams handed to child processes (default: os.Stdin/os.Stdout/os.Stderr).
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) StreamingOption {
	return func(r *StreamingRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewStreamingRunner creates a new StreamingRunner.
func NewStreamingRunner(opts ...StreamingOption) *StreamingRunner {
	r := &StreamingRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the command and blocks until it exits.
func (r *StreamingRunner) Run(ctx context.Context, c ports.Command) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ports.CommandResult{ExitCode: exitErr.ExitCode()}, nil
		}
		return ports.CommandResult{ExitCode: -1}, err
	}

	return ports.CommandResult{ExitCode: 0}, nil
}

// Ensure StreamingRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*StreamingRunner)(nil)

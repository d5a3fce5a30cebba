// Package command runs external tools (npm, npx, node) for stackinit.
// RealRunner captures output for version probing in doctor; StreamingRunner
// wires the child to the terminal during setup.
package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// RealRunner buffers a child's stdout and stderr and returns them once it exits.
type RealRunner struct{}

func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run starts c in c.Dir. A non-zero exit is reported through ExitCode,
// not as an error; err is set only when the process could not run.
func (r *RealRunner) Run(ctx context.Context, c ports.Command) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := ports.CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

var _ ports.CommandRunner = (*RealRunner)(nil)

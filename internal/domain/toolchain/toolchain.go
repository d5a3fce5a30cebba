// Package toolchain checks that the external tools the generator shells out
// to are installed and recent enough.
package toolchain

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// Requirement names a tool and the minimum version it must report.
type Requirement struct {
	Name    string
	Command ports.Command
	Minimum string
}

// DefaultRequirements are the tools the generator invokes.
var DefaultRequirements = []Requirement{
	{Name: "node", Command: ports.NewCommand("node", "--version"), Minimum: "v18.0.0"},
	{Name: "npm", Command: ports.NewCommand("npm", "--version"), Minimum: "v9.0.0"},
}

// Status is the outcome of checking one requirement.
type Status struct {
	Name    string
	Version string
	Minimum string
	Found   bool
	Err     error
}

// OK returns true if the tool was found and meets the minimum version.
func (s Status) OK() bool {
	return s.Found && s.Err == nil
}

// Report collects the status of every requirement.
type Report struct {
	Statuses []Status
}

// Healthy returns true if every requirement is satisfied.
func (r Report) Healthy() bool {
	for _, s := range r.Statuses {
		if !s.OK() {
			return false
		}
	}
	return true
}

// Problems returns the statuses that are not OK.
func (r Report) Problems() []Status {
	var out []Status
	for _, s := range r.Statuses {
		if !s.OK() {
			out = append(out, s)
		}
	}
	return out
}

// Checker probes tool versions through a CommandRunner.
type Checker struct {
	runner       ports.CommandRunner
	requirements []Requirement
}

// NewChecker creates a Checker for the given requirements.
// With none, DefaultRequirements are used.
func NewChecker(runner ports.CommandRunner, requirements ...Requirement) *Checker {
	if len(requirements) == 0 {
		requirements = DefaultRequirements
	}
	return &Checker{runner: runner, requirements: requirements}
}

// Check probes every requirement in order.
func (c *Checker) Check(ctx context.Context) Report {
	logger := ports.LoggerFromContext(ctx)
	report := Report{Statuses: make([]Status, 0, len(c.requirements))}

	for _, req := range c.requirements {
		status := c.probe(ctx, req)
		fields := []ports.Field{
			ports.F("tool", req.Name),
			ports.F("version", status.Version),
			ports.F("minimum", req.Minimum),
		}
		switch {
		case logger == nil:
		case status.Err != nil:
			logger.Warn(ctx, "toolchain requirement not met", append(fields, ports.F("error", status.Err))...)
		default:
			logger.Debug(ctx, "toolchain requirement met", fields...)
		}
		report.Statuses = append(report.Statuses, status)
	}

	return report
}

func (c *Checker) probe(ctx context.Context, req Requirement) Status {
	status := Status{Name: req.Name, Minimum: req.Minimum}

	result, err := c.runner.Run(ctx, req.Command)
	if err != nil {
		status.Err = fmt.Errorf("%s not found: %w", req.Name, err)
		return status
	}
	if !result.Success() {
		status.Err = fmt.Errorf("%s exited with status %d", req.Command.Line(), result.ExitCode)
		return status
	}
	status.Found = true

	version, err := Normalize(result.Stdout)
	if err != nil {
		status.Err = fmt.Errorf("%s: %w", req.Name, err)
		return status
	}
	status.Version = version

	if req.Minimum != "" && semver.Compare(version, req.Minimum) < 0 {
		status.Err = fmt.Errorf("%s %s is older than required %s", req.Name, version, req.Minimum)
	}
	return status
}

// Normalize turns raw version output such as "v20.11.1\n" or "10.2.4" into a
// canonical semver string with a leading "v".
func Normalize(output string) (string, error) {
	v := strings.TrimSpace(output)
	if line, _, ok := strings.Cut(v, "\n"); ok {
		v = strings.TrimSpace(line)
	}
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("unrecognized version %q", strings.TrimSpace(output))
	}
	return semver.Canonical(v), nil
}

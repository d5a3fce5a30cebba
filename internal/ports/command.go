// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"strings"
)

// Command describes a single external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the caller's directory.
	Dir string
}

// NewCommand creates a Command that runs in the caller's directory.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// In returns a copy of the command that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// Line returns the command line without the working directory.
func (c Command) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// String renders the command the way a user would type it in a shell.
func (c Command) String() string {
	if c.Dir == "" {
		return c.Line()
	}
	return "cd " + c.Dir + " && " + c.Line()
}

// CommandResult represents the result of executing a command.
// Stdout and Stderr are empty when output was streamed rather than captured.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner executes external commands.
// A non-zero exit is reported through CommandResult.ExitCode; the error is
// reserved for failures to launch or wait on the process.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

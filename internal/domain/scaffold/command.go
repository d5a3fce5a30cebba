package scaffold

import (
	"context"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// RunCommand runs one external command to completion.
// Success means exit status 0; anything else, including a launch failure,
// fails the action. There is no timeout and no retry.
type RunCommand struct {
	Command ports.Command
}

// Run is shorthand for a RunCommand in the root directory.
func Run(name string, args ...string) RunCommand {
	return RunCommand{Command: ports.NewCommand(name, args...)}
}

// RunIn is shorthand for a RunCommand in dir.
func RunIn(dir, name string, args ...string) RunCommand {
	return RunCommand{Command: ports.NewCommand(name, args...).In(dir)}
}

// Kind returns KindRunCommand.
func (a RunCommand) Kind() Kind { return KindRunCommand }

// Describe returns the command line as a user would type it.
func (a RunCommand) Describe() string { return a.Command.String() }

// Execute runs the command through env.Runner.
func (a RunCommand) Execute(ctx context.Context, env Env) Result {
	cmd := a.Command
	if cmd.Dir != "" || env.Root != "" {
		cmd.Dir = env.resolve(cmd.Dir)
	}

	result, err := env.Runner.Run(ctx, cmd)
	if err == nil && !result.Success() {
		err = &ExitStatusError{Code: result.ExitCode}
	}
	if err != nil {
		actionErr := &ActionError{Kind: FailureCommand, Target: a.Command.String(), Err: err}
		env.Reporter.Failure("Error executing command: "+a.Command.String(), err)
		return NewResult(a, StatusFailed, actionErr)
	}

	return NewResult(a, StatusDone, nil)
}

// Package mocks provides test doubles for testing.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// CommandHook runs when a matching command is executed, before its result
// is returned. Hooks simulate the side effects of real tools.
type CommandHook func(cmd ports.Command) error

// CommandRunner is a thread-safe test double for ports.CommandRunner.
// Commands are matched on their rendered form, e.g. "cd backend && npm init -y".
type CommandRunner struct {
	mu            sync.RWMutex
	results       map[string]ports.CommandResult
	errors        map[string]error
	hooks         map[string]CommandHook
	defaultResult *ports.CommandResult
	calls         []ports.Command
}

// NewCommandRunner creates a new CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results: make(map[string]ports.CommandResult),
		errors:  make(map[string]error),
		hooks:   make(map[string]CommandHook),
		calls:   make([]ports.Command, 0),
	}
}

// NewSucceedingCommandRunner creates a mock where every command exits 0.
func NewSucceedingCommandRunner() *CommandRunner {
	m := NewCommandRunner()
	m.SetDefault(ports.CommandResult{ExitCode: 0})
	return m
}

// AddResult registers an expected command and its result.
func (m *CommandRunner) AddResult(cmd ports.Command, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[cmd.String()] = result
}

// AddExitCode registers an expected command that exits with code.
func (m *CommandRunner) AddExitCode(cmd ports.Command, code int) {
	m.AddResult(cmd, ports.CommandResult{ExitCode: code})
}

// AddError registers an expected command that fails to launch.
func (m *CommandRunner) AddError(cmd ports.Command, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[cmd.String()] = err
}

// OnRun registers a hook for a command.
func (m *CommandRunner) OnRun(cmd ports.Command, hook CommandHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks[cmd.String()] = hook
}

// SetDefault sets the result returned for unregistered commands.
// Without a default, unregistered commands return an error.
func (m *CommandRunner) SetDefault(result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResult = &result
}

// Run executes a mock command.
func (m *CommandRunner) Run(_ context.Context, cmd ports.Command) (ports.CommandResult, error) {
	key := cmd.String()

	m.mu.Lock()
	m.calls = append(m.calls, cmd)
	hook := m.hooks[key]
	m.mu.Unlock()

	if err, ok := m.lookupError(key); ok {
		return ports.CommandResult{}, err
	}

	if hook != nil {
		if err := hook(cmd); err != nil {
			return ports.CommandResult{}, err
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if result, ok := m.results[key]; ok {
		return result, nil
	}
	if m.defaultResult != nil {
		return *m.defaultResult, nil
	}

	return ports.CommandResult{}, fmt.Errorf("no mock result for command: %s", key)
}

func (m *CommandRunner) lookupError(key string) (error, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	err, ok := m.errors[key]
	return err, ok
}

// Calls returns all recorded command invocations.
func (m *CommandRunner) Calls() []ports.Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]ports.Command, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallLines returns the rendered form of every recorded invocation.
func (m *CommandRunner) CallLines() []string {
	calls := m.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}

// CallCount returns how many recorded invocations have a command line,
// ignoring the working directory, that starts with prefix.
func (m *CommandRunner) CallCount(prefix string) int {
	count := 0
	for _, c := range m.Calls() {
		if strings.HasPrefix(c.Line(), prefix) {
			count++
		}
	}
	return count
}

// Reset clears all registered results, errors, hooks, and recorded calls.
func (m *CommandRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = make(map[string]ports.CommandResult)
	m.errors = make(map[string]error)
	m.hooks = make(map[string]CommandHook)
	m.defaultResult = nil
	m.calls = make([]ports.Command, 0)
}

// Ensure CommandRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*CommandRunner)(nil)

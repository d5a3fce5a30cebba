package scaffold

import (
	"fmt"
	"time"
)

// Status is the outcome of a single Action.
type Status int

const (
	// StatusDone means the action made its change.
	StatusDone Status = iota
	// StatusSkipped means there was nothing to do.
	StatusSkipped
	// StatusFailed means the action failed and the step must stop.
	StatusFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureKind classifies why an action failed.
type FailureKind int

const (
	// FailureCommand is a non-zero exit or a launch failure.
	FailureCommand FailureKind = iota + 1
	// FailureFilesystem is an I/O error on a directory or file.
	FailureFilesystem
	// FailureManifest is a manifest that exists but cannot be parsed.
	FailureManifest
)

// String returns the string representation of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureCommand:
		return "command"
	case FailureFilesystem:
		return "filesystem"
	case FailureManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// ActionError is the diagnostic carried by a failed Result.
type ActionError struct {
	Kind   FailureKind
	Target string // command line or path
	Err    error
}

// Error returns the formatted error message.
func (e *ActionError) Error() string {
	return fmt.Sprintf("%s failure at %s: %v", e.Kind, e.Target, e.Err)
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// ExitStatusError reports a subprocess that ran but exited non-zero.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Result captures the outcome of executing a single Action.
type Result struct {
	action   string
	kind     Kind
	status   Status
	err      error
	duration time.Duration
}

// NewResult creates a Result for the given action.
func NewResult(a Action, status Status, err error) Result {
	return Result{
		action: a.Describe(),
		kind:   a.Kind(),
		status: status,
		err:    err,
	}
}

// Action returns the description of the action that produced the result.
func (r Result) Action() string {
	return r.action
}

// Kind returns the variant of the action that produced the result.
func (r Result) Kind() Kind {
	return r.kind
}

// Status returns the final status of the action.
func (r Result) Status() Status {
	return r.status
}

// Err returns the diagnostic for a failed action, or nil.
func (r Result) Err() error {
	return r.err
}

// Duration returns how long the action took.
func (r Result) Duration() time.Duration {
	return r.duration
}

// Success returns true unless the action failed. Skipped counts as success.
func (r Result) Success() bool {
	return r.status != StatusFailed
}

// Skipped returns true if the action had nothing to do.
func (r Result) Skipped() bool {
	return r.status == StatusSkipped
}

// WithDuration returns a new Result with duration set.
func (r Result) WithDuration(d time.Duration) Result {
	r.duration = d
	return r
}

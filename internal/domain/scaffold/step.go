package scaffold

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// Step is an ordered, named sequence of Actions executed first-failure-wins.
type Step struct {
	name    string
	title   string
	actions []Action
}

// NewStep creates a Step. The name is used in logs and failure messages;
// the title is printed when the step starts.
func NewStep(name, title string, actions ...Action) *Step {
	return &Step{name: name, title: title, actions: actions}
}

// Name returns the step name.
func (s *Step) Name() string {
	return s.name
}

// Title returns the heading printed when the step starts.
func (s *Step) Title() string {
	return s.title
}

// Actions returns a copy of the step's actions.
func (s *Step) Actions() []Action {
	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// StepReport is the outcome of running a Step.
type StepReport struct {
	Name    string
	Results []Result
	failed  *Result
}

// Success returns true if every executed action succeeded.
func (r StepReport) Success() bool {
	return r.failed == nil
}

// Failed returns the failed result, if any.
func (r StepReport) Failed() (Result, bool) {
	if r.failed == nil {
		return Result{}, false
	}
	return *r.failed, true
}

// Err returns the diagnostic of the failed action, or nil.
func (r StepReport) Err() error {
	if r.failed == nil {
		return nil
	}
	return r.failed.Err()
}

// Run executes the actions in order and stops at the first failure.
// No action runs after a failed one; nothing is retried or rolled back.
func (s *Step) Run(ctx context.Context, env Env) StepReport {
	report := StepReport{Name: s.name, Results: make([]Result, 0, len(s.actions))}
	logger := env.Logger.With(ports.F("step", s.name))

	env.Reporter.Section(s.title)

	for i, action := range s.actions {
		if err := ctx.Err(); err != nil {
			interrupted := NewResult(action, StatusFailed, fmt.Errorf("interrupted before %s: %w", action.Describe(), err))
			env.Reporter.Failure("Setup interrupted", err)
			report.Results = append(report.Results, interrupted)
			report.failed = &report.Results[len(report.Results)-1]
			return report
		}

		start := time.Now()
		result := action.Execute(ctx, env).WithDuration(time.Since(start))
		report.Results = append(report.Results, result)

		fields := []ports.Field{
			ports.F("index", i+1),
			ports.F("action", result.Action()),
			ports.F("kind", string(result.Kind())),
			ports.F("status", result.Status().String()),
			ports.F("duration", result.Duration()),
		}
		if !result.Success() {
			logger.Debug(ctx, "action failed", append(fields, ports.F("error", result.Err()))...)
			report.failed = &report.Results[len(report.Results)-1]
			return report
		}
		logger.Debug(ctx, "action finished", fields...)
	}

	return report
}

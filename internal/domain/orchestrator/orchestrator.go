// Package orchestrator sequences the server and client setup steps through
// a small state machine and decides overall success or failure.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/felixgeelhaar/stackinit/internal/domain/scaffold"
	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// State represents the orchestrator's current state.
type State string

// Machine state identifiers.
const (
	idNotStarted    = "not_started"
	idRunningServer = "running_server"
	idRunningClient = "running_client"
	idSucceeded     = "succeeded"
	idFailed        = "failed"
)

const (
	// StateNotStarted is the initial state.
	StateNotStarted State = idNotStarted
	// StateRunningServer indicates the server step is executing.
	StateRunningServer State = idRunningServer
	// StateRunningClient indicates the client step is executing.
	StateRunningClient State = idRunningClient
	// StateSucceeded is terminal: both steps completed.
	StateSucceeded State = idSucceeded
	// StateFailed is terminal: a step failed.
	StateFailed State = idFailed
)

// Event types for the orchestrator state machine.
const (
	EventStart      = "START"
	EventServerDone = "SERVER_DONE"
	EventClientDone = "CLIENT_DONE"
	EventFail       = "FAIL"
)

// Banner is printed before the first step.
const Banner = "Initializing MERN Stack project with TypeScript..."

// NextSteps are printed after a successful run.
var NextSteps = []string{
	"1. cd backend && npm run dev     # Start the backend server",
	"2. cd frontend && npm run dev    # Start the frontend dev server",
}

// PhaseError reports which phase failed.
type PhaseError struct {
	Phase string
	Err   error
}

// Error returns the formatted error message.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s setup failed: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Outcome is the result of a full orchestrator run.
type Outcome struct {
	RunID       string
	State       State
	FailedPhase string
	Reports     []scaffold.StepReport
	Transitions []State
}

// Success returns true if the run reached StateSucceeded.
func (o Outcome) Success() bool {
	return o.State == StateSucceeded
}

// Orchestrator runs the server step, then the client step.
type Orchestrator struct {
	env          scaffold.Env
	server       *scaffold.Step
	client       *scaffold.Step
	onTransition func(from, to State)
	newRunID     func() string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSteps replaces the built-in server and client steps.
func WithSteps(server, client *scaffold.Step) Option {
	return func(o *Orchestrator) {
		o.server = server
		o.client = client
	}
}

// WithTransitionHandler sets a callback invoked on every state change.
func WithTransitionHandler(fn func(from, to State)) Option {
	return func(o *Orchestrator) {
		o.onTransition = fn
	}
}

// WithRunID sets the identifier reported in the Outcome. By default a
// random UUID is used.
func WithRunID(id string) Option {
	return func(o *Orchestrator) {
		o.newRunID = func() string { return id }
	}
}

// New creates an Orchestrator over the built-in steps.
func New(env scaffold.Env, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		env:      env,
		server:   scaffold.ServerStep(),
		client:   scaffold.ClientStep(),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// buildMachine constructs the orchestrator state machine using statekit.
// Failed and succeeded have no outgoing transitions.
func buildMachine() (*statekit.Interpreter[struct{}], error) {
	machine, err := statekit.NewMachine[struct{}]("stackinit-orchestrator").
		WithInitial(idNotStarted).
		State(idNotStarted).
		On(EventStart).Target(idRunningServer).Done().
		State(idRunningServer).
		On(EventServerDone).Target(idRunningClient).
		On(EventFail).Target(idFailed).Done().
		State(idRunningClient).
		On(EventClientDone).Target(idSucceeded).
		On(EventFail).Target(idFailed).Done().
		State(idSucceeded).Done().
		State(idFailed).Done().
		Build()
	if err != nil {
		return nil, err
	}
	return statekit.NewInterpreter(machine), nil
}

// Run executes both phases. The returned error is a *PhaseError when a phase
// failed, or a plain error if the state machine could not be built.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{RunID: o.newRunID(), State: StateNotStarted}

	interp, err := buildMachine()
	if err != nil {
		return outcome, fmt.Errorf("failed to build state machine: %w", err)
	}
	interp.Start()
	defer interp.Stop()

	env := o.env
	outcome.Transitions = append(outcome.Transitions, StateNotStarted)

	send := func(event string) {
		from := outcome.State
		interp.Send(statekit.Event{Type: statekit.EventType(event)})
		to := State(interp.State().Value)
		if to == from {
			return
		}
		outcome.State = to
		outcome.Transitions = append(outcome.Transitions, to)
		env.Logger.Debug(ctx, "state changed", ports.F("from", string(from)), ports.F("to", string(to)), ports.F("event", event))
		if o.onTransition != nil {
			o.onTransition(from, to)
		}
	}

	env.Reporter.Section(Banner)
	send(EventStart)

	phases := []struct {
		step *scaffold.Step
		done string
	}{
		{step: o.server, done: EventServerDone},
		{step: o.client, done: EventClientDone},
	}

	for _, phase := range phases {
		report := phase.step.Run(ctx, env)
		outcome.Reports = append(outcome.Reports, report)

		if !report.Success() {
			send(EventFail)
			outcome.FailedPhase = phase.step.Name()
			phaseErr := &PhaseError{Phase: phaseTitle(phase.step.Name()), Err: report.Err()}
			env.Reporter.Failure(phaseTitle(phase.step.Name())+" setup failed", nil)
			env.Logger.Info(ctx, "setup failed", ports.F("phase", phase.step.Name()), ports.F("error", report.Err()))
			return outcome, phaseErr
		}
		send(phase.done)
	}

	env.Reporter.Summary("✨ Project setup complete! Next steps:", NextSteps...)
	env.Logger.Info(ctx, "setup complete")
	return outcome, nil
}

// phaseTitle turns a step name like "backend" into "Backend".
func phaseTitle(name string) string {
	return cases.Title(language.English).String(name)
}

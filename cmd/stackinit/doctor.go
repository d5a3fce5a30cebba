package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stackinit/internal/adapters/command"
	"github.com/felixgeelhaar/stackinit/internal/domain/toolchain"
	"github.com/felixgeelhaar/stackinit/internal/ports"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that node and npm are installed and recent enough",
	Long: `Doctor runs 'node --version' and 'npm --version' and compares the
results against the minimum versions stackinit needs.

It never creates or changes any file.

Examples:
  stackinit doctor              # Check the toolchain
  stackinit doctor --verbose    # Also log each probe`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// Overridable in tests.
var newDoctorRunner = func() ports.CommandRunner {
	return command.NewRealRunner()
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx := ports.ContextWithLogger(cmd.Context(), s.logger)
	report := toolchain.NewChecker(newDoctorRunner()).Check(ctx)

	s.console.Section("Checking toolchain...")
	for _, st := range report.Statuses {
		if st.OK() {
			s.console.Success(fmt.Sprintf("%s %s (>= %s)", st.Name, st.Version, st.Minimum))
			continue
		}
		s.console.Failure(st.Name, st.Err)
	}

	if !report.Healthy() {
		err := fmt.Errorf("%d toolchain requirement(s) not met", len(report.Problems()))
		s.console.Failure(err.Error(), nil)
		return &reportedError{err: err}
	}

	s.console.Summary("No issues found. Your toolchain is ready.")
	return nil
}

package toolchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/stackinit/internal/ports"
	"github.com/felixgeelhaar/stackinit/internal/testutil/mocks"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "node style", output: "v20.11.1\n", want: "v20.11.1"},
		{name: "npm style", output: "10.2.4\n", want: "v10.2.4"},
		{name: "short", output: "v18", want: "v18.0.0"},
		{name: "multi line", output: "9.8.1\nnotice: update available\n", want: "v9.8.1"},
		{name: "garbage", output: "command not found", wantErr: true},
		{name: "empty", output: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_Healthy(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult(ports.NewCommand("node", "--version"), ports.CommandResult{Stdout: "v20.11.1\n"})
	runner.AddResult(ports.NewCommand("npm", "--version"), ports.CommandResult{Stdout: "10.2.4\n"})

	report := NewChecker(runner).Check(context.Background())

	assert.True(t, report.Healthy())
	assert.Empty(t, report.Problems())
	require.Len(t, report.Statuses, 2)
	assert.Equal(t, "v20.11.1", report.Statuses[0].Version)
	assert.Equal(t, "v10.2.4", report.Statuses[1].Version)
}

func TestChecker_TooOld(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult(ports.NewCommand("node", "--version"), ports.CommandResult{Stdout: "v16.20.2\n"})
	runner.AddResult(ports.NewCommand("npm", "--version"), ports.CommandResult{Stdout: "10.2.4\n"})

	report := NewChecker(runner).Check(context.Background())

	assert.False(t, report.Healthy())
	problems := report.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, "node", problems[0].Name)
	assert.True(t, problems[0].Found)
	assert.Contains(t, problems[0].Err.Error(), "older than required v18.0.0")
}

func TestChecker_Missing(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddError(ports.NewCommand("node", "--version"), errors.New("executable file not found in $PATH"))
	runner.AddExitCode(ports.NewCommand("npm", "--version"), 127)

	report := NewChecker(runner).Check(context.Background())

	problems := report.Problems()
	require.Len(t, problems, 2)
	assert.False(t, problems[0].Found)
	assert.Contains(t, problems[0].Err.Error(), "node not found")
	assert.Contains(t, problems[1].Err.Error(), "exited with status 127")
}

func TestChecker_CustomRequirements(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult(ports.NewCommand("git", "--version"), ports.CommandResult{Stdout: "2.43.0"})

	report := NewChecker(runner, Requirement{
		Name:    "git",
		Command: ports.NewCommand("git", "--version"),
		Minimum: "v2.0.0",
	}).Check(context.Background())

	assert.True(t, report.Healthy())
	assert.Equal(t, []string{"git --version"}, runner.CallLines())
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/felixgeelhaar/stackinit/internal/ports"
	"github.com/felixgeelhaar/stackinit/internal/testutil"
	"github.com/felixgeelhaar/stackinit/internal/testutil/mocks"
)

// executeCommand runs rootCmd with args and captures its output.
// Tests using it mutate package state and must not run in parallel.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("STACKINIT_NO_COLOR", "1")
	t.Setenv("STACKINIT_LOG_LEVEL", "")
	t.Setenv("STACKINIT_LOG_FORMAT", "")
	t.Setenv("STACKINIT_LOG_TIMESTAMPS", "")
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cfgFile = ""
	verbose = false
	logFormat = ""
	noColor = false
	logTimes = false

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}

// useProjectDir points the setup command at a fresh temp dir and a mock
// runner that imitates npm's side effects.
func useProjectDir(t *testing.T) (string, *mocks.CommandRunner) {
	t.Helper()

	root := t.TempDir()
	runner := mocks.NewSucceedingCommandRunner()
	runner.OnRun(ports.NewCommand("npm", "init", "-y").In(filepath.Join(root, "backend")), func(ports.Command) error {
		return os.WriteFile(filepath.Join(root, "backend", "package.json"), []byte(testutil.NewManifestBuilder().Build()), 0o644)
	})
	runner.OnRun(
		ports.NewCommand("npm", "create", "vite@latest", "frontend", "--", "--template", "react-ts").In(root),
		func(ports.Command) error {
			return os.MkdirAll(filepath.Join(root, "frontend", "src"), 0o755)
		},
	)

	origDir, origRunner := workingDir, newSetupRunner
	workingDir = func() (string, error) { return root, nil }
	newSetupRunner = func(*cobra.Command) ports.CommandRunner { return runner }
	t.Cleanup(func() {
		workingDir, newSetupRunner = origDir, origRunner
	})

	return root, runner
}

func useDoctorRunner(t *testing.T, runner ports.CommandRunner) {
	t.Helper()

	orig := newDoctorRunner
	newDoctorRunner = func() ports.CommandRunner { return runner }
	t.Cleanup(func() { newDoctorRunner = orig })
}
